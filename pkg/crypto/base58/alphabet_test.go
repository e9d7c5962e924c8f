package base58

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedTables(t *testing.T) {
	assert.Equal(t, "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz", BitcoinAlphabet.String())
	assert.Equal(t, "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz", RippleAlphabet.String())
	assert.Equal(t, "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ", FlickrAlphabet.String())
}

func TestNewAlphabetValidation(t *testing.T) {
	_, err := NewAlphabet("too short")
	require.Error(t, err)

	// right length, but '1' appears twice
	_, err = NewAlphabet("11" + bitcoinTable[2:])
	require.Error(t, err)

	alph, err := NewAlphabet(bitcoinTable)
	require.NoError(t, err)
	assert.Equal(t, bitcoinTable, alph.String())
}

func TestDigitLookup(t *testing.T) {
	for _, alph := range []*Alphabet{BitcoinAlphabet, RippleAlphabet, FlickrAlphabet} {
		for i := 0; i < radix; i++ {
			assert.Equal(t, int8(i), alph.digit(rune(alph.encode[i])))
		}
	}

	assert.Equal(t, int8(-1), BitcoinAlphabet.digit('0'))
	assert.Equal(t, int8(-1), BitcoinAlphabet.digit('O'))
	assert.Equal(t, int8(-1), BitcoinAlphabet.digit('I'))
	assert.Equal(t, int8(-1), BitcoinAlphabet.digit('l'))
	assert.Equal(t, int8(-1), BitcoinAlphabet.digit('€'))
}

func TestAlphabetFromName(t *testing.T) {
	cases := map[string]*Alphabet{
		"bitcoin": BitcoinAlphabet,
		"BTC":     BitcoinAlphabet,
		"Ripple":  RippleAlphabet,
		"xrp":     RippleAlphabet,
		"flickr":  FlickrAlphabet,
	}

	for name, want := range cases {
		got, err := AlphabetFromName(name)
		require.NoError(t, err, name)
		assert.Same(t, want, got, name)
	}

	_, err := AlphabetFromName("base64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")
}
