// Package base58 implements Base58 encoding and decoding with support for
// the Bitcoin (default), Ripple and Flickr alphabets.
package base58

import (
	"strings"

	"github.com/pkg/errors"
)

const radix = 58

// Symbol tables of the three supported variants. The character order is the
// digit 0..57 mapping and must match the historical ecosystems bit-for-bit.
const (
	bitcoinTable = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	rippleTable  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	flickrTable  = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
)

var (
	// BitcoinAlphabet is the default alphabet, as used by Bitcoin addresses.
	BitcoinAlphabet = mustAlphabet(bitcoinTable)

	// RippleAlphabet is the alphabet of the Ripple/XRP ledger.
	RippleAlphabet = mustAlphabet(rippleTable)

	// FlickrAlphabet is the alphabet of Flickr short photo URLs.
	FlickrAlphabet = mustAlphabet(flickrTable)
)

// Alphabet holds the symbol table of a Base58 variant together with its
// reverse lookup, indexed by raw byte value. It is immutable after
// construction and safe for concurrent use.
type Alphabet struct {
	encode [radix]byte
	decode [256]int8
}

// NewAlphabet builds an Alphabet from a 58-character string. The characters
// must be single-byte and pairwise distinct.
func NewAlphabet(s string) (*Alphabet, error) {
	if len(s) != radix {
		return nil, errors.Errorf("base58 alphabets must be %d bytes long, got %d", radix, len(s))
	}

	a := new(Alphabet)
	copy(a.encode[:], s)

	for i := range a.decode {
		a.decode[i] = -1
	}

	distinct := 0
	for i, b := range a.encode {
		if a.decode[b] == -1 {
			distinct++
		}
		a.decode[b] = int8(i)
	}

	if distinct != radix {
		return nil, errors.Errorf("base58 alphabets must consist of %d distinct characters", radix)
	}

	return a, nil
}

// AlphabetFromName resolves an alphabet variant by its textual name.
func AlphabetFromName(name string) (*Alphabet, error) {
	switch strings.ToLower(name) {
	case "bitcoin", "btc":
		return BitcoinAlphabet, nil
	case "ripple", "xrp":
		return RippleAlphabet, nil
	case "flickr":
		return FlickrAlphabet, nil
	}

	return nil, errors.Errorf("unknown alphabet %q, valid options are bitcoin, ripple, flickr", name)
}

// String returns the 58-character symbol table.
func (a *Alphabet) String() string {
	return string(a.encode[:])
}

// zero is the symbol of digit value zero, which stands in for leading zero
// bytes on the wire.
func (a *Alphabet) zero() byte {
	return a.encode[0]
}

// digit returns the value of symbol r, or -1 when r is not part of the
// alphabet.
func (a *Alphabet) digit(r rune) int8 {
	if r < 0 || r > 255 {
		return -1
	}

	return a.decode[r]
}

func mustAlphabet(table string) *Alphabet {
	a, err := NewAlphabet(table)
	if err != nil {
		panic(err)
	}

	return a
}
