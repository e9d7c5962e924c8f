package base58

import (
	"math/big"
)

var bigRadix = [...]*big.Int{
	big.NewInt(0),
	big.NewInt(58),
	big.NewInt(58 * 58),
	big.NewInt(58 * 58 * 58),
	big.NewInt(58 * 58 * 58 * 58),
	big.NewInt(58 * 58 * 58 * 58 * 58),
	big.NewInt(58 * 58 * 58 * 58 * 58 * 58),
	big.NewInt(58 * 58 * 58 * 58 * 58 * 58 * 58),
	big.NewInt(58 * 58 * 58 * 58 * 58 * 58 * 58 * 58),
	big.NewInt(58 * 58 * 58 * 58 * 58 * 58 * 58 * 58 * 58),
	bigRadix10,
}

// 58^10 fits in an int64, so ten base58 digits can be moved between the
// big.Int accumulator and native arithmetic in one step.
var bigRadix10 = big.NewInt(58 * 58 * 58 * 58 * 58 * 58 * 58 * 58 * 58 * 58)

// Encoding encodes input with the default Bitcoin alphabet.
func Encoding(input []byte) string {
	return EncodingAlphabet(input, BitcoinAlphabet)
}

// EncodingAlphabet encodes input as a Base58 string under the given
// alphabet. The input is read as a big-endian unsigned integer; every
// leading zero byte becomes one leading zero symbol in the output. Encoding
// an empty slice yields an empty string.
func EncodingAlphabet(input []byte, alphabet *Alphabet) string {
	x := new(big.Int)
	x.SetBytes(input)

	// The output is at most log58(2^(8*len(input))) == len(input) * 8 /
	// log2(58) digits, plus the leading zero symbols.
	maxlen := int(float64(len(input))*1.365658237309761) + 1
	answer := make([]byte, 0, maxlen)
	mod := new(big.Int)

	for x.Sign() > 0 {
		// Dividing the big.Int by 58 once per digit is slow. Divide by
		// 58^10 instead and unroll the ten digits with native arithmetic.
		x.DivMod(x, bigRadix10, mod)

		if x.Sign() == 0 {
			// The most significant chunk must not produce padding zero
			// digits.
			m := mod.Int64()
			for m > 0 {
				answer = append(answer, alphabet.encode[m%radix])
				m /= radix
			}
		} else {
			m := mod.Int64()
			for i := 0; i < 10; i++ {
				answer = append(answer, alphabet.encode[m%radix])
				m /= radix
			}
		}
	}

	// Leading zero bytes carry no magnitude and are restored explicitly.
	for _, b := range input {
		if b != 0 {
			break
		}

		answer = append(answer, alphabet.zero())
	}

	// Digits were produced least significant first.
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}

// Decoding decodes input with the default Bitcoin alphabet.
func Decoding(input string) ([]byte, error) {
	return DecodingAlphabet(input, BitcoinAlphabet)
}

// DecodingAlphabet decodes a Base58 string under the given alphabet. Every
// leading zero symbol becomes one leading zero byte in the output. A
// character outside the alphabet fails the whole call with an
// InvalidCharacterError; no partial result is returned. Decoding an empty
// string yields an empty slice.
func DecodingAlphabet(input string, alphabet *Alphabet) ([]byte, error) {
	answer := new(big.Int)
	scratch := new(big.Int)

	// Mirror the encoder: batch up to ten digits in a uint64 before
	// touching the big.Int accumulator. The input is walked by rune so a
	// non-ASCII character is reported as itself, not as its UTF-8 bytes.
	total := uint64(0)
	n := 0

	for _, r := range input {
		digit := alphabet.digit(r)
		if digit < 0 {
			return nil, &InvalidCharacterError{Char: r}
		}

		total = total*radix + uint64(digit)
		n++

		if n == 10 {
			answer.Mul(answer, bigRadix10)
			scratch.SetUint64(total)
			answer.Add(answer, scratch)

			total, n = 0, 0
		}
	}

	if n > 0 {
		answer.Mul(answer, bigRadix[n])
		scratch.SetUint64(total)
		answer.Add(answer, scratch)
	}

	// big.Int.Bytes is minimal, so the leading zero symbols have to be
	// restored as zero bytes.
	decoded := answer.Bytes()

	var numZeros int
	for numZeros = 0; numZeros < len(input); numZeros++ {
		if input[numZeros] != alphabet.zero() {
			break
		}
	}

	val := make([]byte, numZeros+len(decoded))
	copy(val[numZeros:], decoded)

	return val, nil
}
