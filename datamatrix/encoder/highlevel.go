// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import barcodegen "github.com/ericlevine/barcodegen"

// Special codeword values in ASCII mode.
const (
	asciiUpperShift = 235 // next codeword is a value from 128 to 255
	asciiPad        = 129
	asciiDigitPairs = 130 // "00" to "99" are 130 to 229
)

// EncodeHighLevel encodes msg bytes into ASCII-mode data codewords:
// digit pairs pack into one codeword, other values below 128 become
// value+1, and values from 128 up use an upper shift.
func EncodeHighLevel(msg string) ([]byte, error) {
	if len(msg) == 0 {
		return nil, barcodegen.ErrEmptyPayload
	}
	data := []byte(msg)
	result := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case isDigit(c) && i+1 < len(data) && isDigit(data[i+1]):
			result = append(result, byte(asciiDigitPairs+int(c-'0')*10+int(data[i+1]-'0')))
			i++
		case c < 128:
			result = append(result, c+1)
		default:
			result = append(result, asciiUpperShift, c-128+1)
		}
	}
	return result, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// randomize253State returns the pad codeword for 1-based position.
func randomize253State(position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	v := asciiPad + pseudoRandom
	if v > 254 {
		v -= 254
	}
	return byte(v)
}

// PadCodewords fills codewords up to capacity: the first pad is 129, the
// rest are randomized by position.
func PadCodewords(codewords []byte, capacity int) []byte {
	if len(codewords) >= capacity {
		return codewords
	}
	result := make([]byte, capacity)
	copy(result, codewords)
	result[len(codewords)] = asciiPad
	for i := len(codewords) + 1; i < capacity; i++ {
		result[i] = randomize253State(i + 1)
	}
	return result
}
