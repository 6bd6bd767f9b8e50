package oned

import (
	"fmt"
	"strings"

	barcodegen "github.com/ericlevine/barcodegen"
)

// Code128QuietZone is the blank margin, in units, on each side.
const Code128QuietZone = 10

// Code128Encoder encodes Code 128 and GS1-128 barcodes. Contents containing
// parentheses are parsed as GS1 "(AI)value" groups.
type Code128Encoder struct{}

// NewCode128Encoder creates a new Code 128 encoder.
func NewCode128Encoder() *Code128Encoder {
	return &Code128Encoder{}
}

// Encode encodes contents into a Code 128 symbol. Code sets are chosen to
// keep the symbol short unless opts.ForceCodeSet selects one.
func (e *Code128Encoder) Encode(contents string, opts *barcodegen.EncodeOptions) (barcodegen.Symbol, error) {
	forcedCodeSet := -1
	if opts != nil && opts.ForceCodeSet != "" {
		switch strings.ToUpper(opts.ForceCodeSet) {
		case "A":
			forcedCodeSet = code128CodeA
		case "B":
			forcedCodeSet = code128CodeB
		case "C":
			forcedCodeSet = code128CodeC
		default:
			return nil, fmt.Errorf("%w: unsupported code set hint: %s", barcodegen.ErrInvalidOption, opts.ForceCodeSet)
		}
	}

	text := contents
	data := []byte(contents)
	gs1 := IsGS1(contents)
	if gs1 {
		elems, err := ParseGS1(contents)
		if err != nil {
			return nil, err
		}
		data = gs1Data(elems)
		text = gs1Text(elems)
	}
	if len(data) == 0 {
		return nil, barcodegen.ErrEmptyPayload
	}
	if err := checkCode128Contents(data, forcedCodeSet, gs1); err != nil {
		return nil, err
	}

	codes, err := encodeCode128(data, forcedCodeSet)
	if err != nil {
		return nil, err
	}
	widths := make([]int, 0, len(codes)*6+1)
	for _, c := range codes {
		widths = append(widths, Code128Patterns[c]...)
	}
	return barcodegen.NewBarSymbol(widths, Code128QuietZone, text, codes)
}

// checkCode128Contents rejects bytes the chosen code sets cannot carry. The
// FNC1 marker is only accepted in data built from GS1 element strings.
func checkCode128Contents(data []byte, forcedCodeSet int, allowFNC1 bool) error {
	for i, c := range data {
		if c == fnc1 && allowFNC1 {
			continue
		}
		if c > 127 {
			return fmt.Errorf("%w: bad character in input: ASCII value=%d", barcodegen.ErrInvalidCharset, c)
		}
		switch forcedCodeSet {
		case code128CodeA:
			if !inCode128Set(c, code128CodeA) {
				return fmt.Errorf("%w: bad character in input for forced code set A: ASCII value=%d", barcodegen.ErrInvalidCharset, c)
			}
		case code128CodeB:
			if !inCode128Set(c, code128CodeB) {
				return fmt.Errorf("%w: bad character in input for forced code set B: ASCII value=%d", barcodegen.ErrInvalidCharset, c)
			}
		case code128CodeC:
			if !isDigit(c) {
				return fmt.Errorf("%w: bad character in input for forced code set C: ASCII value=%d", barcodegen.ErrInvalidCharset, c)
			}
			if n := digitRun(data, i); (i == 0 || !isDigit(data[i-1])) && n%2 != 0 {
				return fmt.Errorf("%w: code set C needs an even number of digits, got %d at %d", barcodegen.ErrInvalidCharset, n, i)
			}
		}
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// digitRun counts consecutive digits starting at data[start].
func digitRun(data []byte, start int) int {
	n := 0
	for start+n < len(data) && isDigit(data[start+n]) {
		n++
	}
	return n
}

// inCode128Set reports whether ASCII c has a value in code set A or B.
func inCode128Set(c byte, codeSet int) bool {
	if codeSet == code128CodeA {
		return c < 0x60
	}
	return c >= 0x20 && c < 0x80
}

func otherCode128Set(codeSet int) int {
	if codeSet == code128CodeA {
		return code128CodeB
	}
	return code128CodeA
}

// code128Value returns the symbol value of ASCII c in code set A or B.
func code128Value(c byte, codeSet int) int {
	if codeSet == code128CodeA && c < 0x20 {
		return int(c) + 64
	}
	return int(c) - ' '
}

// chooseCode128AB picks A when a control character comes before any
// lower-case character from start on, else B.
func chooseCode128AB(data []byte, start int) int {
	for _, c := range data[start:] {
		if c == fnc1 {
			continue
		}
		if c < 0x20 {
			return code128CodeA
		}
		if c >= 0x60 {
			return code128CodeB
		}
	}
	return code128CodeB
}

// shiftCode128 reports whether the out-of-set character at data[start]
// should be shifted rather than switched to: true when the next character
// needing one of the two sets belongs to the current one.
func shiftCode128(data []byte, start, codeSet int) bool {
	other := otherCode128Set(codeSet)
	for _, c := range data[start+1:] {
		if c == fnc1 {
			continue
		}
		inCur, inOther := inCode128Set(c, codeSet), inCode128Set(c, other)
		switch {
		case inCur && !inOther:
			return true
		case inOther && !inCur:
			return false
		}
	}
	return false
}

// initialCode128Set selects the start code set. Leading FNC1s are skipped.
func initialCode128Set(data []byte) int {
	start := 0
	for start < len(data) && data[start] == fnc1 {
		start++
	}
	n := digitRun(data, start)
	if n >= 4 || (n == 2 && start+2 == len(data)) {
		return code128CodeC
	}
	return chooseCode128AB(data, start)
}

func code128StartFor(codeSet int) int {
	switch codeSet {
	case code128CodeA:
		return code128StartA
	case code128CodeB:
		return code128StartB
	default:
		return code128StartC
	}
}

// encodeCode128 returns the symbol values for data: start code, data and
// code set changes, check value and stop code.
func encodeCode128(data []byte, forcedCodeSet int) ([]int, error) {
	codeSet := forcedCodeSet
	if codeSet < 0 {
		codeSet = initialCode128Set(data)
	}
	codes := []int{code128StartFor(codeSet)}

	for position := 0; position < len(data); {
		c := data[position]
		if forcedCodeSet < 0 {
			if codeSet == code128CodeC {
				if c != fnc1 && digitRun(data, position) < 2 {
					codeSet = chooseCode128AB(data, position)
					codes = append(codes, codeSet)
					continue
				}
			} else {
				if n := digitRun(data, position); n >= 4 && n%2 == 0 {
					codeSet = code128CodeC
					codes = append(codes, codeSet)
					continue
				}
				if c != fnc1 && !inCode128Set(c, codeSet) {
					other := otherCode128Set(codeSet)
					if shiftCode128(data, position, codeSet) {
						codes = append(codes, code128Shift, code128Value(c, other))
						position++
						continue
					}
					codeSet = other
					codes = append(codes, codeSet)
					continue
				}
			}
		}

		switch {
		case c == fnc1:
			codes = append(codes, code128FNC1)
			position++
		case codeSet == code128CodeC:
			if digitRun(data, position) < 2 {
				return nil, fmt.Errorf("%w: bad number of characters for digit only encoding", barcodegen.ErrInvalidCharset)
			}
			codes = append(codes, int(c-'0')*10+int(data[position+1]-'0'))
			position += 2
		default:
			codes = append(codes, code128Value(c, codeSet))
			position++
		}
	}

	return append(codes, code128Checksum(codes), code128Stop), nil
}

// code128Checksum is the start value plus each following value times its
// position, modulo 103.
func code128Checksum(codes []int) int {
	sum := codes[0]
	for i := 1; i < len(codes); i++ {
		sum += i * codes[i]
	}
	return sum % 103
}
