package oned

import (
	"fmt"
	"strings"

	barcodegen "github.com/ericlevine/barcodegen"
)

// fnc1 marks an FNC1 function character in Code 128 data. It lies outside
// ASCII so it cannot collide with payload bytes.
const fnc1 byte = 0xF1

// AIElement is one GS1 application identifier and its value.
type AIElement struct {
	AI    string
	Value string
}

// gs1PredefinedLengths maps the first two digits of an AI to the fixed total
// length of AI plus value. Only these AIs may omit the FNC1 separator.
var gs1PredefinedLengths = map[string]int{
	"00": 20, "01": 16, "02": 16, "03": 16, "04": 18,
	"11": 8, "12": 8, "13": 8, "14": 8, "15": 8, "16": 8, "17": 8, "18": 8, "19": 8,
	"20": 4,
	"31": 10, "32": 10, "33": 10, "34": 10, "35": 10, "36": 10,
	"41": 16,
}

// IsGS1 reports whether contents uses the parenthesised GS1 notation.
func IsGS1(contents string) bool {
	return strings.ContainsAny(contents, "()")
}

// ParseGS1 splits "(AI)value(AI)value..." into its elements. Unbalanced or
// nested parentheses, data before the first AI, AIs that are not 2 to 4
// digits, empty values and wrong fixed lengths are errors.
func ParseGS1(contents string) ([]AIElement, error) {
	if contents == "" {
		return nil, barcodegen.ErrEmptyPayload
	}
	var elems []AIElement
	rest := contents
	for rest != "" {
		if rest[0] != '(' {
			return nil, fmt.Errorf("%w: gs1: expected '(' at %q", barcodegen.ErrInvalidCharset, rest)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: gs1: unbalanced parenthesis in %q", barcodegen.ErrInvalidCharset, rest)
		}
		ai := rest[1:end]
		if len(ai) < 2 || len(ai) > 4 {
			return nil, fmt.Errorf("%w: gs1: application identifier %q must be 2 to 4 digits", barcodegen.ErrInvalidCharset, ai)
		}
		if err := CheckUPCEANDigits(ai); err != nil {
			return nil, fmt.Errorf("%w: gs1: application identifier %q is not numeric", barcodegen.ErrInvalidCharset, ai)
		}
		rest = rest[end+1:]
		next := strings.IndexAny(rest, "()")
		if next < 0 {
			next = len(rest)
		} else if rest[next] == ')' {
			return nil, fmt.Errorf("%w: gs1: unbalanced parenthesis after (%s)", barcodegen.ErrInvalidCharset, ai)
		}
		value := rest[:next]
		if value == "" {
			return nil, fmt.Errorf("%w: gs1: empty value for (%s)", barcodegen.ErrInvalidCharset, ai)
		}
		if want, ok := gs1PredefinedLengths[ai[:2]]; ok && len(ai)+len(value) != want {
			return nil, fmt.Errorf("%w: gs1: (%s) needs %d characters including the identifier, got %d",
				barcodegen.ErrInvalidCharset, ai, want, len(ai)+len(value))
		}
		elems = append(elems, AIElement{AI: ai, Value: value})
		rest = rest[next:]
	}
	return elems, nil
}

// gs1Data builds the Code 128 data stream for elems: a leading FNC1, then
// each AI and value, with FNC1 after every variable-length value except
// the last.
func gs1Data(elems []AIElement) []byte {
	data := []byte{fnc1}
	for i, e := range elems {
		data = append(data, e.AI...)
		data = append(data, e.Value...)
		if _, fixed := gs1PredefinedLengths[e.AI[:2]]; !fixed && i < len(elems)-1 {
			data = append(data, fnc1)
		}
	}
	return data
}

// gs1Text returns the human readable form of elems.
func gs1Text(elems []AIElement) string {
	var sb strings.Builder
	for _, e := range elems {
		sb.WriteByte('(')
		sb.WriteString(e.AI)
		sb.WriteByte(')')
		sb.WriteString(e.Value)
	}
	return sb.String()
}
