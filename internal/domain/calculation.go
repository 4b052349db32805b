// Package domain contains core business entities and rules.
package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Operation identifies one of the supported arithmetic operations.
// Any other value is treated as unrecognized and yields a sentinel display.
type Operation string

// Supported operation tags.
const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
)

// Display texts. Sentinel texts replace the numeric rendering when a
// calculation cannot produce a number.
const (
	// DisplayPrefix is prepended to every evaluation outcome.
	DisplayPrefix = "Result: "

	// DivisionByZeroText is the sentinel for division by a zero operand.
	DivisionByZeroText = "Error: Division by zero!"

	// InvalidOperationText is the sentinel for an unrecognized operation tag.
	InvalidOperationText = "Invalid operation!"
)

// Calculation is a single evaluated arithmetic request.
// It carries the raw inputs exactly as supplied and the resulting
// human-readable display string.
type Calculation struct {
	// A is the raw text of the first operand.
	A string

	// B is the raw text of the second operand.
	B string

	// Operation is the requested operation tag.
	Operation Operation

	// Display is the formatted outcome, always of the form "Result: ...".
	Display string
}

// NewCalculation evaluates the raw inputs and returns the completed calculation.
func NewCalculation(rawA, rawB string, op Operation) Calculation {
	return Calculation{
		A:         rawA,
		B:         rawB,
		Operation: op,
		Display:   Evaluate(rawA, rawB, op),
	}
}

// Evaluate applies the operation to the two raw operands and returns the
// display string. It is pure, never fails, and is safe for concurrent use.
//
// Operands are parsed with ParseOperand; a failed parse yields NaN, which
// propagates through the arithmetic unguarded and renders as "NaN". This is
// intentional: malformed operand text is not an error condition.
//
// Division checks the parsed divisor against zero (negative zero included)
// before dividing and yields the division-by-zero sentinel instead of an
// infinity. An unrecognized operation tag yields the invalid-operation
// sentinel; the switch is exhaustive over the closed tag set so the
// unrecognized branch is explicit rather than a silent fallthrough.
func Evaluate(rawA, rawB string, op Operation) string {
	a := ParseOperand(rawA)
	b := ParseOperand(rawB)

	var result float64

	switch op {
	case OperationAdd:
		result = a + b
	case OperationSubtract:
		result = a - b
	case OperationMultiply:
		result = a * b
	case OperationDivide:
		if b == 0 {
			return DisplayPrefix + DivisionByZeroText
		}

		result = a / b
	default:
		return DisplayPrefix + InvalidOperationText
	}

	return DisplayPrefix + RenderNumber(result)
}

// ParseOperand interprets raw text as a floating-point operand.
// It skips leading whitespace, then takes the longest prefix that forms a
// valid number (optional sign, digits with at most one decimal point, an
// optional exponent, or the literal "Infinity"). Trailing garbage after the
// numeric prefix is ignored. If no numeric prefix exists the result is NaN.
// A prefix whose magnitude overflows float64 saturates to an infinity.
func ParseOperand(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	n := numericPrefixLen(s)
	if n == 0 {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Out-of-range parses saturate to ±Inf; keep that value.
			return f
		}

		return math.NaN()
	}

	return f
}

// numericPrefixLen returns the length of the longest leading substring of s
// that parses as a floating-point number, or 0 if there is none.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}

	hasDigit := false
	for i < len(s) && isDigit(s[i]) {
		hasDigit = true
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			hasDigit = true
			i++
		}
	}

	if !hasDigit {
		return 0
	}

	// Exponent is only part of the prefix if it is complete: 'e'/'E',
	// optional sign, at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			i = j
		}
	}

	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// RenderNumber formats a numeric result for display.
// Finite numbers use the shortest representation that round-trips; no
// rounding or precision control is applied. NaN renders as "NaN" and
// infinities as "Infinity"/"-Infinity". Zero always renders as "0"
// regardless of sign.
func RenderNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
