package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// TextProcessor provides utilities for processing text
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// DecodeUTF8 validates raw bytes as UTF-8 and returns them as a string.
// Invalid input is an error; nothing is replaced or stripped, a leading
// byte order mark included.
func (tp *TextProcessor) DecodeUTF8(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return "", fmt.Errorf("invalid UTF-8: %w", err)
	}
	return string(decoded), nil
}

// Lower applies full Unicode lower-casing.
func (tp *TextProcessor) Lower(text string) string {
	if text == "" {
		return text
	}
	// Casers keep state, so one per call.
	return cases.Lower(language.Und).String(text)
}

// FieldString renders a decoded JSON value as text. Missing and null values
// become the empty string so that scoring never rejects a record on type.
// Integers keep their literal digits; fractional and exponent numbers are
// rendered in shortest round-trip form, switching to exponent notation
// outside 1e-4 <= |x| < 1e16.
func (tp *TextProcessor) FieldString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return numberString(v.String())
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(v)
	}
}

func numberString(lit string) string {
	if !strings.ContainsAny(lit, ".eE") {
		return lit
	}

	f, err := strconv.ParseFloat(lit, 64)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case err != nil:
		return lit
	}

	exp := strconv.FormatFloat(f, 'e', -1, 64)
	if e, err := strconv.Atoi(exp[strings.IndexByte(exp, 'e')+1:]); err == nil && (e < -4 || e >= 16) {
		return exp
	}

	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// LowerField is FieldString followed by Lower.
func (tp *TextProcessor) LowerField(value interface{}) string {
	return tp.Lower(tp.FieldString(value))
}

// TruncateText safely truncates text to the specified maximum size
// and ensures the result is valid UTF-8
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	return truncated + "..."
}
