package security

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// ShouldSkipValidation reports whether value carries no free text worth
// matching. The reason is empty when the value must be validated.
func ShouldSkipValidation(value any) (bool, string) {
	if value == nil {
		return true, "null value"
	}

	switch v := value.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return true, "empty string"
		}
		if isNumericString(trimmed) {
			return true, "numeric string"
		}
		return false, ""
	case json.Number:
		return true, "numeric value"
	case json.RawMessage:
		trimmed := strings.TrimSpace(string(v))
		if trimmed == "" || trimmed == "null" {
			return true, "null value"
		}
		return false, ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return true, "boolean value"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true, "numeric value"
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return true, "null value"
		}
	}
	return false, ""
}

// isNumericString follows loose numeric coercion: decimal and exponent forms,
// unsigned 0x/0o/0b integer literals and the Infinity literals all count.
func isNumericString(s string) bool {
	switch s {
	case "Infinity", "+Infinity", "-Infinity":
		return true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			_, err := strconv.ParseUint(s[2:], base, 64)
			return err == nil || errors.Is(err, strconv.ErrRange)
		}
	}

	// ParseFloat is more permissive than the coercion rules here.
	lower := strings.ToLower(s)
	if strings.ContainsAny(lower, "_xpn") || strings.Contains(lower, "inf") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
