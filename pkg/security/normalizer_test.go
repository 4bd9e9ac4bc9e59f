package security

import (
	"encoding/json"
	"testing"

	"github.com/NeuralTrust/Marketplace/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestClear(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{"strips allowed keywords", "please INSERT the new Update now", "please the new now"},
		{"collapses whitespace", "  red \t chair\n large ", "red chair large"},
		{"keeps partial words", "inserted updates", "inserted updates"},
		{"only keywords", "delete insert", ""},
		{"number unchanged", 42, 42},
		{"bool unchanged", true, true},
		{"nil unchanged", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clear(tt.input, config.DefaultSecurityConfig()))
		})
	}
}

func TestClear_CustomKeywords(t *testing.T) {
	cfg := config.SecurityConfig{AllowedKeywords: []string{"select"}}

	assert.Equal(t, "insert the rows", Clear("insert SELECT the rows", cfg))
}

func TestClear_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{"q": "insert"}
	out := Clear(input, config.DefaultSecurityConfig())

	assert.Equal(t, input, out)
	assert.Equal(t, "insert", input["q"])
}

func TestShouldSkipValidation(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *string

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"nil", nil, true},
		{"nil map", nilMap, true},
		{"nil pointer", nilPtr, true},
		{"empty", "", true},
		{"blank", " \t ", true},
		{"bool", false, true},
		{"int", 10, true},
		{"uint8", uint8(1), true},
		{"float", 1.5, true},
		{"json number", json.Number("2"), true},
		{"numeric string", " 42 ", true},
		{"negative decimal", "-0.25", true},
		{"exponent", "2e10", true},
		{"hex", "0x1F", true},
		{"octal", "0o17", true},
		{"binary", "0b101", true},
		{"infinity", "Infinity", true},
		{"out of range", "1e999", true},
		{"raw null", json.RawMessage("null"), true},
		{"text", "chair", false},
		{"number with text", "42 chairs", false},
		{"nan", "NaN", false},
		{"lowercase infinity", "infinity", false},
		{"signed hex", "-0x10", false},
		{"underscore", "1_000", false},
		{"hex float", "0x1p-2", false},
		{"object", map[string]any{"a": 1}, false},
		{"raw object", json.RawMessage(`{"a":1}`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, reason := ShouldSkipValidation(tt.input)
			assert.Equal(t, tt.want, skip)
			if skip {
				assert.NotEmpty(t, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	assert.Equal(t, "plain", renderText("plain"))
	assert.Equal(t, `{"a":[1,2]}`, renderText(map[string]any{"a": []int{1, 2}}))
	assert.Equal(t, `["x","y"]`, renderText([]string{"x", "y"}))
	assert.Equal(t, `{"b":true}`, renderText(json.RawMessage(`{"b":true}`)))
}
