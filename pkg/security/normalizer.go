package security

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NeuralTrust/Marketplace/pkg/config"
)

// Clear removes allowed business keywords from text so that words such as
// "insert" in a product description do not trip the SQL signatures.
// Non-text values are returned unchanged.
func Clear(value any, cfg config.SecurityConfig) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	tokens := strings.Fields(s)
	kept := tokens[:0]
	for _, token := range tokens {
		if cfg.IsAllowedKeyword(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// renderText turns a normalized value into the text handed to the matcher.
// Objects and arrays are matched on their JSON form.
func renderText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.RawMessage:
		return string(v)
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(b)
}
