package outline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Render serializes a reshaped record as JSON indented by two spaces.
func Render(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to render result: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
