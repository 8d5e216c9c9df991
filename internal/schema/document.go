package schema

import (
	"bytes"
	"encoding/json"
)

const indent = "    "

// Marshal renders a response document indented by four spaces. Markup characters in
// messages are kept as they are.
func Marshal(value any) ([]byte, error) {
	buffer := &bytes.Buffer{}

	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}
