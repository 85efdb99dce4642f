package arc3

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CanonicalJSON serializes the document to the reference form the metadata
// hash commits to: fields in declared order, absent fields omitted, 4-space
// indentation, UTF-8 without HTML escaping. Hash results are compared across
// implementations, so these bytes are a compatibility contract.
func (m *Metadata) CanonicalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	// Encode appends a newline that is not part of the canonical form.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
