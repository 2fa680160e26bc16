// Package codec provides serializers for the recipe collection blob.
//
// The wire format is self-describing and tolerant in both directions: a
// collection written before tags, dietary flags, or ingredients existed
// decodes with those fields defaulting to empty/false, and payloads carrying
// fields this version does not know still round-trip the fields it
// understands.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/cookbook/pkg/core"
)

// ByFormat returns the codec registered for the given format name.
func ByFormat(format string) (core.Codec, error) {
	switch format {
	case "json", "":
		return NewJSON(), nil
	case "yaml", "yml":
		return NewYAML(), nil
	default:
		return nil, fmt.Errorf("unknown codec format: %s", format)
	}
}

// --- JSON Codec ---

// JSONCodec is the default collection codec. Field names match the
// original flat JSON blob layout, so collections written by earlier
// versions decode unchanged.
type JSONCodec struct {
	// Indent enables pretty printing of the stored blob.
	Indent bool
}

// NewJSON creates a JSON codec with indented output.
func NewJSON() *JSONCodec {
	return &JSONCodec{Indent: true}
}

func (c *JSONCodec) Format() string { return "json" }

func (c *JSONCodec) Encode(records []core.Recipe) ([]byte, error) {
	if records == nil {
		records = []core.Recipe{}
	}
	if c.Indent {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}

func (c *JSONCodec) Decode(data []byte) ([]core.Recipe, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []core.Recipe{}, nil
	}

	var records []core.Recipe
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid recipe collection: %w", err)
	}

	normalize(records)
	return records, nil
}

// --- YAML Codec ---

// YAMLCodec stores the collection as a YAML document using the same field
// names as the JSON codec.
type YAMLCodec struct{}

// NewYAML creates a YAML codec.
func NewYAML() *YAMLCodec {
	return &YAMLCodec{}
}

func (c *YAMLCodec) Format() string { return "yaml" }

func (c *YAMLCodec) Encode(records []core.Recipe) ([]byte, error) {
	if records == nil {
		records = []core.Recipe{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *YAMLCodec) Decode(data []byte) ([]core.Recipe, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []core.Recipe{}, nil
	}

	var records []core.Recipe
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid recipe collection: %w", err)
	}

	normalize(records)
	return records, nil
}

// normalize restores the record invariants (non-nil slices, known category)
// on freshly decoded records, so legacy payloads satisfy the same contract
// as records that went through the save path.
func normalize(records []core.Recipe) {
	for i := range records {
		records[i].Normalize()
	}
}

var (
	_ core.Codec = (*JSONCodec)(nil)
	_ core.Codec = (*YAMLCodec)(nil)
)
