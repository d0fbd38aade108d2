package validate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleDoc is the YAML form of a Rule. Function-valued fields (transforms,
// custom checks) cannot be expressed in a document and are attached in code
// after loading, if needed.
type ruleDoc struct {
	Type     string             `yaml:"type"`
	Required bool               `yaml:"required"`
	Default  any                `yaml:"default"`
	Min      *float64           `yaml:"min"`
	Max      *float64           `yaml:"max"`
	Pattern  string             `yaml:"pattern"`
	Integer  bool               `yaml:"integer"`
	Enum     []any              `yaml:"enum"`
	Items    *ruleDoc           `yaml:"items"`
	Schema   map[string]ruleDoc `yaml:"schema"`
	Message  string             `yaml:"message"`
	Messages map[string]string  `yaml:"messages"`
	Params   map[string]any     `yaml:"params"`
}

// ParseSchema decodes a declarative YAML schema document. Unknown keys are a
// decode error, and the resulting schema is checked before it is returned.
func ParseSchema(data []byte) (Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc map[string]ruleDoc
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	schema := make(Schema, len(doc))
	for field, rd := range doc {
		schema[field] = rd.rule()
	}

	if err := schema.Check(); err != nil {
		return nil, err
	}
	return schema, nil
}

// LoadSchema reads and parses a YAML schema document from a file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return ParseSchema(data)
}

func (rd ruleDoc) rule() Rule {
	r := Rule{
		Type:     rd.Type,
		Required: rd.Required,
		Default:  rd.Default,
		Min:      rd.Min,
		Max:      rd.Max,
		Pattern:  rd.Pattern,
		Integer:  rd.Integer,
		Enum:     rd.Enum,
		Message:  rd.Message,
		Params:   rd.Params,
	}

	if rd.Items != nil {
		items := rd.Items.rule()
		r.Items = &items
	}
	if len(rd.Schema) > 0 {
		nested := make(Schema, len(rd.Schema))
		for field, sub := range rd.Schema {
			nested[field] = sub.rule()
		}
		r.Schema = nested
	}
	if len(rd.Messages) > 0 {
		r.Messages = make(map[Kind]string, len(rd.Messages))
		for kind, msg := range rd.Messages {
			r.Messages[Kind(kind)] = msg
		}
	}
	return r
}
