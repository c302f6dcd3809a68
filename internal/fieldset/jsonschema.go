// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package fieldset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// ErrUnsupportedSchema indicates a property whose schema has no field type equivalent.
var ErrUnsupportedSchema = errors.New("unsupported schema")

// FromJSONSchema reads the top-level properties of an object schema as fields,
// in document order. The declaration name is derived from the schema title.
func FromJSONSchema(data []byte) (*File, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse JSON schema: %w", err)
	}

	order := ExtractKeyOrder(data)["properties"]
	if len(order) == 0 && len(schema.Properties) > 0 {
		return nil, fmt.Errorf("%w: could not read property order", ErrUnsupportedSchema)
	}

	file := &File{Name: codegen.ToPascalCase(schema.Title)}
	for _, prop := range order {
		propSchema, ok := schema.Properties[prop]
		if !ok || propSchema == nil {
			continue
		}
		t, err := fieldType(propSchema)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", prop, err)
		}
		file.Fields = append(file.Fields, codegen.Field{Name: prop, Type: t})
	}
	return file, nil
}

// fieldType maps a property schema to a field type. Format is checked first so that
// "date" and "date-time" strings become dates.
func fieldType(s *jsonschema.Schema) (codegen.FieldType, error) {
	typ := s.Type
	if typ == "" {
		for _, t := range s.Types {
			if t != "null" {
				typ = t
				break
			}
		}
	}

	switch typ {
	case "string":
		if s.Format == "date" || s.Format == "date-time" {
			return codegen.TypeDate, nil
		}
		return codegen.TypeString, nil
	case "integer", "number":
		return codegen.TypeInteger, nil
	case "boolean":
		return codegen.TypeBoolean, nil
	case "array":
		return codegen.TypeArray, nil
	case "":
		return codegen.TypeString, nil
	default:
		return "", fmt.Errorf("%w: type %q", ErrUnsupportedSchema, typ)
	}
}

// ExtractKeyOrder walks raw JSON and records the key order of every "properties" object.
// Keys of the result are dotted paths, e.g. "properties" or "$defs.address.properties".
func ExtractKeyOrder(rawJSON []byte) map[string][]string {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		delim, ok := token.(json.Delim)
		if !ok {
			return
		}

		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				extract(dec, newPath)
			}
			_, _ = dec.Token()
			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				extract(dec, path)
			}
			_, _ = dec.Token()
		}
	}

	extract(json.NewDecoder(bytes.NewReader(rawJSON)), "")
	return result
}
