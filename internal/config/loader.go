// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrSchema wraps structural problems reported by the job schema.
var ErrSchema = errors.New("config: job does not match schema")

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://github.com/katalvlaran/metricspace/job.schema.json"

// jobSchema compiles the embedded schema once.
var jobSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return schema, nil
})

// Format is a job file encoding.
type Format int

const (
	// FormatAuto tries TOML, then YAML, then JSON.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

// FormatFor maps a file extension to its Format.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// Load reads, checks and validates the job at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job: %w", err)
	}

	job, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return job, nil
}

// Parse decodes data as format, checks it against the job schema, decodes it
// onto DefaultJob and runs Validate.
func Parse(data []byte, format Format) (*Job, error) {
	raw, format, err := decodeGeneric(data, format)
	if err != nil {
		return nil, err
	}
	if err = validateSchema(raw); err != nil {
		return nil, err
	}

	job := DefaultJob()
	if err = decode(data, format, job); err != nil {
		return nil, err
	}
	job.ApplyDefaults()
	if err = job.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return job, nil
}

// decodeGeneric decodes data into a plain map and reports the format that
// succeeded (FormatAuto is resolved here).
func decodeGeneric(data []byte, format Format) (map[string]any, Format, error) {
	if format != FormatAuto {
		var raw map[string]any
		if err := decode(data, format, &raw); err != nil {
			return nil, format, err
		}
		return raw, format, nil
	}

	for _, f := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		var raw map[string]any
		if err := decode(data, f, &raw); err == nil && raw != nil {
			return raw, f, nil
		}
	}

	return nil, FormatAuto, errors.New("parse job: not TOML, YAML or JSON")
}

// decode unmarshals data into v with the decoder for format.
func decode(data []byte, format Format, v any) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("decode TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	default:
		return fmt.Errorf("decode: unknown format %d", format)
	}

	return nil
}

// validateSchema checks raw against the embedded schema. The value is first
// normalized through encoding/json so TOML and YAML scalar types match what
// the validator expects.
func validateSchema(raw map[string]any) error {
	schema, err := jobSchema()
	if err != nil {
		return err
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	var doc any
	if err = json.Unmarshal(buf, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err = schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return nil
}
