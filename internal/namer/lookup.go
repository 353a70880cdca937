package namer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// lookupSchema constrains the company-code file: a flat object mapping
// full company identifiers to short codes.
const lookupSchema = `{
	"type": "object",
	"minProperties": 1,
	"propertyNames": {"minLength": 2},
	"additionalProperties": {"type": "string", "minLength": 2, "maxLength": 10}
}`

// LoadCompanyCodes reads and validates a company-code lookup table from
// a JSON file, e.g. {"TENAGA NASIONAL": "TNB", "MAXIS": "MAXIS"}.
func LoadCompanyCodes(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lookup file: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("lookup.json", strings.NewReader(lookupSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("lookup.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse lookup file: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("lookup file does not match schema: %w", err)
	}

	var codes map[string]string
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("decode lookup file: %w", err)
	}
	return codes, nil
}
