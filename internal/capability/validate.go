package capability

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema returns the JSON Schema document describing the parameter spec.
// The document is handed to the schema library as-is; this package never
// interprets schema semantics itself.
func (ps ParamSpec) Schema() map[string]interface{} {
	properties := make(map[string]interface{}, len(ps))
	var required []string

	for _, p := range ps {
		prop := map[string]interface{}{
			"type": p.Type,
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		properties[p.Name] = prop

		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// compileSchema compiles the parameter spec once at registration time so a
// malformed spec fails Register instead of the first Dispatch.
func compileSchema(ps ParamSpec) (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(ps.Schema()))
	if err != nil {
		return nil, fmt.Errorf("failed to compile parameter schema: %w", err)
	}
	return schema, nil
}

// validateParams checks raw arguments against the compiled schema and
// substitutes declared defaults for absent optional parameters. Validation
// failures are reported as a ValidationError naming the offending fields;
// handler code never sees arguments that failed validation.
func validateParams(schema *gojsonschema.Schema, spec ParamSpec, raw map[string]interface{}) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(spec))
	for k, v := range raw {
		args[k] = v
	}
	for _, p := range spec {
		if _, ok := args[p.Name]; !ok && !p.Required && p.Default != nil {
			args[p.Name] = p.Default
		}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		vErr := &ValidationError{}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "(root)" {
				// Required-property failures report against the root
				// object; the property name lives in the details map.
				if prop, ok := desc.Details()["property"].(string); ok {
					field = prop
				}
			}
			vErr.Fields = append(vErr.Fields, field)
			vErr.Problems = append(vErr.Problems, desc.String())
		}
		return nil, vErr
	}

	return args, nil
}
