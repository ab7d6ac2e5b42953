package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamSpec_Schema(t *testing.T) {
	spec := ParamSpec{
		{Name: "name", Type: "string", Description: "Who to greet", Required: true},
		{Name: "count", Type: "number"},
	}

	schema := spec.Schema()
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []string{"name"}, schema["required"])

	properties, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, properties, 2)

	nameProp, ok := properties["name"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "string", nameProp["type"])
	assert.Equal(t, "Who to greet", nameProp["description"])
}

func TestParamSpec_Schema_Empty(t *testing.T) {
	schema := ParamSpec{}.Schema()
	assert.Equal(t, "object", schema["type"])
	_, hasRequired := schema["required"]
	assert.False(t, hasRequired, "empty spec must not emit a required list")
}

func TestValidateParams(t *testing.T) {
	spec := ParamSpec{
		{Name: "name", Type: "string", Required: true},
		{Name: "tone", Type: "string", Default: "friendly"},
	}
	schema, err := compileSchema(spec)
	require.NoError(t, err)

	tests := []struct {
		name        string
		raw         map[string]interface{}
		expectValid bool
		check       func(t *testing.T, args map[string]interface{})
	}{
		{
			name:        "valid input passes through",
			raw:         map[string]interface{}{"name": "Ada"},
			expectValid: true,
			check: func(t *testing.T, args map[string]interface{}) {
				assert.Equal(t, "Ada", args["name"])
			},
		},
		{
			name:        "default is substituted for absent optional",
			raw:         map[string]interface{}{"name": "Ada"},
			expectValid: true,
			check: func(t *testing.T, args map[string]interface{}) {
				assert.Equal(t, "friendly", args["tone"])
			},
		},
		{
			name:        "missing required fails",
			raw:         map[string]interface{}{},
			expectValid: false,
		},
		{
			name:        "wrong type fails",
			raw:         map[string]interface{}{"name": true},
			expectValid: false,
		},
		{
			name:        "nil raw input with missing required fails",
			raw:         nil,
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := validateParams(schema, spec, tt.raw)
			if !tt.expectValid {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidParams)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, args)
			}
		})
	}
}

func TestValidateParams_DoesNotMutateInput(t *testing.T) {
	spec := ParamSpec{
		{Name: "name", Type: "string", Required: true},
		{Name: "tone", Type: "string", Default: "friendly"},
	}
	schema, err := compileSchema(spec)
	require.NoError(t, err)

	raw := map[string]interface{}{"name": "Ada"}
	_, err = validateParams(schema, spec, raw)
	require.NoError(t, err)

	_, leaked := raw["tone"]
	assert.False(t, leaked, "default substitution must not write into the caller's map")
}
