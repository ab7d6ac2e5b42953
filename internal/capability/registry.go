// Package capability implements the registration-and-dispatch core of the
// demo server: named capability definitions (resources, tools, prompts) whose
// declared parameters are validated before a handler ever runs.
//
// The registry owns all definitions. It is populated during startup and never
// mutated afterwards, so dispatching needs no locking; the stdio transport
// feeds it one request at a time anyway. Message framing and schema checking
// are both external collaborators (the MCP library and the JSON Schema
// library respectively), not implemented here.
package capability

import (
	"context"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// Registry holds capability definitions and dispatches requests to them.
type Registry struct {
	definitions map[Kind]map[string]Definition
	schemas     map[Kind]map[string]*gojsonschema.Schema
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[Kind]map[string]Definition),
		schemas:     make(map[Kind]map[string]*gojsonschema.Schema),
	}
}

// Register adds a definition to the registry. Names must be unique within
// their kind; a duplicate fails with ErrDuplicateName.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("capability name cannot be empty")
	}
	if def.Handler == nil {
		return fmt.Errorf("capability %q: handler cannot be nil", def.Name)
	}
	if def.Kind != KindResource && def.Kind != KindTool && def.Kind != KindPrompt {
		return fmt.Errorf("capability %q: unknown kind %q", def.Name, def.Kind)
	}

	if _, exists := r.definitions[def.Kind][def.Name]; exists {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateName, def.Kind, def.Name)
	}

	schema, err := compileSchema(def.Params)
	if err != nil {
		return fmt.Errorf("capability %q: %w", def.Name, err)
	}

	if r.definitions[def.Kind] == nil {
		r.definitions[def.Kind] = make(map[string]Definition)
		r.schemas[def.Kind] = make(map[string]*gojsonschema.Schema)
	}
	r.definitions[def.Kind][def.Name] = def
	r.schemas[def.Kind][def.Name] = schema
	return nil
}

// Get returns the definition registered under (kind, name).
func (r *Registry) Get(kind Kind, name string) (Definition, bool) {
	def, ok := r.definitions[kind][name]
	return def, ok
}

// List returns all definitions of the given kind, sorted by name.
func (r *Registry) List(kind Kind) []Definition {
	var names []string
	for name := range r.definitions[kind] {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, r.definitions[kind][name])
	}
	return defs
}

// Names returns the sorted names of all definitions of the given kind.
func (r *Registry) Names(kind Kind) []string {
	var names []string
	for name := range r.definitions[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes a named request to its registered handler: it looks up the
// definition, validates the raw arguments against the declared parameter
// spec, invokes the handler and waits for it to complete, then returns the
// handler's Result.
//
// Lookup and validation failures never reach handler code. Handler failures
// never escape as errors for tools and prompts; they are folded into an
// in-band error result so the caller always receives a well-formed response.
// Resource handler failures surface as ErrHandlerFailure because resource
// results have no error channel.
func (r *Registry) Dispatch(ctx context.Context, kind Kind, name string, rawParams map[string]interface{}, uri string) (Result, error) {
	def, ok := r.Get(kind, name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s/%s", ErrNotFound, kind, name)
	}

	args, err := validateParams(r.schemas[kind][name], def.Params, rawParams)
	if err != nil {
		return Result{}, err
	}

	result, err := invoke(ctx, def, Invocation{Args: args, URI: uri})
	if err != nil {
		if kind == KindResource {
			return Result{}, fmt.Errorf("%w: %s: %v", ErrHandlerFailure, name, err)
		}
		return ErrorResult(fmt.Sprintf("Error: %v", err)), nil
	}
	return result, nil
}

// invoke runs the handler with panic recovery so a misbehaving handler
// cannot take down the process.
func invoke(ctx context.Context, def Definition, inv Invocation) (result Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler panicked: %v", rec)
		}
	}()
	return def.Handler(ctx, inv)
}
