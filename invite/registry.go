package invite

import (
	"fmt"
	"sync"
)

// DefaultTemplateID is the template used when a page loads without a
// recognized template query parameter.
const DefaultTemplateID = "birthday"

// Registry stores template definitions keyed by id.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]TemplateDefinition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]TemplateDefinition)}
}

// Register adds a definition.
func (r *Registry) Register(def TemplateDefinition) error {
	if def.ID == "" {
		return NewError(KindValidation, "template id is required", nil)
	}
	if len(def.Fields) == 0 {
		return NewError(KindValidation, fmt.Sprintf("template %q has no fields", def.ID), nil)
	}
	if def.Builder == nil {
		return NewError(KindValidation, fmt.Sprintf("template %q has no builder", def.ID), nil)
	}
	seen := make(map[string]struct{}, len(def.Fields))
	for _, f := range def.Fields {
		if f.Name == "" {
			return NewError(KindValidation, fmt.Sprintf("template %q has an unnamed field", def.ID), nil)
		}
		if _, dup := seen[f.Name]; dup {
			return NewError(KindValidation, fmt.Sprintf("template %q declares field %q twice", def.ID, f.Name), nil)
		}
		seen[f.Name] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.ID]; exists {
		return NewError(KindValidation, fmt.Sprintf("template %q already registered", def.ID), nil)
	}
	r.defs[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Lookup returns the definition for the id. Submission-time callers must
// treat a miss as a hard error; silently substituting another template
// would render the wrong document for the user's data.
func (r *Registry) Lookup(id string) (TemplateDefinition, error) {
	r.mu.RLock()
	def, ok := r.defs[id]
	r.mu.RUnlock()
	if !ok {
		return TemplateDefinition{}, NewError(KindUnknownTemplate, fmt.Sprintf("template %q not found", id), nil)
	}
	return def, nil
}

// LookupOrDefault resolves the id, falling back to DefaultTemplateID when
// the id is empty or unrecognized. Used for first-step resolution on page
// load, never for final submission.
func (r *Registry) LookupOrDefault(id string) TemplateDefinition {
	if def, err := r.Lookup(id); err == nil {
		return def
	}
	def, err := r.Lookup(DefaultTemplateID)
	if err != nil {
		panic(fmt.Sprintf("invite: default template %q is not registered", DefaultTemplateID))
	}
	return def
}

// List returns all definitions in registration order.
func (r *Registry) List() []TemplateDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]TemplateDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}
