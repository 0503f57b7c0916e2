package invite

import "context"

// ArtifactKind is the rendered output kind.
type ArtifactKind string

const (
	ArtifactPDF   ArtifactKind = "pdf"
	ArtifactImage ArtifactKind = "image"
)

// MIMEType returns the payload content type for the kind.
func (k ArtifactKind) MIMEType() string {
	if k == ArtifactImage {
		return "image/png"
	}
	return "application/pdf"
}

// Ext returns the download file extension for the kind.
func (k ArtifactKind) Ext() string {
	if k == ArtifactImage {
		return "png"
	}
	return "pdf"
}

// FieldKind is the semantic input type of a wizard field.
type FieldKind string

const (
	FieldShortText FieldKind = "short-text"
	FieldLongText  FieldKind = "long-text"
	FieldImage     FieldKind = "image"
	FieldInteger   FieldKind = "integer"
)

// FieldSpec describes one wizard step. Name is the record key; order of
// specs inside a definition drives wizard progression.
type FieldSpec struct {
	Name        string    `json:"name"`
	Kind        FieldKind `json:"kind"`
	Label       string    `json:"label"`
	Help        string    `json:"help,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Record maps field names to submitted string values. Image values are
// data-URI strings produced by the client before submission.
type Record map[string]string

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// TemplateDefinition is one fixed invitation layout plus the ordered field
// schema needed to populate it. Definitions are registered at process start
// and immutable afterwards.
type TemplateDefinition struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Category string      `json:"category,omitempty"`
	Code     string      `json:"code,omitempty"`
	Fields   []FieldSpec `json:"fields"`

	Builder MarkupBuilder `json:"-"`
}

// Field returns the spec with the given name.
func (d TemplateDefinition) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// MarkupBuilder turns a complete record into the markup document for one
// template layout. Builders are pure: identical input yields identical
// markup, with any local art inlined through the resolver.
type MarkupBuilder interface {
	BuildMarkup(record Record, assets *AssetResolver) (string, error)
}

// Artifact is the rendered binary output for one submission. It is held
// only long enough to hand back to the caller.
type Artifact struct {
	Kind     ArtifactKind
	MIMEType string
	Bytes    []byte
	Filename string
}

// Backend is the headless rendering engine. It accepts a finished markup
// document and returns binary output; the engine must not need any
// filesystem or network access beyond the markup itself.
type Backend interface {
	RenderPDF(ctx context.Context, markup string) ([]byte, error)
	RenderImage(ctx context.Context, markup string) ([]byte, error)
}

// Requester performs a remote render on behalf of the wizard.
type Requester interface {
	Request(ctx context.Context, kind ArtifactKind, templateID string, record Record) (*Artifact, error)
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
