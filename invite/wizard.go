package invite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// WizardPhase is the wizard's lifecycle phase.
type WizardPhase string

const (
	PhaseEditing    WizardPhase = "editing"
	PhaseSubmitting WizardPhase = "submitting"
	PhaseReady      WizardPhase = "ready"
	PhaseFailed     WizardPhase = "failed"
)

// ErrSubmissionInFlight is returned when a submission for the same
// artifact kind is already pending. Callers treat it as a no-op: the
// duplicate request is ignored, never queued.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// Wizard walks a template's ordered field schema one step at a time,
// accumulating the submission record. All state lives in this one object,
// so conflicting flag combinations cannot be represented.
//
// The two artifact kinds are requested independently: obtaining the PDF
// does not consume or invalidate the image, and each kind allows one
// in-flight submission at a time.
type Wizard struct {
	mu        sync.Mutex
	registry  *Registry
	requester Requester
	def       TemplateDefinition
	step      int
	record    Record
	inFlight  map[ArtifactKind]bool
	artifacts map[ArtifactKind]*Artifact
	lastErr   error
	epoch     int
}

// NewWizard starts a wizard for the template id, falling back to the
// default template when the id is empty or unrecognized, matching how the
// form page resolves its template query parameter.
func NewWizard(registry *Registry, requester Requester, templateID string) *Wizard {
	return &Wizard{
		registry:  registry,
		requester: requester,
		def:       registry.LookupOrDefault(templateID),
		record:    make(Record),
		inFlight:  make(map[ArtifactKind]bool),
		artifacts: make(map[ArtifactKind]*Artifact),
	}
}

// Definition returns the active template definition.
func (w *Wizard) Definition() TemplateDefinition {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.def
}

// StepIndex returns the zero-based current step.
func (w *Wizard) StepIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// CurrentField returns the field spec for the current step.
func (w *Wizard) CurrentField() FieldSpec {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.def.Fields[w.step]
}

// Value returns the stored value for a field.
func (w *Wizard) Value(name string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	value, ok := w.record[name]
	return value, ok
}

// Record returns a copy of the in-progress submission record.
func (w *Wizard) Record() Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.record.Clone()
}

// Phase derives the wizard phase from its state.
func (w *Wizard) Phase() WizardPhase {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case len(w.inFlight) > 0:
		return PhaseSubmitting
	case w.lastErr != nil:
		return PhaseFailed
	case len(w.artifacts) > 0:
		return PhaseReady
	default:
		return PhaseEditing
	}
}

// Err returns the most recent submission failure, if any.
func (w *Wizard) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Artifact returns the rendered artifact of the given kind.
func (w *Wizard) Artifact(kind ArtifactKind) (*Artifact, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	artifact, ok := w.artifacts[kind]
	return artifact, ok
}

// SetValue stores a field value; the step does not change.
func (w *Wizard) SetValue(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.def.Field(name); !ok {
		return NewError(KindValidation, fmt.Sprintf("template %q has no field %q", w.def.ID, name), nil)
	}
	w.record[name] = value
	return nil
}

// SetFileValue stores uploaded file content as a data-URI string. The
// field holds the final string only; there is no partially-converted
// state visible to callers.
func (w *Wizard) SetFileValue(name, mimeType string, data []byte) error {
	return w.SetValue(name, EncodeDataURI(mimeType, data))
}

// Advance moves to the next step, or triggers the PDF submission when the
// last step is complete. It refuses to move while the current field is
// empty; this is the only client-side validation.
func (w *Wizard) Advance(ctx context.Context) error {
	w.mu.Lock()
	field := w.def.Fields[w.step]
	if strings.TrimSpace(w.record[field.Name]) == "" {
		w.mu.Unlock()
		return NewError(KindMissingField, fmt.Sprintf("field %q is required", field.Name), nil)
	}
	if w.step < len(w.def.Fields)-1 {
		w.step++
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	_, err := w.submit(ctx, ArtifactPDF)
	return err
}

// SubmitPDF requests the PDF artifact.
func (w *Wizard) SubmitPDF(ctx context.Context) (*Artifact, error) {
	return w.submit(ctx, ArtifactPDF)
}

// SubmitImage requests the image artifact.
func (w *Wizard) SubmitImage(ctx context.Context) (*Artifact, error) {
	return w.submit(ctx, ArtifactImage)
}

func (w *Wizard) submit(ctx context.Context, kind ArtifactKind) (*Artifact, error) {
	w.mu.Lock()
	if w.requester == nil {
		w.mu.Unlock()
		return nil, NewError(KindInternal, "wizard has no requester", nil)
	}
	if w.inFlight[kind] {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	w.inFlight[kind] = true
	templateID := w.def.ID
	record := w.record.Clone()
	requester := w.requester
	epoch := w.epoch
	w.mu.Unlock()

	artifact, err := requester.Request(ctx, kind, templateID, record)

	w.mu.Lock()
	defer w.mu.Unlock()
	if epoch != w.epoch {
		// The template changed while the request was out; its result no
		// longer belongs to this wizard run.
		if err != nil {
			return nil, err
		}
		return nil, NewError(KindCanceled, "template changed while the render was in flight", nil)
	}
	delete(w.inFlight, kind)
	if err != nil {
		w.lastErr = err
		return nil, err
	}
	w.lastErr = nil
	w.artifacts[kind] = artifact
	return artifact, nil
}

// ChangeTemplate switches to another template. This is a full reset: the
// step returns to zero and the record and artifacts are cleared, whatever
// the prior state.
func (w *Wizard) ChangeTemplate(templateID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.def = w.registry.LookupOrDefault(templateID)
	w.step = 0
	w.record = make(Record)
	w.inFlight = make(map[ArtifactKind]bool)
	w.artifacts = make(map[ArtifactKind]*Artifact)
	w.lastErr = nil
	w.epoch++
}
