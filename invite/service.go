package invite

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service orchestrates one render: template lookup, record validation,
// markup build and backend capture. Rendering is synchronous and
// request-scoped; nothing is persisted.
type Service struct {
	Registry *Registry
	Backend  Backend
	Assets   *AssetResolver
	Logger   Logger
}

// NewService wires a render service. A nil logger is replaced with a
// no-op logger and a nil resolver with the embedded assets.
func NewService(registry *Registry, backend Backend, assets *AssetResolver, logger Logger) *Service {
	if assets == nil {
		assets = DefaultAssetResolver()
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Service{Registry: registry, Backend: backend, Assets: assets, Logger: logger}
}

// RenderPDF renders the submission as a paginated A4 PDF.
func (s *Service) RenderPDF(ctx context.Context, templateID string, record Record) (*Artifact, error) {
	return s.render(ctx, ArtifactPDF, templateID, record)
}

// RenderImage renders the submission as a full-page PNG.
func (s *Service) RenderImage(ctx context.Context, templateID string, record Record) (*Artifact, error) {
	return s.render(ctx, ArtifactImage, templateID, record)
}

func (s *Service) render(ctx context.Context, kind ArtifactKind, templateID string, record Record) (*Artifact, error) {
	if s == nil || s.Registry == nil {
		return nil, NewError(KindInternal, "render service is not configured", nil)
	}
	if s.Backend == nil {
		return nil, NewError(KindInternal, "render service requires a backend", nil)
	}

	renderID := uuid.NewString()
	started := time.Now()

	// Submission-time lookup is strict: the record was built against this
	// template, so substituting another would render the wrong document.
	def, err := s.Registry.Lookup(templateID)
	if err != nil {
		return nil, err
	}
	if err := ValidateRecord(def, record); err != nil {
		return nil, err
	}

	markup, err := def.Builder.BuildMarkup(record, s.Assets)
	if err != nil {
		s.Logger.Errorf("render %s: markup for %s failed: %v", renderID, templateID, err)
		return nil, err
	}

	var payload []byte
	switch kind {
	case ArtifactImage:
		payload, err = s.Backend.RenderImage(ctx, markup)
	default:
		payload, err = s.Backend.RenderPDF(ctx, markup)
	}
	if err != nil {
		s.Logger.Errorf("render %s: backend %s capture for %s failed: %v", renderID, kind, templateID, err)
		return nil, err
	}
	if len(payload) == 0 {
		s.Logger.Errorf("render %s: backend returned empty %s output for %s", renderID, kind, templateID)
		return nil, NewError(KindBackend, "rendering backend returned no output", nil)
	}

	s.Logger.Infof("render %s: %s %s done in %s (%d bytes)", renderID, templateID, kind, time.Since(started), len(payload))

	return &Artifact{
		Kind:     kind,
		MIMEType: kind.MIMEType(),
		Bytes:    payload,
		Filename: ArtifactFilename(templateID, kind),
	}, nil
}
