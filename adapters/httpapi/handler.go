// Package httpapi exposes the rendering service over HTTP.
package httpapi

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imenapop/paperpop/internal/metrics"
	"github.com/imenapop/paperpop/invite"
)

// Handler serves render submissions and template metadata.
type Handler struct {
	Service *invite.Service
	Logger  invite.Logger
}

// NewHandler wires a handler. A nil logger is replaced with a no-op logger.
func NewHandler(service *invite.Service, logger invite.Logger) *Handler {
	if logger == nil {
		logger = invite.NopLogger{}
	}
	return &Handler{Service: service, Logger: logger}
}

// Options configure the HTTP application.
type Options struct {
	AllowedOrigins string
}

// NewApp builds the fiber application with all routes and middleware
// registered.
func NewApp(h *Handler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "paperpop",
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h.Register(app)
	return app
}

// Register mounts the handler routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/generate-pdf", h.GeneratePDF)
	app.Post("/generate-image", h.GenerateImage)
	app.Get("/api/templates", h.ListTemplates)
	app.Get("/healthz", h.Health)
}

// GeneratePDF renders the submitted record as an A4 PDF and returns it
// base64-encoded inside the response envelope.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	return h.generate(c, invite.ArtifactPDF)
}

// GenerateImage renders the submitted record as a full-page PNG and returns
// it base64-encoded inside the response envelope.
func (h *Handler) GenerateImage(c *fiber.Ctx) error {
	return h.generate(c, invite.ArtifactImage)
}

func (h *Handler) generate(c *fiber.Ctx, kind invite.ArtifactKind) error {
	templateID, record, err := decodeSubmission(c.Body())
	if err != nil {
		return h.writeError(c, kind, templateID, err)
	}

	started := time.Now()

	var artifact *invite.Artifact
	switch kind {
	case invite.ArtifactImage:
		artifact, err = h.Service.RenderImage(c.UserContext(), templateID, record)
	default:
		artifact, err = h.Service.RenderPDF(c.UserContext(), templateID, record)
	}
	if err != nil {
		return h.writeError(c, kind, templateID, err)
	}

	metrics.RendersTotal.WithLabelValues(templateID, string(kind)).Inc()
	metrics.RenderDuration.WithLabelValues(templateID, string(kind)).Observe(time.Since(started).Seconds())

	envelope := invite.Envelope{
		Success:  true,
		Filename: artifact.Filename,
	}
	switch kind {
	case invite.ArtifactImage:
		envelope.ImageBase64 = invite.EncodePayload(artifact.Bytes)
	default:
		envelope.PDFBase64 = invite.EncodePayload(artifact.Bytes)
	}

	return c.JSON(envelope)
}

// ListTemplates returns the registered template definitions in registration
// order, including their field schemas.
func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": h.Service.Registry.List(),
	})
}

// Health reports process liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) writeError(c *fiber.Ctx, kind invite.ArtifactKind, templateID string, err error) error {
	ge := invite.AsGoError(err)
	status := statusForKind(invite.KindFromError(err))

	label := templateID
	if label == "" {
		label = "unknown"
	}
	metrics.RenderFailures.WithLabelValues(label, string(kind), ge.TextCode).Inc()

	if status >= fiber.StatusInternalServerError {
		h.Logger.Errorf("http %s %s: %v", c.Method(), c.Path(), err)
	} else {
		h.Logger.Debugf("http %s %s rejected: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(invite.Envelope{
		Error: ge.Message,
		Code:  ge.TextCode,
	})
}

// statusForKind maps caller mistakes to 400 and everything else to 500.
func statusForKind(kind invite.ErrorKind) int {
	switch kind {
	case invite.KindValidation, invite.KindMissingField, invite.KindUnknownTemplate:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// decodeSubmission parses a flat JSON object into the template id and the
// field record. Scalar values are stringified; nested values are dropped.
func decodeSubmission(body []byte) (string, invite.Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", nil, invite.NewError(invite.KindValidation, "request body is not a JSON object", err)
	}

	record := make(invite.Record, len(raw))
	var templateID string
	for key, value := range raw {
		text, ok := stringify(value)
		if !ok {
			continue
		}
		if key == "templateId" {
			templateID = text
			continue
		}
		record[key] = text
	}

	if templateID == "" {
		return "", nil, invite.NewError(invite.KindValidation, "templateId is required", nil)
	}
	return templateID, record, nil
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}
