// Package client calls a remote rendering service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imenapop/paperpop/invite"
)

// DefaultTimeout bounds a render round trip when the caller context
// carries no deadline.
const DefaultTimeout = 60 * time.Second

// Client submits records to a rendering service and decodes the returned
// artifacts. It implements invite.Requester.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     invite.Logger
}

var _ invite.Requester = (*Client)(nil)

// New builds a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Logger:     invite.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option customizes a client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger invite.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// Request renders the record remotely and returns the decoded artifact.
func (c *Client) Request(ctx context.Context, kind invite.ArtifactKind, templateID string, record invite.Record) (*invite.Artifact, error) {
	if templateID == "" {
		return nil, invite.NewError(invite.KindValidation, "template id is required", nil)
	}

	body := make(map[string]string, len(record)+1)
	for k, v := range record {
		body[k] = v
	}
	body["templateId"] = templateID

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, invite.NewError(invite.KindInternal, "encode render request", err)
	}

	url := c.BaseURL + pathForKind(kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, invite.NewError(invite.KindInternal, "build render request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, invite.NewError(invite.KindTimeout, "render request did not complete in time", err)
		}
		return nil, invite.NewError(invite.KindBackend, "render service unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024*1024))
	if err != nil {
		return nil, invite.NewError(invite.KindBackend, "read render response", err)
	}

	var envelope invite.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, invite.NewError(invite.KindDecode, "render response is not valid JSON", err)
	}

	if resp.StatusCode != http.StatusOK || !envelope.Success {
		return nil, errorFromEnvelope(resp.StatusCode, envelope)
	}

	encoded := envelope.PDFBase64
	if kind == invite.ArtifactImage {
		encoded = envelope.ImageBase64
	}
	if encoded == "" {
		return nil, invite.NewError(invite.KindDecode, "render response is missing the encoded payload", nil)
	}

	data, err := invite.DecodePayload(encoded)
	if err != nil {
		return nil, err
	}

	filename := envelope.Filename
	if filename == "" {
		filename = invite.ArtifactFilename(templateID, kind)
	}

	c.Logger.Debugf("rendered %s %s remotely in %s (%d bytes)", templateID, kind, time.Since(started), len(data))

	return &invite.Artifact{
		Kind:     kind,
		MIMEType: kind.MIMEType(),
		Bytes:    data,
		Filename: filename,
	}, nil
}

func pathForKind(kind invite.ArtifactKind) string {
	if kind == invite.ArtifactImage {
		return "/generate-image"
	}
	return "/generate-pdf"
}

// errorFromEnvelope rebuilds the service error so callers can branch on
// its kind the same way they would against a local service.
func errorFromEnvelope(status int, envelope invite.Envelope) error {
	msg := envelope.Error
	if msg == "" {
		msg = fmt.Sprintf("render service returned status %d", status)
	}

	kind := invite.KindBackend
	if code := invite.ErrorKind(envelope.Code); code != "" {
		switch code {
		case invite.KindValidation, invite.KindMissingField, invite.KindUnknownTemplate,
			invite.KindAsset, invite.KindBackend, invite.KindDecode,
			invite.KindTimeout, invite.KindCanceled, invite.KindInternal:
			kind = code
		}
	}

	return invite.NewError(kind, msg, nil)
}
