package invite

import (
	"context"
	"errors"
	"testing"
)

type stubBackend struct {
	pdf      []byte
	image    []byte
	err      error
	pdfCalls int
	imgCalls int
	markup   string
}

func (b *stubBackend) RenderPDF(_ context.Context, markup string) ([]byte, error) {
	b.pdfCalls++
	b.markup = markup
	return b.pdf, b.err
}

func (b *stubBackend) RenderImage(_ context.Context, markup string) ([]byte, error) {
	b.imgCalls++
	b.markup = markup
	return b.image, b.err
}

func completeRecord(templateID string) Record {
	switch templateID {
	case "kwibuka":
		return Record{
			"years":         "31",
			"date":          "5/5/2026",
			"venue":         "Kigali",
			"messageOfHope": "Hope endures",
		}
	case "event":
		return Record{
			"eventDate":     "12th June 2026",
			"eventDay":      "7th May 2025",
			"hostingFamily": "Uwimana",
			"location":      "Kigali",
		}
	default:
		return Record{
			"name":    "Ada",
			"message": "Happy day!",
			"image":   "data:image/png;base64,AAAA",
		}
	}
}

func TestServiceRendersEveryTemplate(t *testing.T) {
	for _, def := range DefaultRegistry().List() {
		backend := &stubBackend{pdf: []byte("%PDF"), image: []byte{0x89, 'P', 'N', 'G'}}
		svc := NewService(DefaultRegistry(), backend, nil, nil)

		pdf, err := svc.RenderPDF(context.Background(), def.ID, completeRecord(def.ID))
		if err != nil {
			t.Fatalf("%s pdf: %v", def.ID, err)
		}
		if pdf.MIMEType != "application/pdf" || len(pdf.Bytes) == 0 {
			t.Fatalf("%s pdf: unexpected artifact %+v", def.ID, pdf)
		}
		if pdf.Filename != def.ID+"-invitation.pdf" {
			t.Fatalf("%s pdf: unexpected filename %s", def.ID, pdf.Filename)
		}

		img, err := svc.RenderImage(context.Background(), def.ID, completeRecord(def.ID))
		if err != nil {
			t.Fatalf("%s image: %v", def.ID, err)
		}
		if img.MIMEType != "image/png" || len(img.Bytes) == 0 {
			t.Fatalf("%s image: unexpected artifact %+v", def.ID, img)
		}
		if img.Filename != def.ID+"-invitation.png" {
			t.Fatalf("%s image: unexpected filename %s", def.ID, img.Filename)
		}

		if backend.pdfCalls != 1 || backend.imgCalls != 1 {
			t.Fatalf("%s: unexpected backend call counts %d/%d", def.ID, backend.pdfCalls, backend.imgCalls)
		}
		if backend.markup == "" {
			t.Fatalf("%s: backend received empty markup", def.ID)
		}
	}
}

func TestServiceUnknownTemplate(t *testing.T) {
	backend := &stubBackend{pdf: []byte("%PDF")}
	svc := NewService(DefaultRegistry(), backend, nil, nil)

	artifact, err := svc.RenderPDF(context.Background(), "wedding", Record{})
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if artifact != nil {
		t.Fatal("expected no artifact on failure")
	}
	if got := KindFromError(err); got != KindUnknownTemplate {
		t.Fatalf("expected unknown_template, got %s", got)
	}
	if backend.pdfCalls != 0 {
		t.Fatal("backend must not be called for unknown template")
	}
}

func TestServiceMissingField(t *testing.T) {
	svc := NewService(DefaultRegistry(), &stubBackend{pdf: []byte("%PDF")}, nil, nil)

	record := completeRecord("birthday")
	delete(record, "message")

	_, err := svc.RenderPDF(context.Background(), "birthday", record)
	if err == nil {
		t.Fatal("expected error for missing field")
	}
	if got := KindFromError(err); got != KindMissingField {
		t.Fatalf("expected missing_field, got %s", got)
	}
}

func TestServiceBackendFailure(t *testing.T) {
	backend := &stubBackend{err: NewError(KindBackend, "browser crashed", errors.New("exit 1"))}
	svc := NewService(DefaultRegistry(), backend, nil, nil)

	artifact, err := svc.RenderPDF(context.Background(), "birthday", completeRecord("birthday"))
	if err == nil {
		t.Fatal("expected backend failure to propagate")
	}
	if artifact != nil {
		t.Fatal("expected no artifact on backend failure")
	}
	if got := KindFromError(err); got != KindBackend {
		t.Fatalf("expected render_backend, got %s", got)
	}
	if backend.pdfCalls != 1 {
		t.Fatal("expected a single backend attempt, no retries")
	}
}

func TestServiceEmptyBackendOutput(t *testing.T) {
	svc := NewService(DefaultRegistry(), &stubBackend{}, nil, nil)

	_, err := svc.RenderPDF(context.Background(), "birthday", completeRecord("birthday"))
	if err == nil {
		t.Fatal("expected error for empty backend output")
	}
	if got := KindFromError(err); got != KindBackend {
		t.Fatalf("expected render_backend, got %s", got)
	}
}
