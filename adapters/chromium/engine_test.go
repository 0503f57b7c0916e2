package chromium

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/imenapop/paperpop/invite"
)

func chromeBinaryPath(t *testing.T) string {
	t.Helper()

	chromePath := os.Getenv("CHROME_BIN")
	if chromePath == "" {
		paths := []string{"google-chrome", "chromium", "chromium-browser"}
		for _, candidate := range paths {
			if path, err := exec.LookPath(candidate); err == nil {
				chromePath = path
				break
			}
		}
	}
	if chromePath == "" {
		t.Skip("chromium binary not found; set CHROME_BIN to run this test")
	}

	return chromePath
}

func TestAllocatorOptionsFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{args: nil, want: 0},
		{args: []string{""}, want: 0},
		{args: []string{"--"}, want: 0},
		{args: []string{"--no-sandbox"}, want: 1},
		{args: []string{"no-sandbox", "--disable-gpu", "window-size=794,1123"}, want: 3},
	}

	for _, tc := range tests {
		got := allocatorOptionsFromArgs(tc.args)
		if len(got) != tc.want {
			t.Fatalf("allocatorOptionsFromArgs(%v): expected %d options, got %d", tc.args, tc.want, len(got))
		}
	}
}

func TestWrapRenderErrorTimeout(t *testing.T) {
	err := wrapRenderError("chromium pdf render failed", context.DeadlineExceeded)
	if got := invite.KindFromError(err); got != invite.KindBackend {
		t.Fatalf("expected render_backend kind, got %s", got)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout message, got %s", err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected wrapped deadline error")
	}
}

func TestNilEngineFails(t *testing.T) {
	var e *Engine
	if _, err := e.RenderPDF(context.Background(), "<html></html>"); err == nil {
		t.Fatal("expected error from nil engine")
	}
}

func TestEngineRendersPDFAndImage(t *testing.T) {
	engine := &Engine{
		BrowserPath: chromeBinaryPath(t),
		Headless:    true,
		Timeout:     time.Minute,
		Args:        []string{"--no-sandbox", "--disable-setuid-sandbox"},
	}
	defer engine.Close()

	markup := `<!DOCTYPE html><html><body><h1>Hello</h1></body></html>`

	pdf, err := engine.RenderPDF(context.Background(), markup)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(string(pdf[:4]), "%PDF") {
		t.Fatal("expected non-empty pdf output")
	}

	png, err := engine.RenderImage(context.Background(), markup)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	if len(png) < 8 || png[1] != 'P' || png[2] != 'N' || png[3] != 'G' {
		t.Fatal("expected png output")
	}
}
