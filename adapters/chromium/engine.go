// Package chromium drives a headless Chromium instance to turn finished
// invitation markup into PDF or PNG output.
package chromium

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/imenapop/paperpop/invite"
)

// Page viewport matching the fixed card layout: A4 at 96 DPI.
const (
	ViewportWidth  = 794
	ViewportHeight = 1123
)

const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	pdfScale       = 1.0
	pngQuality     = 100

	// DefaultTimeout bounds the wait for the document to settle. The
	// render fails instead of blocking the request forever.
	DefaultTimeout = 30 * time.Second
)

// Engine renders markup using a shared headless Chromium instance. The
// browser path is injected configuration; each render gets its own tab
// context released on every exit path.
type Engine struct {
	BrowserPath string
	Headless    bool
	Timeout     time.Duration
	Args        []string

	initOnce      sync.Once
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

var _ invite.Backend = (*Engine)(nil)

// RenderPDF captures the markup as a paginated A4 PDF with background
// graphics included.
func (e *Engine) RenderPDF(ctx context.Context, markup string) ([]byte, error) {
	var pdf []byte
	capture := chromedp.ActionFunc(func(ctx context.Context) error {
		params := page.PrintToPDF().
			WithScale(pdfScale).
			WithPrintBackground(true).
			WithPaperWidth(a4WidthInches).
			WithPaperHeight(a4HeightInches)
		var err error
		pdf, _, err = params.Do(ctx)
		return err
	})

	if err := e.run(ctx, markup, capture); err != nil {
		return nil, wrapRenderError("chromium pdf render failed", err)
	}
	return pdf, nil
}

// RenderImage captures the markup as a full-page PNG at the fixed
// viewport size.
func (e *Engine) RenderImage(ctx context.Context, markup string) ([]byte, error) {
	var png []byte
	capture := chromedp.FullScreenshot(&png, pngQuality)

	if err := e.run(ctx, markup, capture); err != nil {
		return nil, wrapRenderError("chromium image render failed", err)
	}
	return png, nil
}

func (e *Engine) run(ctx context.Context, markup string, capture chromedp.Action) error {
	if e == nil {
		return invite.NewError(invite.KindInternal, "chromium engine is nil", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := e.ensureBrowser(); err != nil {
		return invite.NewError(invite.KindInternal, "chromium engine init failed", err)
	}

	tabCtx, cancel := chromedp.NewContext(e.browserCtx)
	defer cancel()

	execCtx, cancelReq := context.WithCancel(tabCtx)
	defer cancelReq()
	go func() {
		select {
		case <-ctx.Done():
			cancelReq()
		case <-execCtx.Done():
		}
	}()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	execCtx, cancelTimeout := context.WithTimeout(execCtx, timeout)
	defer cancelTimeout()

	return chromedp.Run(execCtx,
		chromedp.EmulateViewport(ViewportWidth, ViewportHeight),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, markup).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		capture,
	)
}

// Close releases Chromium resources if they have been initialized.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	if e.browserCancel != nil {
		e.browserCancel()
	}
	if e.allocCancel != nil {
		e.allocCancel()
	}
	return nil
}

func (e *Engine) ensureBrowser() error {
	e.initOnce.Do(func() {
		options := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		if e.BrowserPath != "" {
			options = append(options, chromedp.ExecPath(e.BrowserPath))
		}
		options = append(options, chromedp.Flag("headless", e.Headless))
		options = append(options, allocatorOptionsFromArgs(e.Args)...)

		e.allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), options...)
		e.browserCtx, e.browserCancel = chromedp.NewContext(e.allocCtx)
	})
	if e.allocCtx == nil || e.browserCtx == nil {
		return errors.New("chromium allocator unavailable")
	}
	return nil
}

func wrapRenderError(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		msg = msg + ": timed out waiting for document to settle"
	}
	return invite.NewError(invite.KindBackend, msg, err)
}

func allocatorOptionsFromArgs(args []string) []chromedp.ExecAllocatorOption {
	options := make([]chromedp.ExecAllocatorOption, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		arg = strings.TrimPrefix(arg, "--")
		if arg == "" {
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			options = append(options, chromedp.Flag(name, value))
			continue
		}
		options = append(options, chromedp.Flag(arg, true))
	}
	return options
}
