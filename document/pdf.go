package document

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"gemtrade/logger"
)

// PDFRenderer converts an HTML document to PDF.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromePDF prints pages with a headless Chromium driven over the DevTools
// protocol. The browser is started on first use and reused.
type ChromePDF struct {
	binPath string

	mu      sync.Mutex
	browser *rod.Browser
}

// NewChromePDF returns a renderer. An empty binPath lets rod locate or
// download a browser.
func NewChromePDF(binPath string) *ChromePDF {
	return &ChromePDF{binPath: binPath}
}

func (c *ChromePDF) connect() (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser != nil {
		return c.browser, nil
	}

	l := launcher.New().Headless(true).Leakless(false)
	if c.binPath != "" {
		l = l.Bin(c.binPath)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	logger.Info("pdf browser started")
	c.browser = browser
	return browser, nil
}

// RenderPDF prints html on A4 with backgrounds.
func (c *ChromePDF) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	browser, err := c.connect()
	if err != nil {
		return nil, err
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	width, height := 8.27, 11.69
	margin := 0.4
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	defer stream.Close()

	out, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("print pdf: empty document")
	}
	return out, nil
}

// Close shuts the browser down if it was started.
func (c *ChromePDF) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	c.browser = nil
	return err
}
