package render

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/hashicorp/go-multierror"
)

// Session is one running browser. Close must be called once rendering is over.
type Session interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// Launcher starts a browser for cfg.
type Launcher func(ctx context.Context, cfg LaunchConfig) (Session, error)

const (
	// A4 in inches.
	paperWidth  = 8.27
	paperHeight = 11.69
	// 50px at 96dpi.
	pageMargin = 50.0 / 96

	networkIdle = 500 * time.Millisecond
)

var managedBrowserDir = filepath.Join(os.TempDir(), "invoices-browser")

type rodSession struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// LaunchRod starts a headless chromium through go-rod.
func LaunchRod(ctx context.Context, cfg LaunchConfig) (Session, error) {
	bin := cfg.ExecutablePath

	if cfg.Managed && bin == "" {
		b := launcher.NewBrowser()
		b.RootDir = managedBrowserDir
		b.Context = ctx

		path, err := b.Get()
		if err != nil {
			return nil, err
		}

		bin = path
	}

	l := launcher.New().
		Context(ctx).
		Bin(bin).
		Headless(true).
		Leakless(false).
		NoSandbox(cfg.NoSandbox)

	for _, f := range cfg.Flags {
		l = l.Set(flags.Flag(f))
	}

	controlURL, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, err
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()

		return nil, err
	}

	return &rodSession{browser: browser, launcher: l}, nil
}

func (s *rodSession) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	page, err := s.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}

	wait := page.WaitRequestIdle(networkIdle, nil, nil, nil)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, err
	}

	wait()

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      num(paperWidth),
		PaperHeight:     num(paperHeight),
		MarginTop:       num(pageMargin),
		MarginBottom:    num(pageMargin),
		MarginLeft:      num(pageMargin),
		MarginRight:     num(pageMargin),
		PrintBackground: true,
	})
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	return io.ReadAll(stream)
}

// Close shuts the browser down and always kills the process.
func (s *rodSession) Close() error {
	var result error

	if err := s.browser.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	s.launcher.Kill()
	s.launcher.Cleanup()

	return result
}

func num(v float64) *float64 {
	return &v
}
