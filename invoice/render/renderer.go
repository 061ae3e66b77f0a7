package render

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/goldleaf/storefront/invoices/invoice/domain"
	"github.com/goldleaf/storefront/invoices/logger"
)

// Renderer prints invoice HTML to PDF, one browser per call.
type Renderer struct {
	loggerProvider logger.Provider
	env            ExecutionEnvironment
	browserPath    string
	candidates     []string
	exists         func(string) bool
	lookupEnv      func(string) (string, bool)
	launch         Launcher
}

// NewRenderer returns a go-rod backed renderer. browserPath overrides local browser discovery.
func NewRenderer(log logger.Provider, env ExecutionEnvironment, browserPath string) *Renderer {
	return &Renderer{
		loggerProvider: log,
		env:            env,
		browserPath:    browserPath,
		candidates:     LocalBrowserPaths,
		exists:         fileExists,
		lookupEnv:      os.LookupEnv,
		launch:         LaunchRod,
	}
}

// Render returns the PDF bytes of html. The browser is released before returning,
// whether printing succeeded or not.
func (r *Renderer) Render(ctx context.Context, html string) (pdf []byte, err error) {
	l := r.loggerProvider(ctx)

	cfg, err := r.LaunchConfig()
	if err != nil {
		return nil, err
	}

	session, err := r.launch(ctx, *cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: launch browser: %w", domain.ErrRender, err)
	}

	defer func() {
		closeErr := session.Close()
		if closeErr == nil {
			return
		}

		if err != nil {
			err = multierror.Append(err, fmt.Errorf("close browser: %w", closeErr))
			return
		}

		l.Warningf("failed to close browser after rendering: %s", closeErr)
	}()

	pdf, err = session.PrintPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}

	return pdf, nil
}
