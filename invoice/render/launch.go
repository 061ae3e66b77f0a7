package render

import (
	"os"
	"strings"

	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

// LaunchConfig describes how to start the headless browser for one render.
type LaunchConfig struct {
	// Managed runs with serverless flags. Without an ExecutablePath a browser build is
	// downloaded on first use.
	Managed        bool
	ExecutablePath string
	Flags          []string
	NoSandbox      bool
}

// BundledBrowserEnv points at a browser shipped with the deployment.
const BundledBrowserEnv = "ROD_BROWSER_BIN"

var serverlessFlags = []string{
	"single-process",
	"no-zygote",
	"disable-gpu",
	"disable-dev-shm-usage",
}

var localFlags = []string{
	"disable-gpu",
}

// LocalBrowserPaths are probed in order when no override is configured.
var LocalBrowserPaths = []string{
	// linux
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/snap/bin/chromium",
	// macOS
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
	// windows
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// LaunchConfig picks the launch configuration for the current environment. Outside a managed
// runtime it fails with a BrowserNotFoundError when neither the override nor any well known
// path holds a browser.
func (r *Renderer) LaunchConfig() (*LaunchConfig, error) {
	if r.env.IsManaged() {
		cfg := &LaunchConfig{
			Managed:   true,
			Flags:     serverlessFlags,
			NoSandbox: true,
		}

		for _, path := range r.overrides() {
			if r.exists(path) {
				cfg.ExecutablePath = path
				break
			}
		}

		return cfg, nil
	}

	candidates := append(r.overrides(), r.candidates...)

	for _, path := range candidates {
		if r.exists(path) {
			return &LaunchConfig{
				ExecutablePath: path,
				Flags:          localFlags,
			}, nil
		}
	}

	return nil, &domain.BrowserNotFoundError{Searched: candidates}
}

func (r *Renderer) overrides() []string {
	var paths []string

	if override := strings.TrimSpace(r.browserPath); override != "" {
		paths = append(paths, override)
	}

	if bundled, ok := r.lookupEnv(BundledBrowserEnv); ok && strings.TrimSpace(bundled) != "" {
		paths = append(paths, strings.TrimSpace(bundled))
	}

	return paths
}
