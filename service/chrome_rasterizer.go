package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"armario-probador/dressup"
)

const chromeRenderTimeout = 30 * time.Second

// waitForImagesJS resolves once every image in the model area has loaded or failed
const waitForImagesJS = `Promise.all(Array.from(document.querySelectorAll('#modelArea img')).map(img =>
	img.complete ? true : new Promise(resolve => { img.onload = img.onerror = () => resolve(true); })
)).then(() => true)`

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths and PATH
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"chromium", "chromium-browser", "google-chrome", "chrome"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// RenderOutfitURL returns the URL of the render endpoint showing layers
func RenderOutfitURL(baseURL string, layers []dressup.PlacedLayer) string {
	q := url.Values{}
	for _, pl := range layers {
		q.Add("l", string(pl.Layer)+"|"+pl.SourceRef)
	}
	return strings.TrimRight(baseURL, "/") + "/dressup/render?" + q.Encode()
}

// ChromeRasterizer screenshots the rendered outfit in headless Chrome, the
// same way the page looks in the browser.
// Implements dressup.Rasterizer
type ChromeRasterizer struct {
	chromePath string
	baseURL    string
}

// NewChromeRasterizer creates a ChromeRasterizer. baseURL is where this server
// can reach itself; chromePath may be empty to auto-detect.
func NewChromeRasterizer(chromePath, baseURL string) *ChromeRasterizer {
	return &ChromeRasterizer{
		chromePath: detectChromePath(chromePath),
		baseURL:    baseURL,
	}
}

// Ensure ChromeRasterizer implements dressup.Rasterizer
var _ dressup.Rasterizer = (*ChromeRasterizer)(nil)

// Available reports whether a Chrome binary was found
func (r *ChromeRasterizer) Available() bool {
	return r.chromePath != ""
}

// Rasterize renders layers in Chrome and returns a PNG of #modelArea
func (r *ChromeRasterizer) Rasterize(ctx context.Context, layers []dressup.PlacedLayer) ([]byte, error) {
	if !r.Available() {
		return nil, fmt.Errorf("%w: chrome not found", dressup.ErrExportUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, chromeRenderTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(r.chromePath),
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.WindowSize(OutfitWidth, OutfitHeight),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := RenderOutfitURL(r.baseURL, layers)
	log.Printf("🌐 Rendering outfit in Chrome: %s", renderURL)

	var loaded bool
	var buf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return page.Enable().Do(ctx)
		}),
		chromedp.EmulateViewport(OutfitWidth, OutfitHeight),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("#modelArea", chromedp.ByID),
		chromedp.Evaluate(waitForImagesJS, &loaded, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.Screenshot("#modelArea", &buf, chromedp.NodeVisible, chromedp.ByID),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: chrome render: %v", dressup.ErrExportFailed, err)
	}

	log.Printf("✓ Outfit rendered: %d bytes", len(buf))
	return buf, nil
}
