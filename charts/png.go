package charts

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"cuisine-scene/utils"
)

// ChromeRasterizer renders SVG files to PNG with headless Chrome.
type ChromeRasterizer struct {
	chromeBin string
	logger    *utils.Logger
}

// NewChromeRasterizer uses chromeBin, or the first Chrome/Chromium binary
// found on the system when it is empty.
func NewChromeRasterizer(chromeBin string, logger *utils.Logger) *ChromeRasterizer {
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	return &ChromeRasterizer{chromeBin: chromeBin, logger: logger}
}

func (c *ChromeRasterizer) ToPNG(ctx context.Context, svgPath, pngPath string) error {
	width, height, err := svgSize(svgPath)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(svgPath)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", svgPath, err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.WindowSize(width, height),
	)
	if c.chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(c.chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	taskCtx, cancelTask := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTask()

	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, 60*time.Second)
	defer cancelTimeout()

	var buf []byte
	if err := chromedp.Run(taskCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate("file://"+filepath.ToSlash(abs)),
		chromedp.FullScreenshot(&buf, 100),
	); err != nil {
		return fmt.Errorf("chromedp screenshot: %w", err)
	}

	c.logger.Debug("[charts] Rasterized %s (%dx%d, %d bytes)", svgPath, width, height, len(buf))
	return os.WriteFile(pngPath, buf, 0644)
}

// svgSize reads the width and height attributes of the root element.
func svgSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var root struct {
		Width  int `xml:"width,attr"`
		Height int `xml:"height,attr"`
	}
	if err := xml.NewDecoder(f).Decode(&root); err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", path, err)
	}
	if root.Width <= 0 || root.Height <= 0 {
		return 0, 0, fmt.Errorf("svg %q has no size", path)
	}
	return root.Width, root.Height, nil
}

// findChromeBinary locates Chrome/Chromium binary.
func findChromeBinary() string {
	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
