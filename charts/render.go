package charts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuisine-scene/models"
	"cuisine-scene/utils"
)

const (
	barBaseName = "cuisine_diversity_barplot"
	pieBaseName = "cuisine_diversity_pie_chart"
)

// Files are the paths of the rendered charts.
type Files struct {
	Bar string
	Pie string
}

// Rasterizer converts an SVG file into a PNG file.
type Rasterizer interface {
	ToPNG(ctx context.Context, svgPath, pngPath string) error
}

// Renderer writes the bar and pie charts into a directory. With a nil
// Rasterizer the SVG files are the result; otherwise each SVG is converted
// to PNG and removed.
type Renderer struct {
	dir        string
	rasterizer Rasterizer
	logger     *utils.Logger
}

func NewRenderer(dir string, rasterizer Rasterizer, logger *utils.Logger) *Renderer {
	return &Renderer{dir: dir, rasterizer: rasterizer, logger: logger}
}

// Render draws counts as horizontal bars and percentages as a donut chart.
func (r *Renderer) Render(ctx context.Context, locality string, rows []models.AggregateRow) (Files, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return Files{}, fmt.Errorf("charts: create output dir: %w", err)
	}

	bar, err := r.render(ctx, barBaseName, func(w io.Writer) error {
		return writeBarSVG(w, "Cuisine Distribution in "+locality, rows)
	})
	if err != nil {
		return Files{Bar: bar}, err
	}

	pie, err := r.render(ctx, pieBaseName, func(w io.Writer) error {
		return writePieSVG(w, "Diversity of Cuisines in "+locality, rows)
	})
	if err != nil {
		return Files{Bar: bar}, err
	}

	return Files{Bar: bar, Pie: pie}, nil
}

func (r *Renderer) render(ctx context.Context, base string, draw func(io.Writer) error) (string, error) {
	svgPath := filepath.Join(r.dir, base+".svg")

	f, err := os.Create(svgPath)
	if err != nil {
		return "", fmt.Errorf("charts: create %q: %w", svgPath, err)
	}
	if err := draw(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("charts: draw %s: %w", base, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("charts: close %q: %w", svgPath, err)
	}

	if r.rasterizer == nil {
		r.logger.Info("[charts] Saved %s", svgPath)
		return svgPath, nil
	}

	pngPath := strings.TrimSuffix(svgPath, ".svg") + ".png"
	if err := r.rasterizer.ToPNG(ctx, svgPath, pngPath); err != nil {
		return svgPath, fmt.Errorf("charts: rasterize %s: %w", base, err)
	}
	if err := os.Remove(svgPath); err != nil {
		r.logger.Warn("[charts] Could not remove intermediate %s: %v", svgPath, err)
	}
	r.logger.Info("[charts] Saved %s", pngPath)
	return pngPath, nil
}
