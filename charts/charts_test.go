package charts

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuisine-scene/models"
	"cuisine-scene/utils"
)

var sampleRows = []models.AggregateRow{
	{Category: "mexican", Count: 40, Percentage: 40},
	{Category: "italian", Count: 35, Percentage: 35},
	{Category: "thai", Count: 25, Percentage: 25},
}

func assertWellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err)
	}
}

func TestBarSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBarSVG(&buf, "Cuisine Distribution in Denver, Colorado", sampleRows))

	out := buf.String()
	assertWellFormed(t, buf.Bytes())
	assert.Contains(t, out, "Cuisine Distribution in Denver, Colorado")
	assert.Contains(t, out, ">mexican</text>")
	assert.Contains(t, out, ">40</text>")
	assert.Equal(t, 4, strings.Count(out, "<rect "), "background plus one rect per bar")
}

func TestBarLayoutScalesToLargest(t *testing.T) {
	chart := layoutBars("t", sampleRows)
	require.Len(t, chart.Bars, 3)
	assert.Equal(t, float64(barMaxLength), chart.Bars[0].Width)
	assert.InDelta(t, barMaxLength*25.0/40.0, chart.Bars[2].Width, 0.001)
	assert.Greater(t, chart.Bars[1].Y, chart.Bars[0].Y)
}

func TestPieSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePieSVG(&buf, "Diversity of Cuisines in Denver, Colorado", sampleRows))

	out := buf.String()
	assertWellFormed(t, buf.Bytes())
	assert.Contains(t, out, "Diversity of Cuisines in Denver, Colorado")
	assert.Equal(t, 3, strings.Count(out, "<path "))
	assert.Contains(t, out, ">40.0%</text>")
	assert.Contains(t, out, ">thai</text>")
}

func TestPieSingleSliceIsFullCircle(t *testing.T) {
	chart := layoutPie("t", []models.AggregateRow{{Category: "greek", Count: 9, Percentage: 100}})
	require.Len(t, chart.Slices, 1)
	assert.True(t, chart.Slices[0].Circle)
}

func TestPieSkipsZeroCounts(t *testing.T) {
	chart := layoutPie("t", []models.AggregateRow{
		{Category: "greek", Count: 0},
		{Category: "thai", Count: 3, Percentage: 100},
	})
	require.Len(t, chart.Slices, 1)
	assert.Equal(t, "thai", chart.Slices[0].Name)
}

func TestPieEscapesTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePieSVG(&buf, "A & B <C>", sampleRows))
	assertWellFormed(t, buf.Bytes())
}

func TestRendererWritesSVG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := NewRenderer(dir, nil, utils.NewNopLogger())

	files, err := r.Render(context.Background(), "Denver, Colorado", sampleRows)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cuisine_diversity_barplot.svg"), files.Bar)
	assert.Equal(t, filepath.Join(dir, "cuisine_diversity_pie_chart.svg"), files.Pie)
	assert.FileExists(t, files.Bar)
	assert.FileExists(t, files.Pie)

	w, h, err := svgSize(files.Bar)
	require.NoError(t, err)
	assert.Equal(t, barWidth, w)
	assert.Greater(t, h, 0)
}

type fakeRasterizer struct {
	err error
}

func (f fakeRasterizer) ToPNG(_ context.Context, svgPath, pngPath string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(pngPath, []byte("png:"+filepath.Base(svgPath)), 0644)
}

func TestRendererRasterizes(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, fakeRasterizer{}, utils.NewNopLogger())

	files, err := r.Render(context.Background(), "Denver, Colorado", sampleRows)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cuisine_diversity_barplot.png"), files.Bar)
	assert.Equal(t, filepath.Join(dir, "cuisine_diversity_pie_chart.png"), files.Pie)
	assert.FileExists(t, files.Pie)
	assert.NoFileExists(t, filepath.Join(dir, "cuisine_diversity_barplot.svg"))
}

func TestRendererRasterizeFailureKeepsSVG(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, fakeRasterizer{err: errors.New("no chrome")}, utils.NewNopLogger())

	files, err := r.Render(context.Background(), "Denver, Colorado", sampleRows)
	require.Error(t, err)
	assert.Equal(t, filepath.Join(dir, "cuisine_diversity_barplot.svg"), files.Bar)
	assert.FileExists(t, files.Bar)
}
