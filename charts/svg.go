package charts

import (
	"fmt"
	"io"
	"math"
	"text/template"

	"cuisine-scene/models"
)

// palette follows the order of seaborn's default "deep" colors.
var palette = []string{
	"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
	"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd",
}

const (
	barWidth      = 1200
	barLeft       = 190
	barTop        = 110
	barRowHeight  = 44
	barMaxLength  = 860
	pieSize       = 1000
	pieRadius     = 360
	pieHoleRatio  = 0.73
	pieLabelRatio = (1 + pieHoleRatio) / 2
)

type bar struct {
	Label string
	Count int
	Y     float64
	Width float64
	TextX float64
	TextY float64
	Color string
}

type barChart struct {
	Title   string
	Width   int
	Height  int
	Left    int
	CenterX int
	MidY    float64
	AxisY   float64
	Bars    []bar
}

type slice struct {
	Path   string
	Circle bool
	Color  string
	Pct    string
	PctX   float64
	PctY   float64
	Name   string
	NameX  float64
	NameY  float64
	Anchor string
}

type pieChart struct {
	Title  string
	Size   int
	CX     float64
	CY     float64
	R      float64
	Hole   float64
	Slices []slice
}

var barTemplate = template.Must(template.New("bar").Funcs(template.FuncMap{
	"barTop":  func() int { return barTop },
	"halfBar": func() int { return barMaxLength / 2 },
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" font-family="DejaVu Sans, Arial, sans-serif">
<rect width="100%" height="100%" fill="#ffffff"/>
<text x="{{.CenterX}}" y="56" text-anchor="middle" font-size="34">{{.Title | html}}</text>
<text x="30" y="{{printf "%.1f" .MidY}}" transform="rotate(-90 30 {{printf "%.1f" .MidY}})" text-anchor="middle" font-size="22">Cuisine Types</text>
{{- range .Bars}}
<rect x="{{$.Left}}" y="{{printf "%.1f" .Y}}" width="{{printf "%.1f" .Width}}" height="32" fill="{{.Color}}"/>
<text x="{{$.Left}}" y="{{printf "%.1f" .TextY}}" dx="-12" text-anchor="end" font-size="17">{{.Label | html}}</text>
<text x="{{printf "%.1f" .TextX}}" y="{{printf "%.1f" .TextY}}" text-anchor="start" font-size="17">{{.Count}}</text>
{{- end}}
<line x1="{{.Left}}" y1="{{barTop}}" x2="{{.Left}}" y2="{{printf "%.1f" .AxisY}}" stroke="#333333"/>
<text x="{{.Left}}" y="{{printf "%.1f" .AxisY}}" dx="{{halfBar}}" dy="48" text-anchor="middle" font-size="22">Number of Restaurants</text>
</svg>
`))

var pieTemplate = template.Must(template.New("pie").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}" font-family="DejaVu Sans, Arial, sans-serif">
<rect width="100%" height="100%" fill="#ffffff"/>
<text x="{{printf "%.1f" .CX}}" y="64" text-anchor="middle" font-size="34">{{.Title | html}}</text>
{{- range .Slices}}
{{- if .Circle}}
<circle cx="{{printf "%.1f" $.CX}}" cy="{{printf "%.1f" $.CY}}" r="{{printf "%.1f" $.R}}" fill="{{.Color}}"/>
{{- else}}
<path d="{{.Path}}" fill="{{.Color}}" stroke="#ffffff" stroke-width="1"/>
{{- end}}
{{- end}}
<circle cx="{{printf "%.1f" .CX}}" cy="{{printf "%.1f" .CY}}" r="{{printf "%.1f" .Hole}}" fill="#ffffff"/>
{{- range .Slices}}
<text x="{{printf "%.1f" .PctX}}" y="{{printf "%.1f" .PctY}}" text-anchor="middle" dominant-baseline="middle" font-size="15">{{.Pct}}</text>
<text x="{{printf "%.1f" .NameX}}" y="{{printf "%.1f" .NameY}}" text-anchor="{{.Anchor}}" dominant-baseline="middle" font-size="17">{{.Name | html}}</text>
{{- end}}
</svg>
`))

func layoutBars(title string, rows []models.AggregateRow) barChart {
	maxCount := 0
	for _, r := range rows {
		if r.Count > maxCount {
			maxCount = r.Count
		}
	}

	chart := barChart{
		Title:   title,
		Width:   barWidth,
		Left:    barLeft,
		CenterX: barWidth / 2,
	}
	for i, r := range rows {
		y := float64(barTop + i*barRowHeight)
		w := 0.0
		if maxCount > 0 {
			w = float64(r.Count) / float64(maxCount) * barMaxLength
		}
		chart.Bars = append(chart.Bars, bar{
			Label: r.Category,
			Count: r.Count,
			Y:     y,
			Width: w,
			TextX: barLeft + w + 8,
			TextY: y + 22,
			Color: palette[i%len(palette)],
		})
	}
	chart.AxisY = float64(barTop + len(rows)*barRowHeight)
	chart.MidY = (barTop + chart.AxisY) / 2
	chart.Height = int(chart.AxisY) + 80
	return chart
}

func layoutPie(title string, rows []models.AggregateRow) pieChart {
	chart := pieChart{
		Title: title,
		Size:  pieSize,
		CX:    pieSize / 2,
		CY:    pieSize/2 + 30,
		R:     pieRadius,
		Hole:  pieRadius * pieHoleRatio,
	}

	total := 0
	for _, r := range rows {
		total += r.Count
	}
	if total == 0 {
		return chart
	}

	// Slices start at twelve o'clock and run clockwise.
	angle := -math.Pi / 2
	for i, r := range rows {
		if r.Count == 0 {
			continue
		}
		sweep := 2 * math.Pi * float64(r.Count) / float64(total)
		end := angle + sweep
		mid := angle + sweep/2

		s := slice{
			Color: palette[i%len(palette)],
			Pct:   fmt.Sprintf("%.1f%%", r.Percentage),
			PctX:  chart.CX + chart.R*pieLabelRatio*math.Cos(mid),
			PctY:  chart.CY + chart.R*pieLabelRatio*math.Sin(mid),
			Name:  r.Category,
			NameX: chart.CX + chart.R*1.08*math.Cos(mid),
			NameY: chart.CY + chart.R*1.08*math.Sin(mid),
		}
		if math.Cos(mid) < 0 {
			s.Anchor = "end"
		} else {
			s.Anchor = "start"
		}

		if r.Count == total {
			s.Circle = true
		} else {
			large := 0
			if sweep > math.Pi {
				large = 1
			}
			s.Path = fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
				chart.CX, chart.CY,
				chart.CX+chart.R*math.Cos(angle), chart.CY+chart.R*math.Sin(angle),
				chart.R, chart.R, large,
				chart.CX+chart.R*math.Cos(end), chart.CY+chart.R*math.Sin(end))
		}

		chart.Slices = append(chart.Slices, s)
		angle = end
	}
	return chart
}

func writeBarSVG(w io.Writer, title string, rows []models.AggregateRow) error {
	return barTemplate.Execute(w, layoutBars(title, rows))
}

func writePieSVG(w io.Writer, title string, rows []models.AggregateRow) error {
	return pieTemplate.Execute(w, layoutPie(title, rows))
}
