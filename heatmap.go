package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const defaultFormat = "png"

// Formats plot.Plot.Save can write.
var supportedFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tex": true, "tif": true, "tiff": true,
}

// HeatmapOptions configures one rendered heatmap. Zero values fall back to
// library defaults.
type HeatmapOptions struct {
	Title    string
	XLabel   string
	YLabel   string
	Font     string
	Palette  string
	Format   string
	Min, Max float64
	Width    float64 // inches
	Height   float64 // inches
}

// probGrid adapts a column-major probability matrix to the plotter grid,
// one grid cell per table cell.
type probGrid struct {
	m mat.Matrix
}

func (g probGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g probGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g probGrid) X(c int) float64    { return float64(c) }
func (g probGrid) Y(r int) float64    { return float64(r) }

// resolveFont looks the requested typeface up in the font cache. A missing
// typeface degrades to the plot default with a warning instead of failing
// the run.
func resolveFont(name string) font.Font {
	if name == "" {
		return plot.DefaultFont
	}
	fnt := font.Font{Typeface: font.Typeface(name), Variant: "Sans"}
	if font.DefaultCache.Has(fnt) {
		return fnt
	}
	logWarn("font unavailable, using default",
		zap.String("font", name),
		zap.String("fallback", string(plot.DefaultFont.Typeface)))
	return plot.DefaultFont
}

// resolvePalette maps a ColorBrewer palette name (the original charts use
// YlGnBu and YlOrRd) to a palette, degrading to a smooth sequential map.
func resolvePalette(name string) palette.Palette {
	if name != "" {
		if pal, err := brewer.GetPalette(brewer.TypeSequential, name, 9); err == nil {
			return pal
		}
		logWarn("palette unavailable, using default", zap.String("palette", name))
	}
	return moreland.SmoothBlueRed().Palette(255)
}

func resolveFormat(format string) string {
	ext := strings.TrimPrefix(strings.ToLower(format), ".")
	if ext == "" {
		return defaultFormat
	}
	if !supportedFormats[ext] {
		logWarn("output format unavailable, using default",
			zap.String("format", format),
			zap.String("fallback", defaultFormat))
		return defaultFormat
	}
	return ext
}

func columnTicks(cols []string) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(cols))
	for i, c := range cols {
		ticks[i] = plot.Tick{Value: float64(i), Label: c}
	}
	return plot.ConstantTicks(ticks)
}

func countTicks(n int) plot.ConstantTicks {
	ticks := make([]plot.Tick, n)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)}
	}
	return plot.ConstantTicks(ticks)
}

func applyFont(p *plot.Plot, fnt font.Font) {
	styles := []*draw.TextStyle{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle, &p.Y.Label.TextStyle,
		&p.X.Tick.Label, &p.Y.Tick.Label,
		&p.Legend.TextStyle,
	}
	for _, st := range styles {
		st.Font.Typeface = fnt.Typeface
		st.Font.Variant = fnt.Variant
	}
}

func cellLabels(labels [][]string, fnt font.Font) (*plotter.Labels, error) {
	var xy plotter.XYLabels
	for i, row := range labels {
		for j, s := range row {
			xy.XYs = append(xy.XYs, plotter.XY{X: float64(j), Y: float64(i)})
			xy.Labels = append(xy.Labels, s)
		}
	}
	l, err := plotter.NewLabels(xy)
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YCenter
		l.TextStyle[i].Font.Typeface = fnt.Typeface
		l.TextStyle[i].Font.Variant = fnt.Variant
	}
	return l, nil
}

// RenderHeatmap draws the probability table as an annotated heatmap and
// writes it under dir. Pass nil labels to skip cell annotations. Returns
// the written file path.
func RenderHeatmap(pt ProbabilityTable, labels [][]string, dir, name string, opts HeatmapOptions) (string, error) {
	if pt.Probs == nil {
		return "", fmt.Errorf("empty probability table: %w", ErrInvalidInput)
	}

	fnt := resolveFont(opts.Font)

	p := plot.New()
	applyFont(p, fnt)
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	h := plotter.NewHeatMap(probGrid{m: pt.Probs}, resolvePalette(opts.Palette))
	if opts.Max > opts.Min {
		h.Min = opts.Min
		h.Max = opts.Max
	}
	p.Add(h)

	rows, _ := pt.Probs.Dims()
	p.X.Tick.Marker = columnTicks(pt.Cols)
	p.Y.Tick.Marker = countTicks(rows)

	if labels != nil {
		l, err := cellLabels(labels, fnt)
		if err != nil {
			return "", err
		}
		p.Add(l)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 12
	}
	if height <= 0 {
		height = 16
	}

	out := filepath.Join(dir, name+"."+resolveFormat(opts.Format))
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, out); err != nil {
		return "", err
	}
	return out, nil
}
