// ABOUTME: Declarative chart primitives handed to the presentation layer.
// ABOUTME: Figures carry traces, cells, bands, and axis hints, no rendering.
package chart

import "time"

// Colors used by the stock figures. Presentation layers may remap them.
const (
	ColorMeasured     = "rgba(0, 102, 204, 1)"
	ColorInterpolated = "rgba(0, 102, 204, 0.6)"
	ColorActive       = "rgba(76, 175, 80, 0.8)"
	ColorInactive     = "rgba(200, 200, 200, 0.2)"
	ColorWeekendBand  = "rgba(200, 200, 200, 0.1)"
)

// Point is one (date, value) pair on a time axis.
type Point struct {
	X time.Time
	Y float64
}

// Trace is one plotted series: markers for measured samples or a line
// for the interpolated daily sequence.
type Trace struct {
	Name   string
	Mode   string // "markers" or "lines"
	Color  string
	Points []Point
}

// Band is a shaded vertical span, used for weekend shading.
type Band struct {
	From  time.Time
	To    time.Time
	Color string
}

// CellMark is one calendar-grid cell: a grid position plus label, color,
// and hover text.
type CellMark struct {
	Row    int
	Col    int
	Label  string
	Color  string
	Hover  string
	Active bool
	Date   time.Time
}

// Tick labels one axis position.
type Tick struct {
	Pos   int
	Label string
}

// Figure is the renderer-independent description of one chart.
// A non-empty Annotation marks an empty view ("no data"); everything
// else is then unset.
type Figure struct {
	Title      string
	XLabel     string
	YLabel     string
	Height     int
	Traces     []Trace
	Bands      []Band
	Cells      []CellMark
	XTicks     []Tick
	YTicks     []Tick
	YRange     *[2]float64
	Annotation string
}

// Empty reports whether the figure is a "no data" placeholder.
func (f *Figure) Empty() bool {
	return f.Annotation != ""
}

// noData builds the placeholder figure shown when a view has no content.
func noData(title, message string) *Figure {
	return &Figure{Title: title, Annotation: message, Height: 400}
}
