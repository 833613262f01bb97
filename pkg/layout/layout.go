// Package layout is a small document model for printable pages.
//
// A Document is a vertical stack of Elements. Rendering walks the stack
// page by page: every element draws itself into the remaining Area of the
// current page and reports the space it used. An element that runs out of
// room sets HasMore and is rendered again on the next page.
//
// Drawing goes through a Backend, so the same document can be rendered to
// a PDF or to a recorder in tests. All lengths are in millimeters, font
// sizes are in points.
package layout

import "errors"

// ErrNoProgress is returned when an element cannot place anything on an
// empty page.
var ErrNoProgress = errors.New("element does not fit on an empty page")

// Position is an offset from the top left corner of an area.
type Position struct {
	X, Y float64
}

// Size is a width and height.
type Size struct {
	Width, Height float64
}

// Margins insets an area on each side.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// MarginsAll uses the same margin on every side.
func MarginsAll(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// MarginsVH uses v for top and bottom and h for left and right.
func MarginsVH(v, h float64) Margins {
	return Margins{Top: v, Right: h, Bottom: v, Left: h}
}

// Style describes how text is drawn. Zero fields inherit from the parent style.
type Style struct {
	FontSize    float64
	Bold        bool
	Italic      bool
	LineSpacing float64
}

// DefaultStyle is the base style of a new document.
func DefaultStyle() Style {
	return Style{FontSize: 12, LineSpacing: 1}
}

func (s Style) WithFontSize(size float64) Style {
	s.FontSize = size
	return s
}

func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// Merge applies the non zero fields of o on top of s.
func (s Style) Merge(o Style) Style {
	if o.FontSize > 0 {
		s.FontSize = o.FontSize
	}
	if o.LineSpacing > 0 {
		s.LineSpacing = o.LineSpacing
	}
	s.Bold = s.Bold || o.Bold
	s.Italic = s.Italic || o.Italic
	return s
}

// Metrics measures text for a given style.
type Metrics interface {
	StringWidth(s string, style Style) float64
	LineHeight(style Style) float64
}

// Surface is a page that text can be printed on. pos is absolute and
// marks the top left corner of the line box.
type Surface interface {
	PrintStr(pos Position, s string, style Style) error
}

// Backend produces pages and measures text.
type Backend interface {
	Metrics
	NewPage(size Size) (Surface, error)
}

// Context is shared by all elements during one render.
type Context struct {
	Metrics Metrics
}

// RenderResult reports what an element consumed. HasMore means the
// element was cut off and wants to continue on the next page.
type RenderResult struct {
	Size    Size
	HasMore bool
}

// Element is anything that can be placed in a document.
type Element interface {
	Render(ctx *Context, area Area, style Style) (RenderResult, error)
}

// Area is a rectangle on a surface. It is a value type, so children can
// receive a modified copy without affecting the parent.
type Area struct {
	surface Surface
	origin  Position
	size    Size
}

// NewArea returns an area covering the whole surface.
func NewArea(surface Surface, size Size) Area {
	return Area{surface: surface, size: size}
}

func (a Area) Size() Size { return a.size }
func (a Area) Origin() Position { return a.origin }
func (a *Area) SetWidth(w float64) { a.size.Width = w }
func (a *Area) SetHeight(h float64) {
	a.size.Height = h
}

// AddOffset moves the origin by p and shrinks the area accordingly.
func (a *Area) AddOffset(p Position) {
	a.origin.X += p.X
	a.origin.Y += p.Y
	a.size.Width -= p.X
	a.size.Height -= p.Y
}

// AddMargins insets the area.
func (a *Area) AddMargins(m Margins) {
	a.origin.X += m.Left
	a.origin.Y += m.Top
	a.size.Width -= m.Left + m.Right
	a.size.Height -= m.Top + m.Bottom
}

// PrintStr prints s at pos relative to the area origin.
func (a Area) PrintStr(pos Position, s string, style Style) error {
	return a.surface.PrintStr(Position{X: a.origin.X + pos.X, Y: a.origin.Y + pos.Y}, s, style)
}
