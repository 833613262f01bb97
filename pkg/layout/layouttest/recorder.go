// Package layouttest provides a layout.Backend that records what is printed.
package layouttest

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/papertest/testgen/pkg/layout"
)

// Fixed metrics: every rune is CharWidth * FontSize wide and a line is
// LineFactor * FontSize high, both in millimeters.
const (
	CharWidth  = 0.2
	LineFactor = 0.5
)

// Print is one PrintStr call.
type Print struct {
	Page  int // 1-based
	X, Y  float64
	Text  string
	Style layout.Style
}

// Recorder is a layout.Backend with monospaced metrics.
type Recorder struct {
	Pages  []layout.Size
	Prints []Print
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) StringWidth(s string, style layout.Style) float64 {
	return float64(utf8.RuneCountInString(s)) * CharWidth * style.FontSize
}

func (r *Recorder) LineHeight(style layout.Style) float64 {
	spacing := style.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	return LineFactor * style.FontSize * spacing
}

func (r *Recorder) NewPage(size layout.Size) (layout.Surface, error) {
	r.Pages = append(r.Pages, size)
	return &page{r: r, n: len(r.Pages)}, nil
}

// Texts returns the printed strings in order.
func (r *Recorder) Texts() []string {
	texts := make([]string, len(r.Prints))
	for i, p := range r.Prints {
		texts[i] = p.Text
	}
	return texts
}

// Find returns the first print with the given text.
func (r *Recorder) Find(text string) (Print, bool) {
	for _, p := range r.Prints {
		if p.Text == text {
			return p, true
		}
	}
	return Print{}, false
}

// Write dumps the prints one per line.
func (r *Recorder) Write(w io.Writer) error {
	var b strings.Builder
	for _, p := range r.Prints {
		fmt.Fprintf(&b, "%d %.2f %.2f %s\n", p.Page, p.X, p.Y, p.Text)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type page struct {
	r *Recorder
	n int
}

func (p *page) PrintStr(pos layout.Position, s string, style layout.Style) error {
	p.r.Prints = append(p.r.Prints, Print{Page: p.n, X: pos.X, Y: pos.Y, Text: s, Style: style})
	return nil
}
