package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidBullet is returned by AlphaList.Push when the next bullet is
// not a valid code point.
var ErrInvalidBullet = errors.New("bullet is not a valid code point")

// AlphaList is an ordered list whose bullets are consecutive code points,
// "a)", "b)", ... for a start of 'a'.
type AlphaList struct {
	layout *LinearLayout
	number int
	start  rune
}

// NewAlphaList starts counting at start.
func NewAlphaList(start rune) *AlphaList {
	return NewAlphaListFrom(0, start)
}

// NewAlphaListFrom starts counting offset code points after start.
func NewAlphaListFrom(offset int, start rune) *AlphaList {
	return &AlphaList{layout: NewLinearLayout(), number: offset, start: start}
}

// Push appends e with the next bullet.
func (l *AlphaList) Push(e Element) error {
	ch := l.start + rune(l.number)
	if l.number < 0 || !utf8.ValidRune(ch) {
		return fmt.Errorf("%w: %U + %d", ErrInvalidBullet, l.start, l.number)
	}

	point := NewBulletPoint(e)
	point.SetBullet(string(ch) + ")")
	l.layout.Push(point)
	l.number++
	return nil
}

func (l *AlphaList) Len() int {
	return l.layout.Len()
}

func (l *AlphaList) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	return l.layout.Render(ctx, area, style)
}

// Split places two elements side by side. With a ratio above zero the
// left element gets that fraction of the width. With a ratio of zero the
// right element starts where the left one's measured width ends.
type Split struct {
	left  Element
	right Element
	ratio float64
}

// NewSplit clamps ratio to [0, 1].
func NewSplit(left, right Element, ratio float64) *Split {
	return &Split{left: left, right: right, ratio: min(max(ratio, 0), 1)}
}

func (s *Split) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	var result RenderResult

	leftArea := area
	offset := 0.0
	if s.ratio > 0 {
		offset = area.Size().Width * s.ratio
		leftArea.SetWidth(offset)
	}

	left, err := s.left.Render(ctx, leftArea, style)
	if err != nil {
		return result, err
	}
	if s.ratio == 0 {
		offset = left.Size.Width
	}

	rightArea := area
	rightArea.AddOffset(Position{X: offset})
	right, err := s.right.Render(ctx, rightArea, style)
	if err != nil {
		return result, err
	}

	result.Size.Width = offset + right.Size.Width
	result.Size.Height = max(left.Size.Height, right.Size.Height)
	result.HasMore = left.HasMore || right.HasMore
	return result, nil
}

// CharFill repeats one character across the width of its area.
type CharFill struct {
	ch   rune
	done bool
}

func NewCharFill(ch rune) *CharFill {
	return &CharFill{ch: ch}
}

func (c *CharFill) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	var result RenderResult
	if c.done {
		return result, nil
	}

	s := string(c.ch)
	charWidth := ctx.Metrics.StringWidth(s, style)
	if charWidth <= 0 {
		return result, fmt.Errorf("character %q has no width", c.ch)
	}
	lineHeight := ctx.Metrics.LineHeight(style)
	if lineHeight > area.Size().Height {
		result.HasMore = true
		return result, nil
	}

	n := int(area.Size().Width / charWidth)
	if n > 0 {
		if err := area.PrintStr(Position{}, strings.Repeat(s, n), style); err != nil {
			return result, err
		}
	}
	c.done = true
	result.Size = Size{Width: float64(n) * charWidth, Height: lineHeight}
	return result, nil
}
