package layout

import "strings"

// LinearLayout stacks elements vertically.
type LinearLayout struct {
	elements []Element
	next     int
}

func NewLinearLayout() *LinearLayout {
	return &LinearLayout{}
}

func (l *LinearLayout) Push(e Element) {
	l.elements = append(l.elements, e)
}

func (l *LinearLayout) Len() int {
	return len(l.elements)
}

func (l *LinearLayout) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	var result RenderResult
	for l.next < len(l.elements) {
		res, err := l.elements[l.next].Render(ctx, area, style)
		if err != nil {
			return result, err
		}
		area.AddOffset(Position{Y: res.Size.Height})
		result.Size.Height += res.Size.Height
		result.Size.Width = max(result.Size.Width, res.Size.Width)
		if res.HasMore {
			result.HasMore = true
			return result, nil
		}
		l.next++
	}
	return result, nil
}

// Alignment is the horizontal placement of paragraph lines.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Paragraph is wrapped text. It can be split across pages.
type Paragraph struct {
	text      string
	style     Style
	alignment Alignment
	lines     []string
	wrapped   bool
	next      int
}

func NewParagraph(text string) *Paragraph {
	return &Paragraph{text: text}
}

// NewStyledParagraph creates a paragraph whose style overrides the document style.
func NewStyledParagraph(text string, style Style) *Paragraph {
	return &Paragraph{text: text, style: style}
}

func (p *Paragraph) SetAlignment(a Alignment) {
	p.alignment = a
}

func (p *Paragraph) Text() string {
	return p.text
}

func (p *Paragraph) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	var result RenderResult
	style = style.Merge(p.style)
	width := area.Size().Width

	if !p.wrapped {
		p.lines = wrap(ctx.Metrics, p.text, style, width)
		p.wrapped = true
	}

	lineHeight := ctx.Metrics.LineHeight(style)
	for p.next < len(p.lines) {
		if result.Size.Height+lineHeight > area.Size().Height {
			result.HasMore = true
			return result, nil
		}

		line := p.lines[p.next]
		lineWidth := ctx.Metrics.StringWidth(line, style)
		x := 0.0
		switch p.alignment {
		case AlignCenter:
			x = (width - lineWidth) / 2
		case AlignRight:
			x = width - lineWidth
		}
		if err := area.PrintStr(Position{X: max(x, 0), Y: result.Size.Height}, line, style); err != nil {
			return result, err
		}

		result.Size.Width = max(result.Size.Width, lineWidth)
		result.Size.Height += lineHeight
		p.next++
	}
	return result, nil
}

// wrap splits text into lines no wider than width. Text that fits is kept
// verbatim, including trailing spaces; otherwise lines break at whitespace.
// A single word wider than width gets a line of its own.
func wrap(m Metrics, text string, style Style, width float64) []string {
	if text == "" {
		return nil
	}
	if m.StringWidth(text, style) <= width {
		return []string{text}
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
			continue
		}
		candidate := line + " " + word
		if m.StringWidth(candidate, style) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Text is a single unwrapped line.
type Text struct {
	text  string
	style Style
	done  bool
}

func NewText(text string) *Text {
	return &Text{text: text}
}

func (t *Text) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	var result RenderResult
	if t.done {
		return result, nil
	}
	style = style.Merge(t.style)

	lineHeight := ctx.Metrics.LineHeight(style)
	if lineHeight > area.Size().Height {
		result.HasMore = true
		return result, nil
	}
	if err := area.PrintStr(Position{}, t.text, style); err != nil {
		return result, err
	}
	t.done = true
	result.Size = Size{Width: ctx.Metrics.StringWidth(t.text, style), Height: lineHeight}
	return result, nil
}

// Break is vertical space measured in lines of the current style. A break
// that does not fit is cut at the end of the page.
type Break struct {
	lines float64
}

func NewBreak(lines float64) *Break {
	return &Break{lines: lines}
}

func (b *Break) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	var result RenderResult
	if b.lines <= 0 {
		return result, nil
	}
	height := b.lines * ctx.Metrics.LineHeight(style)
	result.Size.Height = min(height, max(area.Size().Height, 0))
	b.lines = 0
	return result, nil
}

// Padded surrounds an element with margins.
type Padded struct {
	element Element
	margins Margins
}

func NewPadded(e Element, m Margins) *Padded {
	return &Padded{element: e, margins: m}
}

func (p *Padded) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	area.AddMargins(p.margins)
	res, err := p.element.Render(ctx, area, style)
	if err != nil {
		return res, err
	}
	res.Size.Width += p.margins.Left + p.margins.Right
	res.Size.Height += p.margins.Top + p.margins.Bottom
	return res, nil
}

const (
	bulletIndent = 10.0
	bulletSpace  = 2.0
)

// BulletPoint indents an element and prints a bullet in front of its first line.
type BulletPoint struct {
	element Element
	bullet  string
	printed bool
}

func NewBulletPoint(e Element) *BulletPoint {
	return &BulletPoint{element: e, bullet: "–"}
}

func (b *BulletPoint) SetBullet(bullet string) {
	b.bullet = bullet
}

func (b *BulletPoint) Bullet() string {
	return b.bullet
}

func (b *BulletPoint) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	content := area
	content.AddOffset(Position{X: bulletIndent})

	res, err := b.element.Render(ctx, content, style)
	if err != nil {
		return res, err
	}
	if !b.printed && res.Size.Height > 0 {
		x := bulletIndent - ctx.Metrics.StringWidth(b.bullet, style) - bulletSpace
		if err := area.PrintStr(Position{X: x}, b.bullet, style); err != nil {
			return res, err
		}
		b.printed = true
	}
	res.Size.Width += bulletIndent
	return res, nil
}
