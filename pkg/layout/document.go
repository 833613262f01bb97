package layout

import "fmt"

// PageDecorator prepares a fresh page and returns the area left for content.
type PageDecorator interface {
	DecoratePage(ctx *Context, area Area, style Style) (Area, error)
}

// SimplePageDecorator only applies margins.
type SimplePageDecorator struct {
	Margins Margins
}

func (d *SimplePageDecorator) DecoratePage(ctx *Context, area Area, style Style) (Area, error) {
	area.AddMargins(d.Margins)
	return area, nil
}

// Document is an ordered stack of elements rendered onto pages of a fixed size.
type Document struct {
	title     string
	paper     Size
	style     Style
	decorator PageDecorator
	root      *LinearLayout
}

// NewDocument creates an empty document for the given paper size.
func NewDocument(paper Size) *Document {
	return &Document{
		paper: paper,
		style: DefaultStyle(),
		root:  NewLinearLayout(),
	}
}

func (d *Document) SetTitle(title string) { d.title = title }
func (d *Document) Title() string { return d.title }
func (d *Document) PaperSize() Size { return d.paper }
func (d *Document) SetFontSize(size float64) { d.style.FontSize = size }
func (d *Document) SetPageDecorator(decorator PageDecorator) { d.decorator = decorator }

// Push appends an element to the document.
func (d *Document) Push(e Element) {
	d.root.Push(e)
}

// Len returns the number of top level elements.
func (d *Document) Len() int {
	return d.root.Len()
}

// Render draws the document onto pages obtained from b and returns the
// number of pages used. A Document can only be rendered once.
func (d *Document) Render(b Backend) (int, error) {
	ctx := &Context{Metrics: b}

	pages := 0
	for {
		surface, err := b.NewPage(d.paper)
		if err != nil {
			return pages, fmt.Errorf("page %d: %w", pages+1, err)
		}
		pages++

		area := NewArea(surface, d.paper)
		if d.decorator != nil {
			area, err = d.decorator.DecoratePage(ctx, area, d.style)
			if err != nil {
				return pages, fmt.Errorf("page %d: %w", pages, err)
			}
		}

		res, err := d.root.Render(ctx, area, d.style)
		if err != nil {
			return pages, fmt.Errorf("page %d: %w", pages, err)
		}
		if !res.HasMore {
			return pages, nil
		}
		if res.Size.Height <= 0 {
			return pages, fmt.Errorf("page %d: %w", pages, ErrNoProgress)
		}
	}
}
