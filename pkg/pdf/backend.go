package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/papertest/testgen/pkg/layout"
	"github.com/papertest/testgen/pkg/models"
)

const ptToMM = 25.4 / 72

// Backend is a layout.Backend that can serialize the rendered pages.
type Backend interface {
	layout.Backend
	Write(w io.Writer) error
}

// fpdfBackend renders through go-pdf/fpdf. Pages are drawn strictly in
// order, so a surface always draws on the current page.
type fpdfBackend struct {
	doc    *fpdf.Fpdf
	family *FontFamily

	// measure never fails; encode rejects text the font cannot show.
	measure func(string) string
	encode  func(string) (string, error)
}

type documentInfo struct {
	title   string
	paper   layout.Size
	created time.Time
}

func newFpdfBackend(family *FontFamily, info documentInfo) (*fpdfBackend, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: info.paper.Width, Ht: info.paper.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(info.title, true)
	doc.SetCreator("testgen", true)
	doc.SetCatalogSort(true)
	doc.SetCreationDate(info.created)
	doc.SetModificationDate(info.created)

	b := &fpdfBackend{doc: doc, family: family}
	if family.Builtin {
		// The standard fonts only cover WinAnsi.
		lossy := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
		strict := charmap.Windows1252.NewEncoder()
		b.measure = func(s string) string {
			out, err := lossy.String(norm.NFC.String(s))
			if err != nil {
				return s
			}
			return out
		}
		b.encode = func(s string) (string, error) {
			return strict.String(norm.NFC.String(s))
		}
	} else {
		b.measure = norm.NFC.String
		b.encode = func(s string) (string, error) {
			return norm.NFC.String(s), nil
		}
		for _, style := range b.styles() {
			doc.AddUTF8FontFromBytes(family.Name, style, family.variant(style))
		}
	}

	// fpdf does not report unparsable font data until the font is selected.
	for _, style := range b.styles() {
		doc.SetFont(family.Name, style, bodyFontSize)
		if err := doc.Error(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", models.ErrFont, family.Name, err)
		}
	}
	return b, nil
}

// styles lists the fpdf style strings the family provides.
func (b *fpdfBackend) styles() []string {
	f := b.family
	if f.Builtin {
		return []string{"", "B", "I", "BI"}
	}
	styles := []string{""}
	if f.Bold != nil {
		styles = append(styles, "B")
	}
	if f.Italic != nil {
		styles = append(styles, "I")
	}
	if f.BoldItalic != nil {
		styles = append(styles, "BI")
	}
	return styles
}

// fontStyle maps a layout style onto the variants the family provides.
func (b *fpdfBackend) fontStyle(style layout.Style) string {
	f := b.family
	switch {
	case style.Bold && style.Italic && (f.Builtin || f.BoldItalic != nil):
		return "BI"
	case style.Bold && (f.Builtin || f.Bold != nil):
		return "B"
	case style.Italic && (f.Builtin || f.Italic != nil):
		return "I"
	default:
		return ""
	}
}

func (b *fpdfBackend) setFont(style layout.Style) {
	b.doc.SetFont(b.family.Name, b.fontStyle(style), style.FontSize)
}

// ascent and descent in thousandths of the font size.
func (b *fpdfBackend) verticalMetrics() (ascent, descent float64) {
	desc := b.doc.GetFontDesc("", "")
	if desc.Ascent == 0 {
		return 800, -200
	}
	return float64(desc.Ascent), float64(desc.Descent)
}

func (b *fpdfBackend) StringWidth(s string, style layout.Style) float64 {
	b.setFont(style)
	return b.doc.GetStringWidth(b.measure(s))
}

func (b *fpdfBackend) LineHeight(style layout.Style) float64 {
	b.setFont(style)
	ascent, descent := b.verticalMetrics()
	spacing := style.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	return style.FontSize * ptToMM * (ascent - descent) / 1000 * spacing
}

func (b *fpdfBackend) NewPage(size layout.Size) (layout.Surface, error) {
	b.doc.AddPageFormat("P", fpdf.SizeType{Wd: size.Width, Ht: size.Height})
	if err := b.doc.Error(); err != nil {
		return nil, err
	}
	return b, nil
}

// PrintStr draws s with its line box starting at pos.
func (b *fpdfBackend) PrintStr(pos layout.Position, s string, style layout.Style) error {
	text, err := b.encode(s)
	if err != nil {
		return fmt.Errorf("%w: %s cannot show %q, set fonts_path to a TTF font", models.ErrFont, b.family.Name, s)
	}
	b.setFont(style)
	ascent, _ := b.verticalMetrics()
	b.doc.Text(pos.X, pos.Y+style.FontSize*ptToMM*ascent/1000, text)
	return b.doc.Error()
}

func (b *fpdfBackend) Write(w io.Writer) error {
	if err := b.doc.Output(w); err != nil {
		return fmt.Errorf("%w: %v", models.ErrIO, err)
	}
	return nil
}
