package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/papertest/testgen/pkg/models"
)

// FontFamily holds the TrueType data of one family. Bold, Italic and
// BoldItalic are optional. A builtin family uses the standard PDF fonts
// and carries no data.
type FontFamily struct {
	Name       string
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
	Builtin    bool
}

// variant returns the data for an fpdf style string.
func (f *FontFamily) variant(style string) []byte {
	switch style {
	case "B":
		return f.Bold
	case "I":
		return f.Italic
	case "BI":
		return f.BoldItalic
	default:
		return f.Regular
	}
}

// FontResolver finds a font family by directory and name.
type FontResolver interface {
	Resolve(dir, family string) (*FontFamily, error)
}

// builtinFonts are the standard PDF families that need no font files.
var builtinFonts = map[string]string{
	"helvetica": "Helvetica",
	"arial":     "Arial",
	"times":     "Times",
	"courier":   "Courier",
}

// DirResolver loads "<family>-Regular.ttf" and its optional Bold, Italic
// and BoldItalic siblings from a directory. With an empty directory the
// standard PDF families are accepted by name.
type DirResolver struct{}

func (DirResolver) Resolve(dir, family string) (*FontFamily, error) {
	if family == "" {
		return nil, fmt.Errorf("%w: no font family configured", models.ErrFont)
	}
	if dir == "" {
		if name, ok := builtinFonts[strings.ToLower(family)]; ok {
			return &FontFamily{Name: name, Builtin: true}, nil
		}
		return nil, fmt.Errorf("%w: no fonts_path configured for %q", models.ErrFont, family)
	}

	regular, err := readFont(dir, family, "Regular")
	if err != nil {
		return nil, err
	}
	if regular == nil {
		return nil, fmt.Errorf("%w: %s not found", models.ErrFont, fontPath(dir, family, "Regular"))
	}

	f := &FontFamily{Name: family, Regular: regular}
	if f.Bold, err = readFont(dir, family, "Bold"); err != nil {
		return nil, err
	}
	if f.Italic, err = readFont(dir, family, "Italic"); err != nil {
		return nil, err
	}
	if f.BoldItalic, err = readFont(dir, family, "BoldItalic"); err != nil {
		return nil, err
	}
	return f, nil
}

func fontPath(dir, family, variant string) string {
	return filepath.Join(dir, family+"-"+variant+".ttf")
}

// readFont returns nil data without error when the file does not exist.
func readFont(dir, family, variant string) ([]byte, error) {
	data, err := os.ReadFile(fontPath(dir, family, variant))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrFont, err)
	}
	return data, nil
}
