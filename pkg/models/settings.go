package models

import "fmt"

// PaperSize is a supported sheet format
type PaperSize int

const (
	A4 PaperSize = iota
)

// ParsePaperSize maps a project file value to a PaperSize.
func ParsePaperSize(s string) (PaperSize, error) {
	if s == "A4" {
		return A4, nil
	}
	return A4, fmt.Errorf("%w: unknown paper size %q", ErrConfig, s)
}

func (p PaperSize) String() string {
	return "A4"
}

// Dimensions returns width and height in millimeters.
func (p PaperSize) Dimensions() (width, height float64) {
	return 210, 297
}

const (
	DefaultOutput       = "out.pdf"
	DefaultMaxQuestions = 20
)

// Settings controls how a project is rendered
type Settings struct {
	ShowHints          bool      // Append a hint to questions with several correct answers
	PaperSize          PaperSize // Sheet format
	Language           Language  // Language of the printed labels
	FontsPath          string    // Directory holding the font family
	Font               string    // Font family name
	Output             string    // Path of the generated PDF
	MaxQuestions       int       // Questions beyond this count are not printed
	RandomizeQuestions bool      // Shuffle question order before truncating
}

// DefaultSettings returns the settings of a new project.
func DefaultSettings() Settings {
	return Settings{
		ShowHints:    true,
		PaperSize:    A4,
		Language:     English,
		Output:       DefaultOutput,
		MaxQuestions: DefaultMaxQuestions,
	}
}

func (s Settings) Validate() error {
	if s.MaxQuestions < 1 {
		return fmt.Errorf("%w: max_questions must be at least 1, got %d", ErrConfig, s.MaxQuestions)
	}
	if s.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrConfig)
	}
	return nil
}
