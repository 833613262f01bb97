package models

import "fmt"

// Language selects the strings printed on the paper
type Language int

const (
	English Language = iota
	Bulgarian
)

// Languages lists every supported language in display order.
var Languages = []Language{English, Bulgarian}

// ParseLanguage maps a project file value to a Language.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if l.String() == s {
			return l, nil
		}
	}
	return English, fmt.Errorf("%w: unknown language %q", ErrConfig, s)
}

// String returns the identifier used in project files.
func (l Language) String() string {
	switch l {
	case Bulgarian:
		return "Bulgarian"
	default:
		return "English"
	}
}

// FirstChar is the bullet of the first answer in a lettered list.
func (l Language) FirstChar() rune {
	if l == Bulgarian {
		return 'а' // U+0430
	}
	return 'a'
}

func (l Language) MultipleAnswersHint() string {
	if l == Bulgarian {
		return "Повече от 1 верен отговор"
	}
	return "Multiple answers"
}

// FormatPoints renders the score box printed next to a question title.
func (l Language) FormatPoints(points uint8) string {
	if l == Bulgarian {
		return fmt.Sprintf("__/%dт", points)
	}
	return fmt.Sprintf("__/%dpt", points)
}

func (l Language) InputName() string {
	if l == Bulgarian {
		return "Име"
	}
	return "Name"
}

func (l Language) InputClass() string {
	if l == Bulgarian {
		return "Клас"
	}
	return "Class"
}

func (l Language) InputClassNum() string {
	if l == Bulgarian {
		return "№"
	}
	return "No"
}

// Name is the language's own name, for pickers.
func (l Language) Name() string {
	if l == Bulgarian {
		return "Български"
	}
	return "English"
}

func (l Language) Examiner() string {
	if l == Bulgarian {
		return "Проверено от"
	}
	return "Examined by"
}

func (l Language) PointsSum() string {
	if l == Bulgarian {
		return "Точки"
	}
	return "Points"
}
