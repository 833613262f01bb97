package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/papertest/testgen/pkg/models"
)

func TestParseFile(t *testing.T) {
	sheet, err := ParseFile(filepath.Join("testdata", "sheet.txt"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if sheet.Title != "Geography Test" {
		t.Errorf("title = %q", sheet.Title)
	}
	if len(sheet.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(sheet.Questions))
	}

	q1 := sheet.Questions[0].(*models.SelectionQuestion)
	if q1.Question != "Capital of France?" || !slices.Equal(q1.Correct, []string{"Paris"}) || !slices.Equal(q1.Incorrect, []string{"Berlin", "Madrid"}) {
		t.Errorf("question 1 = %+v", q1)
	}

	q2 := sheet.Questions[1].(*models.SelectionQuestion)
	if q2.Question != "Which of these are in Europe?" {
		t.Errorf("question 2 text = %q", q2.Question)
	}
	if !slices.Equal(q2.Correct, []string{"Spain", "Norway, a country in the north"}) || !slices.Equal(q2.Incorrect, []string{"Peru"}) {
		t.Errorf("question 2 = %+v", q2)
	}

	q3, ok := sheet.Questions[2].(*models.InputQuestion)
	if !ok || q3.NumberOfLines != DefaultInputLines || q3.Score != 1 {
		t.Errorf("question 3 = %#v", sheet.Questions[2])
	}
}

func TestParseCyrillicOptions(t *testing.T) {
	sheet, err := ParseText("1. Столица на България?\nа) Пловдив\nX б) София\n")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	q := sheet.Questions[0].(*models.SelectionQuestion)
	if !slices.Equal(q.Correct, []string{"София"}) || !slices.Equal(q.Incorrect, []string{"Пловдив"}) {
		t.Errorf("question = %+v", q)
	}
}

func TestParseErrors(t *testing.T) {
	var many strings.Builder
	many.WriteString("1. Too many?\n")
	for i := range 17 {
		fmt.Fprintf(&many, "%c) option\n", 'a'+rune(i%16))
	}

	tests := map[string]string{
		"no text":      "1.\n\n2. Second?\n",
		"many options": many.String(),
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseText(text); !errors.Is(err, models.ErrConfig) {
				t.Errorf("ParseText() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestSheetProject(t *testing.T) {
	sheet, err := ParseText("Quiz\n1. One?\na) x\n")
	if err != nil {
		t.Fatal(err)
	}
	p := sheet.Project()
	if p.Header.Title != "Quiz" || len(p.Questions) != 1 || p.Settings.MaxQuestions != models.DefaultMaxQuestions {
		t.Errorf("project = %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, models.ErrConfig) {
		t.Errorf("ParseFile() error = %v, want ErrConfig", err)
	}
}
