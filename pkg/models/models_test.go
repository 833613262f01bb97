package models

import (
	"errors"
	"testing"
)

func TestLanguageStrings(t *testing.T) {
	tests := []struct {
		lang                                   Language
		first                                  rune
		hint, points, name, class, classNum    string
		display, examiner, pointsSum, language string
	}{
		{English, 'a', "Multiple answers", "__/3pt", "Name", "Class", "No", "English", "Examined by", "Points", "English"},
		{Bulgarian, 'а', "Повече от 1 верен отговор", "__/3т", "Име", "Клас", "№", "Български", "Проверено от", "Точки", "Bulgarian"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			if got := tt.lang.FirstChar(); got != tt.first {
				t.Errorf("FirstChar() = %U, want %U", got, tt.first)
			}
			checks := map[string][2]string{
				"MultipleAnswersHint": {tt.lang.MultipleAnswersHint(), tt.hint},
				"FormatPoints":        {tt.lang.FormatPoints(3), tt.points},
				"InputName":           {tt.lang.InputName(), tt.name},
				"InputClass":          {tt.lang.InputClass(), tt.class},
				"InputClassNum":       {tt.lang.InputClassNum(), tt.classNum},
				"Name":                {tt.lang.Name(), tt.display},
				"Examiner":            {tt.lang.Examiner(), tt.examiner},
				"PointsSum":           {tt.lang.PointsSum(), tt.pointsSum},
				"String":              {tt.lang.String(), tt.language},
			}
			for name, c := range checks {
				if c[0] != c[1] {
					t.Errorf("%s() = %q, want %q", name, c[0], c[1])
				}
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	for _, l := range Languages {
		got, err := ParseLanguage(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLanguage(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLanguage("Klingon"); !errors.Is(err, ErrConfig) {
		t.Errorf("ParseLanguage(Klingon) error = %v, want ErrConfig", err)
	}
}

func TestPaperSize(t *testing.T) {
	p, err := ParsePaperSize("A4")
	if err != nil {
		t.Fatalf("ParsePaperSize: %v", err)
	}
	w, h := p.Dimensions()
	if w != 210 || h != 297 {
		t.Errorf("A4 = %vx%v, want 210x297", w, h)
	}
	if _, err := ParsePaperSize("Letter"); !errors.Is(err, ErrConfig) {
		t.Errorf("ParsePaperSize(Letter) error = %v, want ErrConfig", err)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.ShowHints || s.Language != English || s.MaxQuestions != 20 || s.RandomizeQuestions || s.Output != "out.pdf" {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestCloneQuestionsIsDeep(t *testing.T) {
	p := NewProject()
	p.Questions = []Question{
		&SelectionQuestion{Question: "2+2?", Correct: []string{"4"}, Incorrect: []string{"3", "5"}, Score: 1},
		NewInputQuestion("Explain.", 3, 2),
	}

	clone := p.CloneQuestions()
	clone[0].(*SelectionQuestion).Correct[0] = "changed"
	clone[1].(*InputQuestion).NumberOfLines = 9

	if got := p.Questions[0].(*SelectionQuestion).Correct[0]; got != "4" {
		t.Errorf("original selection mutated: %q", got)
	}
	if got := p.Questions[1].(*InputQuestion).NumberOfLines; got != 3 {
		t.Errorf("original input mutated: %d", got)
	}
	if clone[0].Title() != "2+2?" || clone[1].Points() != 2 {
		t.Errorf("clone lost fields")
	}
}

func TestSelectionAnswers(t *testing.T) {
	q := &SelectionQuestion{Correct: []string{"Paris", "France"}, Incorrect: []string{"Berlin"}, Score: 1}
	got := q.Answers()
	want := []string{"Paris", "France", "Berlin"}
	if len(got) != len(want) {
		t.Fatalf("Answers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Answers() = %v, want %v", got, want)
		}
	}
	if !q.HasMultipleAnswers() {
		t.Error("HasMultipleAnswers() = false with two correct answers")
	}
}

func TestValidate(t *testing.T) {
	many := make([]string, 10)

	tests := []struct {
		name    string
		mutate  func(p *Project)
		wantErr bool
	}{
		{"valid", func(p *Project) {}, false},
		{"too many answers", func(p *Project) {
			p.Questions = append(p.Questions, &SelectionQuestion{Question: "q", Correct: many, Incorrect: many, Score: 1})
		}, true},
		{"exactly sixteen", func(p *Project) {
			p.Questions = append(p.Questions, &SelectionQuestion{Question: "q", Correct: many[:8], Incorrect: many[:8], Score: 1})
		}, false},
		{"zero points", func(p *Project) {
			p.Questions = append(p.Questions, &InputQuestion{Question: "q"})
		}, true},
		{"zero max questions", func(p *Project) { p.Settings.MaxQuestions = 0 }, true},
		{"no output", func(p *Project) { p.Settings.Output = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProject()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr && !errors.Is(err, ErrConfig) {
				t.Errorf("Validate() = %v, want ErrConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestMaxPoints(t *testing.T) {
	qs := []Question{NewInputQuestion("a", 1, 2), NewInputQuestion("b", 1, 255)}
	if got := MaxPoints(qs); got != 257 {
		t.Errorf("MaxPoints() = %d, want 257", got)
	}
}
