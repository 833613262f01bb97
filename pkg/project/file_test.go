package project

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/papertest/testgen/pkg/models"
)

func TestLoadTOML(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "example.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Header.Title != "Geography Quiz" {
		t.Errorf("title = %q", p.Header.Title)
	}
	if p.Settings.MaxQuestions != 10 || p.Settings.Output != "quiz.pdf" || p.Settings.Font != "LiberationSans" {
		t.Errorf("settings = %+v", p.Settings)
	}
	if len(p.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(p.Questions))
	}

	sel, ok := p.Questions[0].(*models.SelectionQuestion)
	if !ok {
		t.Fatalf("question 1 is %T, want selection", p.Questions[0])
	}
	if sel.Score != 2 || len(sel.Incorrect) != 3 || sel.Correct[0] != "Paris" {
		t.Errorf("question 1 = %+v", sel)
	}

	in, ok := p.Questions[1].(*models.InputQuestion)
	if !ok {
		t.Fatalf("question 2 is %T, want input", p.Questions[1])
	}
	if in.NumberOfLines != 4 || in.Score != models.DefaultPoints {
		t.Errorf("question 2 = %+v", in)
	}

	if img := p.Questions[2].(*models.SelectionQuestion).Image; img != "map.png" {
		t.Errorf("image = %q", img)
	}
}

func TestLoadYAML(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "example.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Settings.Language != models.Bulgarian {
		t.Errorf("language = %v", p.Settings.Language)
	}
	if !p.Settings.ShowHints || p.Settings.MaxQuestions != models.DefaultMaxQuestions {
		t.Errorf("defaults not applied: %+v", p.Settings)
	}
	if len(p.Questions) != 2 || p.Questions[1].Points() != 3 {
		t.Errorf("questions = %+v", p.Questions)
	}
}

func TestDefaults(t *testing.T) {
	p, err := Parse([]byte(`
[settings]
fonts_path = "f"
font = "F"

[header]
title = "T"

[[questions]]
question = "q"
number_of_lines = 0
`), TOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := models.DefaultSettings()
	want.FontsPath = "f"
	want.Font = "F"
	if p.Settings != want {
		t.Errorf("settings = %+v, want %+v", p.Settings, want)
	}
	if p.Questions[0].Points() != 1 {
		t.Errorf("points = %d, want 1", p.Questions[0].Points())
	}
}

func sampleProject() *models.Project {
	p := models.NewProject()
	p.Settings.ShowHints = false
	p.Settings.Language = models.Bulgarian
	p.Settings.FontsPath = "/usr/share/fonts"
	p.Settings.Font = "DejaVuSans"
	p.Settings.Output = "paper.pdf"
	p.Settings.MaxQuestions = 7
	p.Settings.RandomizeQuestions = true
	p.Header.Title = "Контролна работа"
	p.Questions = []models.Question{
		&models.SelectionQuestion{Question: "2+2?", Correct: []string{"4"}, Incorrect: []string{"3", "5", "6"}, Score: 1},
		&models.SelectionQuestion{Question: "Pick none", Score: 255, Image: "img.png"},
		&models.InputQuestion{Question: "Explain.", NumberOfLines: 65535, Score: 4},
		&models.SelectionQuestion{Question: "Only wrong", Incorrect: []string{"x"}, Score: 2},
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{TOML, YAML} {
		want := sampleProject()

		data, err := Marshal(want, format)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", format, err)
		}
		got, err := Parse(data, format)
		if err != nil {
			t.Fatalf("Parse(%v): %v\n%s", format, err, data)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("format %v round trip mismatch\n got: %+v\nwant: %+v\n%s", format, got, want, data)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")

	want := sampleProject()
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("saved project differs\n got: %+v\nwant: %+v", got, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestParseErrors(t *testing.T) {
	many := `["1","2","3","4","5","6","7","8","9"]`

	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `[settings`},
		{"unknown key", "[settings]\ncolour = \"red\"\n"},
		{"unknown language", "[settings]\nlanguage = \"Latin\"\n"},
		{"unknown paper size", "[settings]\npaper_size = \"A5\"\n"},
		{"no variant keys", "[[questions]]\nquestion = \"q\"\n"},
		{"both variants", "[[questions]]\nquestion = \"q\"\ncorrect = [\"a\"]\nnumber_of_lines = 2\n"},
		{"zero points", "[[questions]]\nquestion = \"q\"\nnumber_of_lines = 1\npoints = 0\n"},
		{"too many points", "[[questions]]\nquestion = \"q\"\nnumber_of_lines = 1\npoints = 256\n"},
		{"negative lines", "[[questions]]\nquestion = \"q\"\nnumber_of_lines = -1\n"},
		{"too many answers", "[[questions]]\nquestion = \"q\"\ncorrect = " + many + "\nincorrect = " + many + "\n"},
		{"zero max questions", "[settings]\nmax_questions = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), TOML)
			if !errors.Is(err, models.ErrConfig) {
				t.Errorf("Parse() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, models.ErrConfig) {
		t.Errorf("Load() error = %v, want ErrConfig", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":     TOML,
		"a.YAML":     YAML,
		"dir/b.yml":  YAML,
		"noext":      TOML,
		"x.conf.txt": TOML,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestMarshalDefaultProject(t *testing.T) {
	data, err := Marshal(models.NewProject(), TOML)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, key := range []string{"[settings]", "[header]", "show_hints", "max_questions"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("default project TOML lacks %q:\n%s", key, data)
		}
	}
	if _, err := Parse(data, TOML); err != nil {
		t.Errorf("default project does not parse back: %v", err)
	}
}
