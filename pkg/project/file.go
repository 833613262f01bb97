// Package project reads and writes project files.
//
// The primary format is TOML:
//
//	[settings]
//	language = "English"
//	fonts_path = "fonts"
//	font = "LiberationSans"
//	output = "out.pdf"
//
//	[header]
//	title = "Quiz"
//
//	[[questions]]
//	question = "2+2?"
//	correct = ["4"]
//	incorrect = ["3", "5"]
//
// YAML files with the same keys are accepted as well. A question with
// correct or incorrect keys is a selection question, one with
// number_of_lines is an input question.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/papertest/testgen/pkg/models"
)

// Format is a project file encoding
type Format int

const (
	TOML Format = iota
	YAML
)

// FormatFromPath picks the format from the file extension, defaulting to TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

type fileSettings struct {
	ShowHints          *bool  `toml:"show_hints,omitempty" yaml:"show_hints,omitempty"`
	PaperSize          string `toml:"paper_size,omitempty" yaml:"paper_size,omitempty"`
	Language           string `toml:"language,omitempty" yaml:"language,omitempty"`
	FontsPath          string `toml:"fonts_path" yaml:"fonts_path"`
	Font               string `toml:"font" yaml:"font"`
	Output             string `toml:"output,omitempty" yaml:"output,omitempty"`
	MaxQuestions       *int   `toml:"max_questions,omitempty" yaml:"max_questions,omitempty"`
	RandomizeQuestions bool   `toml:"randomize_questions" yaml:"randomize_questions"`
}

type fileHeader struct {
	Title string `toml:"title" yaml:"title"`
}

type fileQuestion struct {
	Question      string    `toml:"question" yaml:"question"`
	Correct       *[]string `toml:"correct,omitempty" yaml:"correct,omitempty"`
	Incorrect     *[]string `toml:"incorrect,omitempty" yaml:"incorrect,omitempty"`
	NumberOfLines *int      `toml:"number_of_lines,omitempty" yaml:"number_of_lines,omitempty"`
	Points        *int      `toml:"points,omitempty" yaml:"points,omitempty"`
	Image         string    `toml:"image,omitempty" yaml:"image,omitempty"`
}

type file struct {
	Settings  fileSettings   `toml:"settings" yaml:"settings"`
	Header    fileHeader     `toml:"header" yaml:"header"`
	Questions []fileQuestion `toml:"questions" yaml:"questions"`
}

// Load reads and validates a project file.
func Load(path string) (*models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read project file: %v", models.ErrConfig, err)
	}

	p, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a project. Unknown keys are rejected.
func Parse(data []byte, format Format) (*models.Project, error) {
	var f file

	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrConfig, err)
	}

	p, err := f.toProject()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Marshal encodes a project. Parse(Marshal(p)) reproduces every field of p.
func Marshal(p *models.Project, format Format) ([]byte, error) {
	f := fromProject(p)

	var (
		data []byte
		err  error
	)
	switch format {
	case YAML:
		data, err = yaml.Marshal(&f)
	default:
		data, err = toml.Marshal(&f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrConfig, err)
	}
	return data, nil
}

// Save writes the project to path, replacing any existing file atomically.
func Save(path string, p *models.Project) error {
	data, err := Marshal(p, FormatFromPath(path))
	if err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", models.ErrIO, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", models.ErrIO, err)
	}
	return nil
}

func (f *file) toProject() (*models.Project, error) {
	p := models.NewProject()
	s := &p.Settings

	if f.Settings.ShowHints != nil {
		s.ShowHints = *f.Settings.ShowHints
	}
	if f.Settings.PaperSize != "" {
		size, err := models.ParsePaperSize(f.Settings.PaperSize)
		if err != nil {
			return nil, err
		}
		s.PaperSize = size
	}
	if f.Settings.Language != "" {
		lang, err := models.ParseLanguage(f.Settings.Language)
		if err != nil {
			return nil, err
		}
		s.Language = lang
	}
	if f.Settings.Output != "" {
		s.Output = f.Settings.Output
	}
	if f.Settings.MaxQuestions != nil {
		s.MaxQuestions = *f.Settings.MaxQuestions
	}
	s.FontsPath = f.Settings.FontsPath
	s.Font = f.Settings.Font
	s.RandomizeQuestions = f.Settings.RandomizeQuestions

	p.Header.Title = f.Header.Title

	for i, fq := range f.Questions {
		q, err := fq.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		p.Questions = append(p.Questions, q)
	}
	return p, nil
}

func (fq *fileQuestion) toQuestion() (models.Question, error) {
	points := models.DefaultPoints
	if fq.Points != nil {
		points = *fq.Points
	}
	if points < 1 || points > math.MaxUint8 {
		return nil, fmt.Errorf("%w: points must be between 1 and %d, got %d", models.ErrConfig, math.MaxUint8, points)
	}

	isSelection := fq.Correct != nil || fq.Incorrect != nil
	switch {
	case isSelection && fq.NumberOfLines != nil:
		return nil, fmt.Errorf("%w: %q has both answers and number_of_lines", models.ErrConfig, fq.Question)
	case isSelection:
		q := &models.SelectionQuestion{
			Question: fq.Question,
			Score:    uint8(points),
			Image:    fq.Image,
		}
		if fq.Correct != nil && len(*fq.Correct) > 0 {
			q.Correct = append([]string(nil), *fq.Correct...)
		}
		if fq.Incorrect != nil && len(*fq.Incorrect) > 0 {
			q.Incorrect = append([]string(nil), *fq.Incorrect...)
		}
		return q, nil
	case fq.NumberOfLines != nil:
		lines := *fq.NumberOfLines
		if lines < 0 || lines > math.MaxUint16 {
			return nil, fmt.Errorf("%w: number_of_lines must be between 0 and %d, got %d", models.ErrConfig, math.MaxUint16, lines)
		}
		q := models.NewInputQuestion(fq.Question, uint16(lines), uint8(points))
		q.Image = fq.Image
		return q, nil
	default:
		return nil, fmt.Errorf("%w: %q needs correct/incorrect or number_of_lines", models.ErrConfig, fq.Question)
	}
}

func fromProject(p *models.Project) file {
	s := p.Settings
	showHints := s.ShowHints
	maxQuestions := s.MaxQuestions

	f := file{
		Settings: fileSettings{
			ShowHints:          &showHints,
			PaperSize:          s.PaperSize.String(),
			Language:           s.Language.String(),
			FontsPath:          s.FontsPath,
			Font:               s.Font,
			Output:             s.Output,
			MaxQuestions:       &maxQuestions,
			RandomizeQuestions: s.RandomizeQuestions,
		},
		Header:    fileHeader{Title: p.Header.Title},
		Questions: make([]fileQuestion, 0, len(p.Questions)),
	}

	for _, q := range p.Questions {
		points := int(q.Points())
		fq := fileQuestion{Question: q.Title(), Points: &points}

		switch q := q.(type) {
		case *models.SelectionQuestion:
			correct := append([]string{}, q.Correct...)
			incorrect := append([]string{}, q.Incorrect...)
			fq.Correct = &correct
			fq.Incorrect = &incorrect
			fq.Image = q.Image
		case *models.InputQuestion:
			lines := int(q.NumberOfLines)
			fq.NumberOfLines = &lines
			fq.Image = q.Image
		}
		f.Questions = append(f.Questions, fq)
	}
	return f
}
