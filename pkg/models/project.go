package models

import "fmt"

// Header is printed at the top of the first page
type Header struct {
	Title string
}

// Project is a complete test paper description
type Project struct {
	Settings  Settings
	Header    Header
	Questions []Question // In declaration order
}

// NewProject returns an empty project with default settings.
func NewProject() *Project {
	return &Project{Settings: DefaultSettings()}
}

// CloneQuestions returns a deep copy of the question list.
func (p *Project) CloneQuestions() []Question {
	questions := make([]Question, len(p.Questions))
	for i, q := range p.Questions {
		questions[i] = q.Clone()
	}
	return questions
}

// MaxPoints sums the points of the given questions.
func MaxPoints(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += int(q.Points())
	}
	return total
}

// Validate checks the settings and every question.
func (p *Project) Validate() error {
	if err := p.Settings.Validate(); err != nil {
		return err
	}
	for i, q := range p.Questions {
		if q == nil {
			return fmt.Errorf("%w: question %d is empty", ErrConfig, i+1)
		}
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
