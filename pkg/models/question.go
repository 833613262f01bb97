package models

import "fmt"

const (
	// MaxAnswers is the largest number of options a selection question may carry.
	MaxAnswers = 16

	// DefaultPoints is used when a question does not declare its point value.
	DefaultPoints = 1
)

// Question is either a *SelectionQuestion or an *InputQuestion.
type Question interface {
	Title() string
	Points() uint8
	Clone() Question
	Validate() error
}

// SelectionQuestion is a multiple choice question
type SelectionQuestion struct {
	Question  string   // The question text
	Correct   []string // Options that are correct
	Incorrect []string // Options that are wrong
	Score     uint8    // Points awarded, 1..255
	Image     string   // Optional image path, carried but never rendered
}

func (q *SelectionQuestion) Title() string { return q.Question }
func (q *SelectionQuestion) Points() uint8 { return q.Score }

// Answers returns the correct options followed by the incorrect ones.
func (q *SelectionQuestion) Answers() []string {
	answers := make([]string, 0, len(q.Correct)+len(q.Incorrect))
	answers = append(answers, q.Correct...)
	return append(answers, q.Incorrect...)
}

// HasMultipleAnswers reports whether more than one option is correct.
func (q *SelectionQuestion) HasMultipleAnswers() bool {
	return len(q.Correct) >= 2
}

func (q *SelectionQuestion) Clone() Question {
	c := *q
	c.Correct = cloneStrings(q.Correct)
	c.Incorrect = cloneStrings(q.Incorrect)
	return &c
}

func (q *SelectionQuestion) Validate() error {
	if n := len(q.Correct) + len(q.Incorrect); n > MaxAnswers {
		return fmt.Errorf("%w: question %q has %d answers, at most %d allowed", ErrConfig, q.Question, n, MaxAnswers)
	}
	if q.Score == 0 {
		return fmt.Errorf("%w: question %q must be worth at least 1 point", ErrConfig, q.Question)
	}
	return nil
}

// InputQuestion is a free text question answered on blank lines
type InputQuestion struct {
	Question      string // The question text
	NumberOfLines uint16 // Dotted answer lines to print
	Score         uint8  // Points awarded, 1..255
	Image         string // Optional image path, carried but never rendered
}

// NewInputQuestion creates an input question
func NewInputQuestion(question string, lines uint16, points uint8) *InputQuestion {
	return &InputQuestion{Question: question, NumberOfLines: lines, Score: points}
}

func (q *InputQuestion) Title() string { return q.Question }
func (q *InputQuestion) Points() uint8 { return q.Score }

func (q *InputQuestion) Clone() Question {
	c := *q
	return &c
}

func (q *InputQuestion) Validate() error {
	if q.Score == 0 {
		return fmt.Errorf("%w: question %q must be worth at least 1 point", ErrConfig, q.Question)
	}
	return nil
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
