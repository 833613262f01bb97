// Package importer turns printed question sheets into project questions.
//
// A sheet is plain text (or a PDF run through pdftotext) laid out as
//
//	Geography
//
//	1. Capital of France?
//	a) Berlin
//	X b) Paris
//	c) Madrid
//
//	2.
//	Describe the water cycle.
//
// Numbered lines start questions, lettered lines are options and an X in
// front of an option (or alone on the line before it) marks it correct.
// Lines that match nothing continue the previous question or option.
package importer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/papertest/testgen/pkg/models"
)

// DefaultInputLines is the answer space given to questions without options.
const DefaultInputLines = 3

var (
	questionOnlyPattern     = regexp.MustCompile(`^(\d+)\.$`)
	questionWithTextPattern = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	optionPattern           = regexp.MustCompile(`^(X\s+)?([a-pа-п])\)\s*(.*)$`)
	justXPattern            = regexp.MustCompile(`^X$`)
)

// Sheet is the content of one question sheet
type Sheet struct {
	Title     string            // First line before the first question, if any
	Questions []models.Question // In sheet order
}

// Parser reads a question sheet from a file
type Parser struct {
	path string
}

// NewParser creates a parser for a .txt or .pdf sheet
func NewParser(path string) *Parser {
	return &Parser{path: path}
}

// Parse extracts the questions of the sheet
func (p *Parser) Parse() (*Sheet, error) {
	text, err := p.extractText()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrConfig, err)
	}
	return ParseText(text)
}

// extractText reads text sheets directly and converts PDFs with pdftotext
func (p *Parser) extractText() (string, error) {
	if strings.EqualFold(filepath.Ext(p.path), ".pdf") {
		output, err := exec.Command("pdftotext", "-layout", p.path, "-").Output()
		if err != nil {
			return "", fmt.Errorf("pdftotext failed: %w", err)
		}
		return string(output), nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type rawOption struct {
	text    string
	correct bool
}

type rawQuestion struct {
	number  int
	text    string
	options []*rawOption
}

func (q *rawQuestion) appendText(line string) {
	if len(q.options) > 0 {
		last := q.options[len(q.options)-1]
		last.text = joinLine(last.text, line)
		return
	}
	q.text = joinLine(q.text, line)
}

func joinLine(text, line string) string {
	if text == "" {
		return line
	}
	return text + " " + line
}

// ParseText parses the text of a sheet
func ParseText(text string) (*Sheet, error) {
	sheet := &Sheet{}

	var questions []*rawQuestion
	var current *rawQuestion
	var nextOptionIsCorrect bool

	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}

		if m := questionOnlyPattern.FindStringSubmatch(line); m != nil {
			current = newQuestion(m[1])
			questions = append(questions, current)
			nextOptionIsCorrect = false
			continue
		}
		if m := questionWithTextPattern.FindStringSubmatch(line); m != nil {
			current = newQuestion(m[1])
			current.text = m[2]
			questions = append(questions, current)
			nextOptionIsCorrect = false
			continue
		}

		if current == nil {
			if sheet.Title == "" {
				sheet.Title = line
			}
			continue
		}

		if justXPattern.MatchString(line) {
			nextOptionIsCorrect = true
			continue
		}
		if m := optionPattern.FindStringSubmatch(line); m != nil {
			current.options = append(current.options, &rawOption{
				text:    m[3],
				correct: m[1] != "" || nextOptionIsCorrect,
			})
			nextOptionIsCorrect = false
			continue
		}

		current.appendText(line)
	}

	for _, rq := range questions {
		q, err := rq.toQuestion()
		if err != nil {
			return nil, err
		}
		sheet.Questions = append(sheet.Questions, q)
	}
	return sheet, nil
}

func newQuestion(number string) *rawQuestion {
	n, _ := strconv.Atoi(number)
	return &rawQuestion{number: n}
}

func (rq *rawQuestion) toQuestion() (models.Question, error) {
	if rq.text == "" {
		return nil, fmt.Errorf("%w: question %d has no text", models.ErrConfig, rq.number)
	}
	if len(rq.options) == 0 {
		return models.NewInputQuestion(rq.text, DefaultInputLines, models.DefaultPoints), nil
	}
	if len(rq.options) > models.MaxAnswers {
		return nil, fmt.Errorf("%w: question %d has %d options, at most %d allowed", models.ErrConfig, rq.number, len(rq.options), models.MaxAnswers)
	}

	q := &models.SelectionQuestion{Question: rq.text, Score: models.DefaultPoints}
	for _, opt := range rq.options {
		if opt.correct {
			q.Correct = append(q.Correct, opt.text)
		} else {
			q.Incorrect = append(q.Incorrect, opt.text)
		}
	}
	return q, nil
}

// ParseFile is a convenience function that parses the sheet at path
func ParseFile(path string) (*Sheet, error) {
	return NewParser(path).Parse()
}

// Project wraps the sheet into a new project with default settings.
func (s *Sheet) Project() *models.Project {
	p := models.NewProject()
	p.Header.Title = s.Title
	p.Questions = s.Questions
	return p
}
