// Package pdf turns a project into a printable test paper.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/papertest/testgen/pkg/layout"
	"github.com/papertest/testgen/pkg/models"
)

const (
	pageMargin     = 10
	titleFontSize  = 18
	fieldFontSize  = 14
	bodyFontSize   = 12
	titleSplit     = 0.9
	fieldSplit     = 0.7
	classSplit     = 0.5
	footerSplit    = 0.7
	fillPadding    = 1.5
	nameBlankWidth = 40
)

var examinerBlank = strings.Repeat("_", 30)

// Generator renders one project. It never modifies the project.
type Generator struct {
	project *models.Project
	rng     *rand.Rand

	// Fonts resolves settings.fonts_path and settings.font. Defaults to DirResolver.
	Fonts FontResolver

	// Created is stored as the creation and modification date of the PDF.
	// The zero value means the Unix epoch, which keeps output reproducible.
	Created time.Time

	newBackend func(family *FontFamily, info documentInfo) (Backend, error)
}

// NewGenerator creates a generator. A nil rng uses a time seeded source.
func NewGenerator(project *models.Project, rng *rand.Rand) *Generator {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Generator{
		project: project,
		rng:     rng,
		Fonts:   DirResolver{},
		newBackend: func(family *FontFamily, info documentInfo) (Backend, error) {
			return newFpdfBackend(family, info)
		},
	}
}

// NewSeededRand returns a reproducible random source for the generator.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Build composes the document and returns it with the sum of the points
// of the printed questions. Nothing is rendered yet.
func (g *Generator) Build() (*layout.Document, int, error) {
	p := g.project
	if err := p.Settings.Validate(); err != nil {
		return nil, 0, err
	}

	w, h := p.Settings.PaperSize.Dimensions()
	doc := layout.NewDocument(layout.Size{Width: w, Height: h})
	doc.SetTitle(p.Header.Title)
	doc.SetPageDecorator(&layout.SimplePageDecorator{Margins: layout.MarginsAll(pageMargin)})

	g.header(doc)
	maxPoints, err := g.questions(doc)
	if err != nil {
		return nil, 0, err
	}
	g.footer(doc, maxPoints)
	return doc, maxPoints, nil
}

func (g *Generator) header(doc *layout.Document) {
	lang := g.project.Settings.Language
	field := layout.Style{FontSize: fieldFontSize}

	title := layout.NewStyledParagraph(g.project.Header.Title, layout.Style{FontSize: titleFontSize})
	title.SetAlignment(layout.AlignCenter)
	doc.Push(title)

	doc.Push(layout.NewBreak(1.0))

	name := layout.NewStyledParagraph(lang.InputName()+": "+strings.Repeat("_", nameBlankWidth), field)
	class := layout.NewSplit(
		layout.NewStyledParagraph(lang.InputClass()+": _____", field),
		layout.NewStyledParagraph(lang.InputClassNum()+": _____", field),
		classSplit,
	)
	doc.Push(layout.NewSplit(name, class, fieldSplit))

	doc.Push(layout.NewBreak(0.5))
}

// questions pushes every printed question and returns their point total.
func (g *Generator) questions(doc *layout.Document) (int, error) {
	settings := g.project.Settings
	doc.SetFontSize(bodyFontSize)

	questions := g.project.CloneQuestions()
	if settings.RandomizeQuestions {
		g.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	if len(questions) > settings.MaxQuestions {
		questions = questions[:settings.MaxQuestions]
	}

	maxPoints := 0
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return 0, fmt.Errorf("question %d: %w", i+1, err)
		}

		doc.Push(g.titleRow(i, q))
		maxPoints += int(q.Points())

		switch q := q.(type) {
		case *models.SelectionQuestion:
			answers := q.Answers()
			g.rng.Shuffle(len(answers), func(i, j int) {
				answers[i], answers[j] = answers[j], answers[i]
			})

			list := layout.NewAlphaList(settings.Language.FirstChar())
			for _, answer := range answers {
				if err := list.Push(layout.NewText(answer)); err != nil {
					return 0, fmt.Errorf("%w: question %d: %v", models.ErrRender, i+1, err)
				}
			}
			doc.Push(list)
		case *models.InputQuestion:
			doc.Push(layout.NewBreak(0.5))
			for range q.NumberOfLines {
				doc.Push(layout.NewPadded(layout.NewCharFill('.'), layout.MarginsVH(fillPadding, 0)))
			}
		default:
			return 0, fmt.Errorf("%w: question %d has unsupported type %T", models.ErrConfig, i+1, q)
		}

		doc.Push(layout.NewBreak(1.0))
	}
	return maxPoints, nil
}

// titleRow is the numbered title with the score box on the right.
func (g *Generator) titleRow(i int, q models.Question) layout.Element {
	settings := g.project.Settings

	title := fmt.Sprintf("%d. %s", i+1, q.Title())
	if sel, ok := q.(*models.SelectionQuestion); ok && sel.HasMultipleAnswers() && settings.ShowHints {
		title += fmt.Sprintf(" (%s)", settings.Language.MultipleAnswersHint())
	}

	points := layout.NewParagraph(settings.Language.FormatPoints(q.Points()))
	points.SetAlignment(layout.AlignRight)

	return layout.NewSplit(layout.NewParagraph(title), points, titleSplit)
}

func (g *Generator) footer(doc *layout.Document, maxPoints int) {
	lang := g.project.Settings.Language

	examiner := layout.NewSplit(
		layout.NewParagraph(lang.Examiner()+": "),
		layout.NewParagraph(examinerBlank),
		0,
	)
	points := layout.NewParagraph(fmt.Sprintf("%s: %s/%d",
		lang.PointsSum(), strings.Repeat("_", pointsBlankWidth(maxPoints)), maxPoints))

	doc.Push(layout.NewSplit(examiner, points, footerSplit))
}

// pointsBlankWidth is floor(log10(maxPoints)) + 2, counted on integers so
// powers of ten are exact. Zero points still get a two character blank.
func pointsBlankWidth(maxPoints int) int {
	width := 2
	for n := maxPoints; n >= 10; n /= 10 {
		width++
	}
	return width
}

// render lays the document out on a fresh backend.
func (g *Generator) render() (Backend, error) {
	s := g.project.Settings

	family, err := g.Fonts.Resolve(s.FontsPath, s.Font)
	if err != nil {
		if !errors.Is(err, models.ErrFont) {
			err = fmt.Errorf("%w: %v", models.ErrFont, err)
		}
		return nil, err
	}

	doc, _, err := g.Build()
	if err != nil {
		return nil, err
	}

	created := g.Created
	if created.IsZero() {
		created = time.Unix(0, 0).UTC()
	}
	backend, err := g.newBackend(family, documentInfo{title: doc.Title(), paper: doc.PaperSize(), created: created})
	if err != nil {
		return nil, err
	}

	if _, err := doc.Render(backend); err != nil {
		if errors.Is(err, models.ErrFont) || errors.Is(err, models.ErrRender) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", models.ErrRender, err)
	}
	return backend, nil
}

// Render writes the PDF to w.
func (g *Generator) Render(w io.Writer) error {
	backend, err := g.render()
	if err != nil {
		return err
	}
	return backend.Write(w)
}

// Generate writes the PDF to settings.output and returns how long it took.
// The file is replaced atomically; on error it is left untouched.
func (g *Generator) Generate() (time.Duration, error) {
	start := time.Now()

	backend, err := g.render()
	if err != nil {
		return 0, err
	}
	if err := writeFileAtomic(g.project.Settings.Output, backend.Write); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// GeneratePDF renders project to its configured output file.
func GeneratePDF(project *models.Project, rng *rand.Rand) (time.Duration, error) {
	return NewGenerator(project, rng).Generate()
}
