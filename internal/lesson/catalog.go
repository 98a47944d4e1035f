package lesson

import (
	"errors"
	"fmt"
	"html/template"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/woophysics/lessons/internal/formative"
	"github.com/woophysics/lessons/internal/validate"
)

var (
	ErrTopicNotFound   = errors.New("topic not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrSectionNotFound = errors.New("section not found")
)

// Topic is a card on the topic picker.
type Topic struct {
	Slug     string `json:"slug" validate:"required,slug"`
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Section is one entry of a lesson's table of contents.
type Section struct {
	ID      string        `json:"id" validate:"required,slug"`
	Label   string        `json:"label" validate:"required"`
	Heading string        `json:"heading"`
	Body    template.HTML `json:"-"`

	// Formative marks the section that mounts the quiz view.
	Formative bool `json:"formative,omitempty"`
}

type Lesson struct {
	Slug     string    `json:"slug" validate:"required,slug"`
	Title    string    `json:"title" validate:"required"`
	Sections []Section `json:"sections" validate:"min=1,unique=ID,dive"`

	Quiz []formative.Item `json:"-"`
}

// Section returns the section with id, or the first section when id is
// empty.
func (l *Lesson) Section(id string) (Section, int, error) {
	if id == "" {
		return l.Sections[0], 0, nil
	}
	for i, s := range l.Sections {
		if s.ID == id {
			return s, i, nil
		}
	}
	return Section{}, -1, fmt.Errorf("%w: %s/%s", ErrSectionNotFound, l.Slug, id)
}

// Neighbors returns the sections before and after index i, if any.
func (l *Lesson) Neighbors(i int) (prev, next *Section) {
	if i > 0 && i < len(l.Sections) {
		prev = &l.Sections[i-1]
	}
	if i >= 0 && i+1 < len(l.Sections) {
		next = &l.Sections[i+1]
	}
	return prev, next
}

// Catalog holds every topic and the lessons written so far. Topics without
// a lesson render a placeholder page.
type Catalog struct {
	Brand   string             `json:"brand" validate:"required"`
	Topics  []Topic            `json:"topics" validate:"min=1,unique=Slug,dive"`
	Lessons map[string]*Lesson `json:"lessons" validate:"dive"`
}

func (c *Catalog) Topic(slug string) (Topic, error) {
	for _, t := range c.Topics {
		if t.Slug == slug {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w: %s", ErrTopicNotFound, slug)
}

// Lesson returns the lesson for slug. A known topic without content yields
// ErrLessonNotFound; an unknown slug yields ErrTopicNotFound.
func (c *Catalog) Lesson(slug string) (*Lesson, error) {
	if l, ok := c.Lessons[slug]; ok {
		return l, nil
	}
	if _, err := c.Topic(slug); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", ErrLessonNotFound, slug)
}

// TitleFor is the display title of a lesson path segment, falling back to
// a generic label for unknown slugs.
func (c *Catalog) TitleFor(slug string) string {
	if t, err := c.Topic(slug); err == nil {
		return t.Title
	}
	return "레슨"
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func init() {
	v := validate.Shared()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(catalogStructLevel, Catalog{})
}

func catalogStructLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(Catalog)
	for key, l := range c.Lessons {
		if l == nil || l.Slug != key {
			sl.ReportError(c.Lessons, "lessons["+key+"]", "Lessons", "lesson_key", key)
			continue
		}
		if _, err := c.Topic(key); err != nil {
			sl.ReportError(c.Lessons, "lessons["+key+"]", "Lessons", "lesson_topic", key)
		}
	}
}

// Validate checks the catalog shape and every lesson's quiz definition.
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for slug, l := range c.Lessons {
		formativeSections := 0
		for _, s := range l.Sections {
			if s.Formative {
				formativeSections++
			}
		}
		if formativeSections > 1 {
			return fmt.Errorf("lesson %s: %d formative sections", slug, formativeSections)
		}
		if formativeSections == 1 {
			if err := formative.Validate(l.Quiz); err != nil {
				return fmt.Errorf("lesson %s quiz: %w", slug, err)
			}
		}
	}
	return nil
}
