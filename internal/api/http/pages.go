package http

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/woophysics/lessons/internal/chrome"
	"github.com/woophysics/lessons/internal/formative"
	"github.com/woophysics/lessons/internal/lesson"
	"github.com/woophysics/lessons/internal/nav"
)

const contact = "drshark@snu.ac.kr"

// Pages serves the landing, topic picker and lesson views.
type Pages struct {
	catalog *lesson.Catalog
	log     *zap.Logger
	tmpl    *renderer
	now     func() time.Time
}

func NewPages(c *lesson.Catalog, log *zap.Logger) (*Pages, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Pages{catalog: c, log: log, tmpl: r, now: time.Now}, nil
}

// frame is the page root: it owns both bar scopes for one render.
func (p *Pages) frame(r *http.Request) *chrome.Page {
	bottom := chrome.Bar{
		Left:   template.HTML(fmt.Sprintf("© %d %s · %s", p.now().Year(), template.HTMLEscapeString(p.catalog.Brand), contact)),
		Center: "데모 환경",
	}
	return chrome.NewPage(r.URL.Path, p.catalog.Brand, p.catalog, bottom)
}

func (p *Pages) write(w http.ResponseWriter, r *http.Request, status int, name string, pg page) {
	if err := p.tmpl.render(w, status, name, pg); err != nil {
		p.log.Error("render failed", zap.String("page", name), zap.Error(err))
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func (p *Pages) title(parts ...string) string {
	out := p.catalog.Brand
	for i := len(parts) - 1; i >= 0; i-- {
		out = parts[i] + " · " + out
	}
	return out
}

// GET /
func (p *Pages) Landing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := p.frame(r)
		p.write(w, r, http.StatusOK, "landing", page{
			Title:  p.title(),
			Top:    f.Top.Current(),
			Bottom: f.Bottom.Current(),
			Data:   struct{ TopicsHref string }{nav.TopicsPath},
		})
	}
}

type topicCard struct {
	Href     string
	Title    string
	Subtitle string
}

// GET /topics
func (p *Pages) Topics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards := make([]topicCard, 0, len(p.catalog.Topics))
		for _, t := range p.catalog.Topics {
			cards = append(cards, topicCard{Href: nav.LessonPath(t.Slug, ""), Title: t.Title, Subtitle: t.Subtitle})
		}
		f := p.frame(r)
		p.write(w, r, http.StatusOK, "topics", page{
			Title:  p.title("Topics"),
			Top:    f.Top.Current(),
			Bottom: f.Bottom.Current(),
			Data:   struct{ Topics []topicCard }{cards},
		})
	}
}

type tocEntry struct {
	Label  string
	Href   string
	Active bool
}

type quizView struct {
	Items     []formative.Item
	Undefined string
}

type lessonView struct {
	Section lesson.Section
	TOC     []tocEntry
	Quiz    quizView
}

func navLink(href, label string) template.HTML {
	return template.HTML(fmt.Sprintf(`<a class="nav-btn" href="%s">%s</a>`,
		template.HTMLEscapeString(href), template.HTMLEscapeString(label)))
}

// lessonBottom is the bottom bar a lesson section layers over the footer.
func lessonBottom(l *lesson.Lesson, i int) (bar chrome.Bar, prevHref, nextHref string) {
	prev, next := l.Neighbors(i)
	bar.Center = template.HTML(fmt.Sprintf("섹션 %d / %d", i+1, len(l.Sections)))
	if prev != nil {
		prevHref = nav.LessonPath(l.Slug, prev.ID)
		bar.Left = navLink(prevHref, "← 이전")
	} else {
		bar.Left = `<span class="nav-btn disabled" aria-disabled="true">← 이전</span>`
	}
	if next != nil {
		nextHref = nav.LessonPath(l.Slug, next.ID)
		bar.Right = navLink(nextHref, "다음 →")
	} else {
		bar.Right = navLink(nav.CompletionPath(), "학습완료")
	}
	return bar, prevHref, nextHref
}

// GET /lesson/{slug}?section=
func (p *Pages) Lesson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		f := p.frame(r)

		l, err := p.catalog.Lesson(slug)
		switch {
		case errors.Is(err, lesson.ErrLessonNotFound), errors.Is(err, lesson.ErrTopicNotFound):
			status := http.StatusOK
			if errors.Is(err, lesson.ErrTopicNotFound) {
				status = http.StatusNotFound
			}
			title := p.catalog.TitleFor(slug)
			p.write(w, r, status, "soon", page{
				Title:  p.title(title),
				Top:    f.Top.Current(),
				Bottom: f.Bottom.Current(),
				Data:   struct{ Title string }{title},
			})
			return
		case err != nil:
			p.log.Error("lesson lookup", zap.String("slug", slug), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		sec, i, err := l.Section(r.URL.Query().Get("section"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		bottom, prevHref, nextHref := lessonBottom(l, i)
		release := f.Bottom.Register(bottom)
		defer release()

		v := lessonView{Section: sec, Quiz: quizView{Items: l.Quiz, Undefined: formative.Undefined}}
		for _, s := range l.Sections {
			v.TOC = append(v.TOC, tocEntry{Label: s.Label, Href: nav.LessonPath(l.Slug, s.ID), Active: s.ID == sec.ID})
		}
		p.write(w, r, http.StatusOK, "lesson", page{
			Title:  p.title(sec.Label, l.Title),
			Top:    f.Top.Current(),
			Bottom: f.Bottom.Current(),
			Prev:   prevHref,
			Next:   nextHref,
			Data:   v,
		})
	}
}
