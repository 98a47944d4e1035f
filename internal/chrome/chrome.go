// Package chrome holds the top and bottom bar state of a page. A single
// root owner creates one Scope per bar; views layer overrides onto it for
// as long as they are mounted.
package chrome

import (
	"html/template"
	"strings"
	"sync"

	"github.com/woophysics/lessons/internal/nav"
)

// Bar is what a bar renders. Zero fields in an override leave the
// underlying value in place.
type Bar struct {
	Title    string
	ShowBack bool
	BackHref string
	Left     template.HTML
	Center   template.HTML
	Right    template.HTML
}

// Titler resolves a lesson slug to its display title.
type Titler interface {
	TitleFor(slug string) string
}

// BaseTop derives the top bar from the request path.
func BaseTop(path, brand string, titles Titler) Bar {
	switch {
	case path == nav.LandingPath:
		return Bar{Title: brand}
	case strings.HasPrefix(path, nav.TopicsPath):
		return Bar{Title: "토픽 선택", ShowBack: true, BackHref: nav.Parent(path)}
	}
	if slug, ok := nav.LessonSlug(path); ok {
		return Bar{Title: titles.TitleFor(slug), ShowBack: true, BackHref: nav.Parent(path)}
	}
	return Bar{Title: brand}
}

type entry struct {
	id  uint64
	bar Bar
}

// Scope owns one bar: a base value plus the overrides of mounted views.
type Scope struct {
	mu      sync.Mutex
	base    Bar
	next    uint64
	entries []entry
}

func NewScope(base Bar) *Scope {
	return &Scope{base: base}
}

// Register layers override on top of the bar. The returned release func
// removes exactly this override and is safe to call more than once.
func (s *Scope) Register(override Bar) (release func()) {
	s.mu.Lock()
	s.next++
	id := s.next
	s.entries = append(s.entries, entry{id: id, bar: override})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, e := range s.entries {
				if e.id == id {
					s.entries = append(s.entries[:i], s.entries[i+1:]...)
					return
				}
			}
		})
	}
}

// Current merges the base with live overrides in registration order.
func (s *Scope) Current() Bar {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.base
	for _, e := range s.entries {
		out = merge(out, e.bar)
	}
	return out
}

// Active reports how many overrides are registered.
func (s *Scope) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func merge(dst, src Bar) Bar {
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.ShowBack {
		dst.ShowBack = true
	}
	if src.BackHref != "" {
		dst.BackHref = src.BackHref
	}
	if src.Left != "" {
		dst.Left = src.Left
	}
	if src.Center != "" {
		dst.Center = src.Center
	}
	if src.Right != "" {
		dst.Right = src.Right
	}
	return dst
}

// Page is the pair of bar scopes handed down from the page root.
type Page struct {
	Top    *Scope
	Bottom *Scope
}

// NewPage builds the scopes for one rendered page.
func NewPage(path, brand string, titles Titler, bottom Bar) *Page {
	return &Page{
		Top:    NewScope(BaseTop(path, brand, titles)),
		Bottom: NewScope(bottom),
	}
}
