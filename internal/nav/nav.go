package nav

import (
	"net/url"
	"strings"
)

const (
	LandingPath = "/"
	TopicsPath  = "/topics"
	lessonRoot  = "/lesson/"
)

// LessonPath returns the lesson page for slug, optionally opened at a TOC
// section.
func LessonPath(slug, section string) string {
	p := lessonRoot + url.PathEscape(slug)
	if section != "" {
		p += "?section=" + url.QueryEscape(section)
	}
	return p
}

// LessonSlug extracts the slug from a lesson path.
func LessonSlug(path string) (string, bool) {
	if !strings.HasPrefix(path, lessonRoot) {
		return "", false
	}
	slug := strings.TrimPrefix(path, lessonRoot)
	if i := strings.IndexAny(slug, "/?#"); i >= 0 {
		slug = slug[:i]
	}
	if s, err := url.PathUnescape(slug); err == nil {
		slug = s
	}
	return slug, slug != ""
}

// Parent is where the back button leads when there is no history:
// lessons go to the topic picker, the picker goes to the landing page.
func Parent(path string) string {
	if strings.HasPrefix(path, lessonRoot) {
		return TopicsPath
	}
	return LandingPath
}

// CompletionPath is where a finished lesson sends the learner.
func CompletionPath() string { return TopicsPath }
