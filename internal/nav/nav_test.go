package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woophysics/lessons/internal/nav"
)

func TestLessonPath(t *testing.T) {
	assert.Equal(t, "/lesson/atom-spectrum", nav.LessonPath("atom-spectrum", ""))
	assert.Equal(t, "/lesson/atom-spectrum?section=formative", nav.LessonPath("atom-spectrum", "formative"))
}

func TestLessonSlug(t *testing.T) {
	tests := []struct {
		path string
		slug string
		ok   bool
	}{
		{path: "/lesson/energy-band", slug: "energy-band", ok: true},
		{path: "/lesson/energy-band?section=wrap", slug: "energy-band", ok: true},
		{path: "/lesson/", ok: false},
		{path: "/topics", ok: false},
	}
	for _, tc := range tests {
		slug, ok := nav.LessonSlug(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.slug, slug, tc.path)
	}
}

func TestParent(t *testing.T) {
	assert.Equal(t, nav.TopicsPath, nav.Parent("/lesson/em-wave"))
	assert.Equal(t, nav.LandingPath, nav.Parent("/topics"))
	assert.Equal(t, nav.LandingPath, nav.Parent("/"))
	assert.Equal(t, nav.TopicsPath, nav.CompletionPath())
}
