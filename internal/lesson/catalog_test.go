package lesson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woophysics/lessons/internal/lesson"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, lesson.Default().Validate())
}

func TestLessonLookup(t *testing.T) {
	c := lesson.Default()

	l, err := c.Lesson("atom-spectrum")
	require.NoError(t, err)
	assert.Equal(t, "원자 스펙트럼", l.Title)
	assert.Len(t, l.Sections, 5)

	_, err = c.Lesson("em-wave")
	assert.ErrorIs(t, err, lesson.ErrLessonNotFound)

	_, err = c.Lesson("quantum-foam")
	assert.ErrorIs(t, err, lesson.ErrTopicNotFound)
}

func TestTitleFor(t *testing.T) {
	c := lesson.Default()
	assert.Equal(t, "전자기파", c.TitleFor("em-wave"))
	assert.Equal(t, "레슨", c.TitleFor("nope"))
}

func TestSectionSelection(t *testing.T) {
	l, err := lesson.Default().Lesson("energy-band")
	require.NoError(t, err)

	s, i, err := l.Section("")
	require.NoError(t, err)
	assert.Equal(t, "intro", s.ID)
	assert.Equal(t, 0, i)

	s, i, err = l.Section("formative")
	require.NoError(t, err)
	assert.True(t, s.Formative)
	assert.Equal(t, 3, i)

	_, _, err = l.Section("appendix")
	assert.ErrorIs(t, err, lesson.ErrSectionNotFound)
}

func TestNeighbors(t *testing.T) {
	l, err := lesson.Default().Lesson("atom-spectrum")
	require.NoError(t, err)

	prev, next := l.Neighbors(0)
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "observe", next.ID)

	prev, next = l.Neighbors(len(l.Sections) - 1)
	require.NotNil(t, prev)
	assert.Equal(t, "formative", prev.ID)
	assert.Nil(t, next)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *lesson.Catalog)
	}{
		{name: "duplicate section", mutate: func(c *lesson.Catalog) {
			l := c.Lessons["atom-spectrum"]
			l.Sections = append(l.Sections, l.Sections[0])
		}},
		{name: "lesson without topic", mutate: func(c *lesson.Catalog) {
			c.Lessons["optics"] = &lesson.Lesson{Slug: "optics", Title: "광학", Sections: []lesson.Section{{ID: "intro", Label: "도입"}}}
		}},
		{name: "lesson under wrong key", mutate: func(c *lesson.Catalog) {
			c.Lessons["em-wave"] = c.Lessons["energy-band"]
		}},
		{name: "bad slug", mutate: func(c *lesson.Catalog) {
			c.Topics[0].Slug = "Atom Spectrum"
		}},
		{name: "two formative sections", mutate: func(c *lesson.Catalog) {
			c.Lessons["atom-spectrum"].Sections[0].Formative = true
		}},
		{name: "formative section without quiz", mutate: func(c *lesson.Catalog) {
			c.Lessons["energy-band"].Quiz = nil
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := lesson.Default()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
