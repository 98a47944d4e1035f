package chrome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woophysics/lessons/internal/chrome"
	"github.com/woophysics/lessons/internal/lesson"
)

func TestBaseTop(t *testing.T) {
	c := lesson.Default()
	tests := []struct {
		path string
		want chrome.Bar
	}{
		{path: "/", want: chrome.Bar{Title: "WooPhysics"}},
		{path: "/topics", want: chrome.Bar{Title: "토픽 선택", ShowBack: true, BackHref: "/"}},
		{path: "/lesson/atom-spectrum", want: chrome.Bar{Title: "원자 스펙트럼", ShowBack: true, BackHref: "/topics"}},
		{path: "/lesson/unknown", want: chrome.Bar{Title: "레슨", ShowBack: true, BackHref: "/topics"}},
		{path: "/elsewhere", want: chrome.Bar{Title: "WooPhysics"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, chrome.BaseTop(tc.path, lesson.Brand, c), tc.path)
	}
}

func TestScope_RegisterAndRelease(t *testing.T) {
	s := chrome.NewScope(chrome.Bar{Title: "base"})

	releaseA := s.Register(chrome.Bar{Title: "A", Right: "<b>a</b>"})
	releaseB := s.Register(chrome.Bar{Title: "B"})

	cur := s.Current()
	assert.Equal(t, "B", cur.Title, "newest override wins")
	assert.Equal(t, "<b>a</b>", string(cur.Right), "older override still contributes")

	releaseA()
	releaseA()
	assert.Equal(t, 1, s.Active())
	cur = s.Current()
	assert.Equal(t, "B", cur.Title)
	assert.Empty(t, cur.Right)

	releaseB()
	assert.Equal(t, chrome.Bar{Title: "base"}, s.Current())
	assert.Zero(t, s.Active())
}

func TestNewPage(t *testing.T) {
	p := chrome.NewPage("/topics", lesson.Brand, lesson.Default(), chrome.Bar{Center: "데모 환경"})
	assert.Equal(t, "토픽 선택", p.Top.Current().Title)
	assert.Equal(t, "데모 환경", string(p.Bottom.Current().Center))
}
