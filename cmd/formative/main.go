//go:build js && wasm

// Command formative is the in-browser quiz host. It binds the quiz markup
// rendered by the site to one grading session; nothing leaves the page
// except the CSV the learner chooses to download.
package main

import (
	"syscall/js"

	"go.uber.org/zap"

	"github.com/woophysics/lessons/internal/config"
	"github.com/woophysics/lessons/internal/formative"
	"github.com/woophysics/lessons/internal/logging"
	"github.com/woophysics/lessons/internal/quizhost"
)

type host struct {
	root  js.Value
	quiz  *quizhost.Controller
	funcs []js.Func
}

func main() {
	logger, err := logging.New(config.Config{Mode: config.ModeDebug, LogLevel: "info"})
	if err != nil {
		panic(err)
	}

	root := js.Global().Get("document").Call("querySelector", "[data-quiz]")
	if root.IsNull() {
		logger.Warn("no quiz on this page")
		return
	}
	h := &host{
		root: root,
		quiz: quizhost.New(formative.NewSession(), browserSaver{}, logger),
	}
	h.bind()
	h.render()
	logger.Info("quiz ready", zap.String("session", h.quiz.SessionID()))

	select {}
}

func (h *host) on(el js.Value, event string, fn func(el js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(el)
		return nil
	})
	h.funcs = append(h.funcs, f)
	el.Call("addEventListener", event, f)
}

func (h *host) bind() {
	each(h.root, "[data-item] [data-field]", func(input js.Value) {
		item := input.Call("closest", "[data-item]").Get("dataset").Get("item").String()
		field := input.Get("dataset").Get("field").String()
		if input.Get("type").String() == "radio" {
			h.on(input, "change", func(el js.Value) {
				if el.Get("checked").Bool() {
					h.quiz.Input(item, field, el.Get("value").String())
				}
			})
			return
		}
		h.on(input, "input", func(el js.Value) {
			h.quiz.Input(item, field, el.Get("value").String())
		})
	})

	each(h.root, "[data-round]", func(btn js.Value) {
		h.on(btn, "click", func(el js.Value) {
			h.quiz.SelectRound(el.Get("dataset").Get("round").String())
			h.render()
		})
	})

	h.action("grade", func() {
		h.quiz.Grade()
		h.render()
	})
	h.action("export", func() {
		_, _ = h.quiz.Export()
	})
	h.action("reset", func() {
		h.quiz.Reset()
		each(h.root, "[data-field]", func(input js.Value) {
			if input.Get("type").String() == "radio" {
				input.Set("checked", false)
				return
			}
			input.Set("value", "")
		})
		h.render()
	})
}

func (h *host) action(name string, fn func()) {
	btn := h.root.Call("querySelector", `[data-action="`+name+`"]`)
	if btn.IsNull() {
		return
	}
	h.on(btn, "click", func(js.Value) { fn() })
}

// render pushes round selection and statistics into the page.
func (h *host) render() {
	current := h.quiz.Round()
	each(h.root, "[data-round]", func(btn js.Value) {
		btn.Get("classList").Call("toggle", "active", btn.Get("dataset").Get("round").String() == current)
	})
	for k, v := range h.quiz.Stats() {
		el := h.root.Call("querySelector", `[data-stat="`+k+`"]`)
		if !el.IsNull() {
			el.Set("textContent", v)
		}
	}
}

func each(root js.Value, selector string, fn func(js.Value)) {
	list := root.Call("querySelectorAll", selector)
	for i := 0; i < list.Length(); i++ {
		fn(list.Index(i))
	}
}
