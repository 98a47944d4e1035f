//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/woophysics/lessons/internal/storage"
)

// browserSaver hands data to the browser as a download.
type browserSaver struct{}

func (browserSaver) Save(name, mime string, data []byte) (string, error) {
	if name == "" {
		return "", storage.ErrEmptyName
	}
	g := js.Global()
	buf := g.Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(buf, data)

	blob := g.Get("Blob").New([]any{buf}, map[string]any{"type": mime})
	url := g.Get("URL").Call("createObjectURL", blob)
	defer g.Get("URL").Call("revokeObjectURL", url)

	a := g.Get("document").Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	body := g.Get("document").Get("body")
	body.Call("appendChild", a)
	a.Call("click")
	body.Call("removeChild", a)
	return name, nil
}
