// Package templates renders the chartlab HTML shell, controls and fragments
// as templ components.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components read linearly.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

// Group renders components one after another.
func Group(components ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, c := range components {
			h.render(ctx, c)
		}
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.text(s)
	})
}

// Element wraps children in a tag with a class.
func Element(tag, class string, children ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<", tag)
		if class != "" {
			h.attr("class", class)
		}
		h.raw(">")
		for _, c := range children {
			h.render(ctx, c)
		}
		h.raw("</", tag, ">")
	})
}

// Paragraphs renders each text as its own <p>.
func Paragraphs(texts ...string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		for _, text := range texts {
			if strings.TrimSpace(text) == "" {
				continue
			}
			h.raw("<p>")
			h.text(text)
			h.raw("</p>")
		}
	})
}
