package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

// Demo is the shell of a demo page: heading, live panel and theory text.
func Demo(id, heading string, panel templ.Component, doc templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="demo"`)
		h.attr("id", id)
		h.raw("><h2>")
		h.text(heading)
		h.raw("</h2>")
		h.render(ctx, panel)
		if doc != nil {
			h.raw(`<article class="doc">`)
			h.render(ctx, doc)
			h.raw("</article>")
		}
		h.raw("</section>")
	})
}

// Doc renders a theory block.
func Doc(heading string, paragraphs ...string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<h3>")
		h.text(heading)
		h.raw("</h3>")
		h.render(ctx, Paragraphs(paragraphs...))
	})
}

// Panel is the swappable fragment of a demo. ErrorSlot is the id of the
// element that receives validation errors without replacing the panel.
type Panel struct {
	ID        string
	ErrorSlot string
}

// Render wraps the children in the panel element, error slot first.
func (p Panel) Render(children ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="panel"`)
		h.attr("id", p.ID)
		h.raw(">")
		if p.ErrorSlot != "" {
			h.raw(`<div class="error-slot" role="alert"`)
			h.attr("id", p.ErrorSlot)
			h.raw("></div>")
		}
		for _, c := range children {
			h.render(ctx, c)
		}
		h.raw("</div>")
	})
}

// Figure embeds a server-rendered SVG chart.
func Figure(class, svg string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<figure")
		h.attr("class", "chart "+class)
		h.raw(">", svg, "</figure>")
	})
}

// Info renders a short status line.
func Info(class, text string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<p")
		h.attr("class", "info "+class)
		h.raw(">")
		h.text(text)
		h.raw("</p>")
	})
}

// Notice renders a localized warning that is part of a normal response.
func Notice(text string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if text == "" {
			return
		}
		h.raw(`<p class="notice" role="status">`)
		h.text(text)
		h.raw("</p>")
	})
}

// ErrorNotice renders a validation error for an error slot.
func ErrorNotice(text string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<p class="error" role="alert">`)
		h.text(text)
		h.raw("</p>")
	})
}

// StreamLog is the status line updated by a websocket run. template holds
// {accepted}, {target} and {tries} placeholders.
func StreamLog(id, template string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<p class="stream-log" aria-live="polite"`)
		h.attr("id", id)
		h.attr("data-template", template)
		h.raw("></p>")
	})
}

// Link renders an anchor.
func Link(href, text string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<a")
		h.attr("href", href)
		h.raw(">")
		h.text(text)
		h.raw("</a>")
	})
}

// Grid lays cells out row by row in a fixed number of columns.
func Grid(class string, columns int, cells ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<div")
		h.attr("class", "grid "+class)
		h.attr("style", "grid-template-columns: repeat("+strconv.Itoa(max(columns, 1))+", auto)")
		h.raw(">")
		for _, c := range cells {
			h.render(ctx, c)
		}
		h.raw("</div>")
	})
}

// Table renders a header row and text cells. Empty cells stay blank.
func Table(class string, headers []string, rows [][]string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<table")
		h.attr("class", class)
		h.raw("><thead><tr>")
		for _, header := range headers {
			h.raw(`<th scope="col">`)
			h.text(header)
			h.raw("</th>")
		}
		h.raw("</tr></thead><tbody>")
		for _, row := range rows {
			h.raw("<tr>")
			for i, cell := range row {
				if i == 0 {
					h.raw(`<th scope="row">`)
					h.text(cell)
					h.raw("</th>")
					continue
				}
				h.raw("<td>")
				h.text(cell)
				h.raw("</td>")
			}
			h.raw("</tr>")
		}
		h.raw("</tbody></table>")
	})
}
