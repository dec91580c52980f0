// Package pagerender centralizes module page and fragment rendering.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/platform/httpx"
	"github.com/louisbranch/chartlab/internal/services/web/platform/i18nhttp"
	webtemplates "github.com/louisbranch/chartlab/internal/services/web/templates"
	"golang.org/x/text/message"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	// Title is the already localized page title.
	Title      string
	Active     string
	StatusCode int
	Body       templ.Component
}

// Localizer returns the printer and language tag for the request.
func Localizer(r *http.Request) (*message.Printer, string) {
	tag := i18nhttp.TagFromRequest(r)
	return i18nhttp.Printer(tag), tag.String()
}

// PageContext builds the layout context shared by pages and error pages.
func PageContext(r *http.Request, deps module.Dependencies, title, active string) webtemplates.PageContext {
	loc, lang := Localizer(r)
	page := webtemplates.PageContext{
		Lang:      lang,
		Loc:       loc,
		Title:     title,
		AppTitle:  deps.Title,
		GitHubURL: deps.GitHubURL,
		Active:    active,
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// WriteModulePage writes the full layout, or only the main content when the
// request comes from HTMX.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	pageCtx := PageContext(r, deps, page.Title, page.Active)
	shell := webtemplates.Layout(pageCtx)
	if httpx.IsHTMXRequest(r) {
		shell = webtemplates.MainContent(pageCtx)
	}
	var buf bytes.Buffer
	if err := shell.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment writes a bare component, used for chart and table swaps.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = templ.NopComponent
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
