package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/chartlab/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// HTMXScript is the pinned htmx build loaded by every page.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	Title        string
	AppTitle     string
	GitHubURL    string
	Active       string
	CurrentPath  string
	CurrentQuery string
}

// NavItem is one tab of the navigation bar.
type NavItem struct {
	ID   string
	Key  string
	Path string
}

// NavSection groups tabs under a heading.
type NavSection struct {
	Key   string
	Items []NavItem
}

// Navigation returns the tab layout shared by every page.
func Navigation() []NavSection {
	return []NavSection{
		{Key: "nav.section.quantum", Items: []NavItem{
			{ID: "particle-box", Key: "nav.particle_box", Path: routepath.ParticleBoxPrefix},
			{ID: "radial", Key: "nav.radial", Path: routepath.RadialPrefix},
			{ID: "angular", Key: "nav.angular", Path: routepath.AngularPrefix},
			{ID: "orbitals", Key: "nav.orbitals", Path: routepath.OrbitalsPrefix},
		}},
		{Key: "nav.section.nba", Items: []NavItem{
			{ID: "nba-scatter", Key: "nav.nba_scatter", Path: routepath.NBAScatterPrefix},
			{ID: "nba-matrix", Key: "nav.nba_matrix", Path: routepath.NBAMatrixPrefix},
			{ID: "nba-pivot", Key: "nav.nba_pivot", Path: routepath.NBAPivotPrefix},
		}},
	}
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []i18nhttp.LanguageOption {
	return i18nhttp.BuildLanguageOptions(i18nhttp.Supported(), page.Lang, page.CurrentPath, page.CurrentQuery, func(tag language.Tag) string {
		return T(page.Loc, i18nhttp.LanguageKeyLabel(tag))
	})
}

func appTitle(page PageContext) string {
	if page.AppTitle != "" {
		return page.AppTitle
	}
	return T(page.Loc, "app.title")
}

// Layout renders the full document around the children in context.
func Layout(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		title := appTitle(page)
		documentTitle := title
		if page.Title != "" {
			documentTitle = page.Title + " | " + title
		}
		lang := page.Lang
		if lang == "" {
			lang = i18nhttp.Default().String()
		}
		h.raw("<!doctype html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(documentTitle)
		h.raw(`</title><link rel="stylesheet" href="`, routepath.StaticPrefix, `app.css"><script src="`, HTMXScript, `" defer></script><script src="`, routepath.StaticPrefix, `app.js" defer></script></head><body>`)
		h.render(ctx, header(page, title))
		h.render(ctx, tabs(page))
		h.raw(`<main id="main">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw(`</main><footer class="site-footer"><p>`)
		h.text(T(page.Loc, "footer.credits"))
		h.raw("</p></footer></body></html>")
	})
}

func header(page PageContext, title string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<header class="site-header"><h1><a href="`, routepath.Root, `">`)
		h.text(title)
		h.raw(`</a></h1><nav class="languages"`)
		h.attr("aria-label", T(page.Loc, "nav.language"))
		h.raw(">")
		for _, option := range LanguageOptions(page) {
			h.raw("<a")
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.raw(` aria-current="true"`)
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a>")
		}
		h.raw("</nav>")
		if page.GitHubURL != "" {
			h.raw(`<a class="github"`)
			h.attr("href", page.GitHubURL)
			h.raw(` rel="noopener">`)
			h.text(T(page.Loc, "header.github"))
			h.raw("</a>")
		}
		h.raw("</header>")
	})
}

func tabs(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<nav class="tabs">`)
		for _, section := range Navigation() {
			h.raw(`<div class="tab-section"><span class="tab-heading">`)
			h.text(T(page.Loc, section.Key))
			h.raw("</span><ul>")
			for _, item := range section.Items {
				h.raw("<li><a")
				h.attr("href", item.Path)
				if item.ID == page.Active {
					h.raw(` aria-current="page"`)
				}
				h.raw(">")
				h.text(T(page.Loc, item.Key))
				h.raw("</a></li>")
			}
			h.raw("</ul></div>")
		}
		h.raw("</nav>")
	})
}

// MainContent renders the children with an HTMX title swap, for requests
// that replace #main in place.
func MainContent(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		title := appTitle(page)
		if page.Title != "" {
			title = page.Title + " | " + title
		}
		h.raw("<title>")
		h.text(title)
		h.raw("</title>")
		h.render(ctx, templ.GetChildren(ctx))
	})
}
