package home

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/platform/pagerender"
	"github.com/louisbranch/chartlab/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/chartlab/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := pagerender.Localizer(r)
	err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.home"),
		Active: "home",
		Body:   homeBody(loc, h.deps),
	})
	if err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func homeBody(loc webtemplates.Localizer, deps module.Dependencies) templ.Component {
	var sections []templ.Component
	for _, section := range webtemplates.Navigation() {
		var items []templ.Component
		for _, item := range section.Items {
			items = append(items, webtemplates.Element("li", "", webtemplates.Link(item.Path, webtemplates.T(loc, item.Key))))
		}
		sections = append(sections,
			webtemplates.Element("h3", "", webtemplates.Text(webtemplates.T(loc, section.Key))),
			webtemplates.Element("ul", "cards", items...),
		)
	}
	var source templ.Component = templ.NopComponent
	if deps.Dataset != nil {
		source = webtemplates.Info("dataset", webtemplates.T(loc, "nba.source", deps.Dataset.Len(), deps.Dataset.Source()))
	}
	return webtemplates.Element("section", "home",
		webtemplates.Element("h2", "", webtemplates.Text(webtemplates.T(loc, "home.heading"))),
		webtemplates.Element("p", "", webtemplates.Text(webtemplates.T(loc, "home.intro"))),
		webtemplates.Group(sections...),
		source,
	)
}

