package nbascatter

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/chartlab/internal/nba"
	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
	"github.com/louisbranch/chartlab/internal/plot"
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/platform/observability"
	"github.com/louisbranch/chartlab/internal/services/web/platform/pagerender"
	"github.com/louisbranch/chartlab/internal/services/web/platform/query"
	"github.com/louisbranch/chartlab/internal/services/web/platform/weberror"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/chartlab/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	panelID   = "nba-scatter-panel"
	errorSlot = "nba-scatter-error"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := pagerender.Localizer(r)
	panel, err := h.render(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err, errorSlot, h.deps)
		return
	}
	body := webtemplates.Demo("nba-scatter", webtemplates.T(loc, "nba.heading"), webtemplates.Group(
		webtemplates.Info("dataset", webtemplates.T(loc, "nba.source", h.deps.Dataset.Len(), h.deps.Dataset.Source())),
		panel,
	), webtemplates.Paragraphs(webtemplates.T(loc, "nba.scatter.doc")))
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.nba_scatter"),
		Active: "nba-scatter",
		Body:   body,
	}); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func (h handlers) handleFigure(w http.ResponseWriter, r *http.Request) {
	panel, err := h.render(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err, errorSlot, h.deps)
		return
	}
	if err := pagerender.WriteFragment(w, r, http.StatusOK, panel); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func (h handlers) render(r *http.Request) (templ.Component, error) {
	return observability.Traced(r, "nbascatter.render", h.build)
}

func (h handlers) build(r *http.Request, span trace.Span) (templ.Component, error) {
	if h.deps.Dataset == nil {
		return nil, apperrors.New(apperrors.CodeDatasetUnavailable, "nba dataset not loaded")
	}
	x, y := parseAxes(r.URL.Query())
	span.SetAttributes(attribute.String("x", x), attribute.String("y", y))
	scatter, err := h.deps.Dataset.Scatter(x, y)
	if err != nil {
		return nil, err
	}
	loc, _ := pagerender.Localizer(r)
	return renderPanel(loc, scatter)
}

func parseAxes(values url.Values) (string, string) {
	return query.String(values, "x", nba.DefaultScatterX), query.String(values, "y", nba.DefaultScatterY)
}

func renderPanel(loc webtemplates.Localizer, s nba.Scatter) (templ.Component, error) {
	figs := plot.Scatter(s)
	mainSVG, err := figs.Main.SVG()
	if err != nil {
		return nil, err
	}
	topSVG, err := figs.Top.SVG()
	if err != nil {
		return nil, err
	}
	rightSVG, err := figs.Right.SVG()
	if err != nil {
		return nil, err
	}
	columns := nba.NumericColumns()
	form := webtemplates.Form{
		ID:     "nba-scatter-form",
		Action: routepath.NBAScatterFigure,
		Target: "#" + panelID,
	}.Render(
		webtemplates.Select("x", webtemplates.T(loc, "nba.x"), webtemplates.Options(columns, s.X)),
		webtemplates.Select("y", webtemplates.T(loc, "nba.y"), webtemplates.Options(columns, s.Y)),
	)
	return webtemplates.Panel{ID: panelID, ErrorSlot: errorSlot}.Render(
		form,
		webtemplates.Element("div", "scatter-grid",
			webtemplates.Figure("marginal-x", topSVG),
			webtemplates.Element("div", "", templ.NopComponent),
			webtemplates.Figure("scatter", mainSVG),
			webtemplates.Figure("marginal-y", rightSVG),
		),
	), nil
}
