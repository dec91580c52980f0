package angular

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/chartlab/internal/plot"
	"github.com/louisbranch/chartlab/internal/quantum/angular"
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
	panelID   = "angular-panel"
	errorSlot = "angular-error"

	defaultHarmonic = "ns"
	// stepDegrees is the angular resolution of the polar curve.
	stepDegrees = 1
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
	body := webtemplates.Demo("angular", webtemplates.T(loc, "angular.heading"), panel, webtemplates.Doc(
		webtemplates.T(loc, "angular.doc.heading"),
		webtemplates.T(loc, "angular.doc.p1"),
		webtemplates.T(loc, "angular.doc.p2"),
	))
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.angular"),
		Active: "angular",
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
	return observability.Traced(r, "angular.render", func(r *http.Request, span trace.Span) (templ.Component, error) {
		harmonic, density, err := parseParams(r.URL.Query())
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.String("harmonic", harmonic.Name), attribute.Bool("density", density))
		loc, _ := pagerender.Localizer(r)
		return renderPanel(loc, harmonic, density)
	})
}

func parseParams(values url.Values) (angular.Harmonic, bool, error) {
	harmonic, err := angular.ByName(query.String(values, "ao", defaultHarmonic))
	if err != nil {
		return angular.Harmonic{}, false, err
	}
	return harmonic, query.Bool(values, "density", false), nil
}

func renderPanel(loc webtemplates.Localizer, h angular.Harmonic, density bool) (templ.Component, error) {
	fig := plot.Angular(h, angular.Curve(h, stepDegrees, density), !density, webtemplates.Translate(loc))
	svg, err := fig.SVG()
	if err != nil {
		return nil, err
	}
	var options []webtemplates.Option
	for _, candidate := range angular.All() {
		options = append(options, webtemplates.Option{Value: candidate.Name, Label: candidate.Label, Selected: candidate.Name == h.Name})
	}
	form := webtemplates.Form{
		ID:     "angular-form",
		Action: routepath.AngularFigure,
		Target: "#" + panelID,
	}.Render(
		webtemplates.Select("ao", webtemplates.T(loc, "angular.select"), options),
		webtemplates.Toggle("density", webtemplates.T(loc, "angular.density"), density, loc),
	)
	describe := webtemplates.T(loc, "angular.describe", h.Label, h.Symbol, h.L, h.MLText(), len(h.NodalAngles))
	return webtemplates.Panel{ID: panelID, ErrorSlot: errorSlot}.Render(
		form,
		webtemplates.Info("describe", describe),
		webtemplates.Figure("angular", svg),
	), nil
}
