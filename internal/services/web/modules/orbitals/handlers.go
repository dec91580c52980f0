package orbitals

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/chartlab/internal/plot"
	"github.com/louisbranch/chartlab/internal/quantum/orbital"
	"github.com/louisbranch/chartlab/internal/random"
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
	panelID   = "orbitals-panel"
	errorSlot = "orbitals-error"

	defaultOrbital = "1s"
	actionReplot   = "replot"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

type params struct {
	Orbital orbital.Orbital
	Points  int
	Sign    bool
	Nodal   bool
	Seed    int64
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := pagerender.Localizer(r)
	panel, err := h.render(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err, errorSlot, h.deps)
		return
	}
	body := webtemplates.Demo("orbitals", webtemplates.T(loc, "orbitals.heading"), panel, webtemplates.Doc(
		webtemplates.T(loc, "orbitals.doc.heading"),
		webtemplates.T(loc, "orbitals.doc.p1"),
		webtemplates.T(loc, "orbitals.doc.p2"),
	))
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.orbitals"),
		Active: "orbitals",
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
	return observability.Traced(r, "orbitals.render", func(r *http.Request, span trace.Span) (templ.Component, error) {
		p, err := parseParams(r.URL.Query(), h.deps.NewSeed)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.String("orbital", p.Orbital.Name), attribute.Int("points", p.Points))
		loc, _ := pagerender.Localizer(r)
		return renderPanel(loc, p)
	})
}

func parseParams(values url.Values, newSeed module.NewSeed) (params, error) {
	o, err := orbital.ByName(query.String(values, "ao", defaultOrbital))
	if err != nil {
		return params{}, err
	}
	points, err := query.Int(values, "npts", orbital.DefaultPoints)
	if err != nil {
		return params{}, err
	}
	if err := orbital.ValidatePoints(points); err != nil {
		return params{}, err
	}
	p := params{
		Orbital: o,
		Points:  points,
		Sign:    query.Bool(values, "sign", false),
		Nodal:   query.Bool(values, "nodal", true),
	}
	seed, ok := random.ParseSeed(values.Get("seed"))
	if !ok || values.Get("action") == actionReplot {
		if newSeed == nil {
			newSeed = random.NewSeed
		}
		if seed, err = newSeed(); err != nil {
			return params{}, err
		}
	}
	p.Seed = seed
	return p, nil
}

func renderPanel(loc webtemplates.Localizer, p params) (templ.Component, error) {
	fig := plot.Orbital(plot.OrbitalInput{
		Orbital: p.Orbital,
		Points:  orbital.Sample(random.New(p.Seed), p.Orbital, p.Points),
		Sign:    p.Sign,
		Nodal:   p.Nodal,
	}, webtemplates.Translate(loc))
	svg, err := fig.SVG()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, o := range orbital.All() {
		names = append(names, o.Name)
	}
	form := webtemplates.Form{
		ID:     "orbitals-form",
		Action: routepath.OrbitalsFigure,
		Target: "#" + panelID,
	}.Render(
		webtemplates.Select("ao", webtemplates.T(loc, "orbitals.select"), webtemplates.Options(names, p.Orbital.Name)),
		webtemplates.NumberInput("npts", webtemplates.T(loc, "control.points"), p.Points, orbital.MinPoints, orbital.MaxPoints),
		webtemplates.Toggle("sign", webtemplates.T(loc, "orbitals.sign"), p.Sign, loc),
		webtemplates.Toggle("nodal", webtemplates.T(loc, "orbitals.nodal"), p.Nodal, loc),
		webtemplates.Hidden("seed", strconv.FormatInt(p.Seed, 10)),
		webtemplates.Button("action", actionReplot, webtemplates.T(loc, "control.replot")),
	)
	return webtemplates.Panel{ID: panelID, ErrorSlot: errorSlot}.Render(
		form,
		webtemplates.Figure("orbital", svg),
	), nil
}
