package particlebox

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/chartlab/internal/plot"
	"github.com/louisbranch/chartlab/internal/quantum/particlebox"
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
	panelID   = "particle-box-panel"
	errorSlot = "particle-box-error"
	logID     = "particle-box-log"

	actionReplot = "replot"
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
	body := webtemplates.Demo("particle-box", webtemplates.T(loc, "pbox.heading"), panel, webtemplates.Doc(
		webtemplates.T(loc, "pbox.doc.heading"),
		webtemplates.T(loc, "pbox.doc.p1"),
		webtemplates.T(loc, "pbox.doc.p2"),
		webtemplates.T(loc, "pbox.doc.p3"),
	))
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.particle_box"),
		Active: "particle-box",
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
	return observability.Traced(r, "particlebox.render", func(r *http.Request, span trace.Span) (templ.Component, error) {
		params, err := parseParams(r.URL.Query(), h.deps.NewSeed)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.Int("level", params.Level), attribute.Int("points", params.Points))
		loc, _ := pagerender.Localizer(r)
		return renderPanel(loc, params)
	})
}

// parseParams reads the control state. A plus/minus action moves the level;
// a missing seed or a replot draws a new seed.
func parseParams(values url.Values, newSeed module.NewSeed) (particlebox.Params, error) {
	level, err := query.Int(values, "p", particlebox.MinLevel)
	if err != nil {
		return particlebox.Params{}, err
	}
	points, err := query.Int(values, "npts", particlebox.DefaultPoints)
	if err != nil {
		return particlebox.Params{}, err
	}
	action := values.Get("action")
	if step := particlebox.Step(action); step == particlebox.StepPlus || step == particlebox.StepMinus {
		level = particlebox.Stepper(level, step)
	}
	params := particlebox.Params{
		Level:        level,
		Points:       points,
		Wavefunction: query.Bool(values, "wf", false),
	}
	if err := params.Validate(); err != nil {
		return particlebox.Params{}, err
	}
	seed, ok := random.ParseSeed(values.Get("seed"))
	if !ok || action == actionReplot {
		if newSeed == nil {
			newSeed = random.NewSeed
		}
		if seed, err = newSeed(); err != nil {
			return particlebox.Params{}, err
		}
	}
	params.Seed = seed
	return params, nil
}

func renderPanel(loc webtemplates.Localizer, params particlebox.Params) (templ.Component, error) {
	rng := random.New(params.Seed)
	density, samples := plot.ParticleBox(plot.ParticleBoxInput{
		Level:        params.Level,
		Length:       particlebox.Length,
		Sigma:        particlebox.Jitter,
		Curve:        particlebox.Density(params.Level, particlebox.Length, particlebox.CurvePoints),
		Samples:      particlebox.Draw(rng, params.Points, params.Level, particlebox.Length, particlebox.Jitter),
		Nodes:        particlebox.Nodes(params.Level, particlebox.Length),
		Wavefunction: params.Wavefunction,
	}, webtemplates.Translate(loc))
	densitySVG, err := density.SVG()
	if err != nil {
		return nil, err
	}
	samplesSVG, err := samples.SVG()
	if err != nil {
		return nil, err
	}
	form := webtemplates.Form{
		ID:     "particle-box-form",
		Action: routepath.ParticleBoxFigure,
		Target: "#" + panelID,
		Data:   map[string]string{"stream": routepath.ParticleBoxStream},
	}.Render(
		webtemplates.Stepper("p", webtemplates.T(loc, "pbox.select_p"), params.Level, string(particlebox.StepMinus), string(particlebox.StepPlus)),
		webtemplates.Hidden("seed", strconv.FormatInt(params.Seed, 10)),
		webtemplates.NumberInput("npts", webtemplates.T(loc, "control.points"), params.Points, particlebox.MinPoints, particlebox.MaxPoints),
		webtemplates.Toggle("wf", webtemplates.T(loc, "control.wavefunction"), params.Wavefunction, loc),
		webtemplates.Button("action", actionReplot, webtemplates.T(loc, "control.replot")),
		webtemplates.StreamButton(webtemplates.T(loc, "pbox.stream"), logID),
	)
	nodes := max(params.Level-1, 0)
	return webtemplates.Panel{ID: panelID, ErrorSlot: errorSlot}.Render(
		form,
		webtemplates.Info("energy", webtemplates.T(loc, "pbox.energy", params.Level, particlebox.ElectronEnergy(params.Level, particlebox.Length))),
		webtemplates.Info("nodes", webtemplates.T(loc, "pbox.nodes", nodes)),
		webtemplates.Figure("density", densitySVG),
		webtemplates.Figure("samples", samplesSVG),
		webtemplates.StreamLog(logID, webtemplates.T(loc, "pbox.stream.status")),
	), nil
}
