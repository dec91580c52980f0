package radial

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	platformi18n "github.com/louisbranch/chartlab/internal/platform/i18n"
	"github.com/louisbranch/chartlab/internal/plot"
	"github.com/louisbranch/chartlab/internal/quantum/radial"
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/chartlab/internal/services/web/platform/observability"
	"github.com/louisbranch/chartlab/internal/services/web/platform/pagerender"
	"github.com/louisbranch/chartlab/internal/services/web/platform/query"
	"github.com/louisbranch/chartlab/internal/services/web/platform/weberror"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/chartlab/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
)

const (
	panelID   = "radial-panel"
	errorSlot = "radial-error"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// state is the parsed control state of one request.
type state struct {
	Orbital      radial.Orbital
	Wavefunction bool
	// R1 and R2 keep the raw inputs so the form echoes what was typed.
	R1, R2      string
	Integration *radial.Integration
	Notice      *radial.Notice
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := pagerender.Localizer(r)
	panel, err := h.render(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err, errorSlot, h.deps)
		return
	}
	body := webtemplates.Demo("radial", webtemplates.T(loc, "radial.heading"), panel, webtemplates.Doc(
		webtemplates.T(loc, "radial.doc.heading"),
		webtemplates.T(loc, "radial.doc.p1"),
		webtemplates.T(loc, "radial.doc.p2"),
		webtemplates.T(loc, "radial.doc.p3"),
	))
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.radial"),
		Active: "radial",
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
	return observability.Traced(r, "radial.render", func(r *http.Request, span trace.Span) (templ.Component, error) {
		st, err := parseState(r.URL.Query())
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.Int("n", st.Orbital.N), attribute.Int("l", st.Orbital.L))
		loc, _ := pagerender.Localizer(r)
		return renderPanel(loc, i18nhttp.TagFromRequest(r), st)
	})
}

// parseState applies the quantum number action, then integrates D(r) when
// both bounds are filled in.
func parseState(values url.Values) (state, error) {
	n, err := query.Int(values, "n", radial.MinN)
	if err != nil {
		return state{}, err
	}
	l, err := query.Int(values, "l", 0)
	if err != nil {
		return state{}, err
	}
	o := radial.Orbital{N: n, L: l}
	if err := o.Validate(); err != nil {
		return state{}, err
	}
	st := state{
		Wavefunction: query.Bool(values, "wf", true),
		R1:           strings.TrimSpace(values.Get("r1")),
		R2:           strings.TrimSpace(values.Get("r2")),
	}
	st.Orbital, st.Notice = radial.Select(o, radial.Action(values.Get("action")))
	if st.R1 == "" || st.R2 == "" {
		return st, nil
	}
	r1, err := query.Float(values, "r1", 0)
	if err != nil {
		return state{}, err
	}
	r2, err := query.Float(values, "r2", 0)
	if err != nil {
		return state{}, err
	}
	integration, err := st.Orbital.Probability(r1, r2)
	if err != nil {
		return state{}, err
	}
	st.Integration = &integration
	return st, nil
}

func renderPanel(loc webtemplates.Localizer, tag language.Tag, st state) (templ.Component, error) {
	fig := plot.Radial(plot.RadialInput{
		Orbital:      st.Orbital,
		Curves:       st.Orbital.Sample(radial.PlotMax, radial.PlotPoints),
		Integration:  st.Integration,
		Wavefunction: st.Wavefunction,
	}, webtemplates.Translate(loc))
	svg, err := fig.SVG()
	if err != nil {
		return nil, err
	}
	notice := ""
	if st.Notice != nil {
		notice = platformi18n.Format(tag, st.Notice.Key, st.Notice.Metadata)
	}
	result := webtemplates.T(loc, "radial.result.hint")
	if st.Integration != nil {
		result = webtemplates.T(loc, "radial.result.value", st.Integration.R1, st.Integration.R2, st.Integration.Probability)
	}
	form := webtemplates.Form{
		ID:     "radial-form",
		Action: routepath.RadialFigure,
		Target: "#" + panelID,
	}.Render(
		webtemplates.Element("p", "control-heading", webtemplates.Text(webtemplates.T(loc, "radial.select"))),
		webtemplates.Stepper("n", "n", st.Orbital.N, string(radial.ActionNMinus), string(radial.ActionNPlus)),
		webtemplates.Stepper("l", "l", st.Orbital.L, string(radial.ActionLMinus), string(radial.ActionLPlus)),
		webtemplates.Toggle("wf", webtemplates.T(loc, "control.wavefunction"), st.Wavefunction, loc),
		webtemplates.Element("p", "control-heading", webtemplates.Text(webtemplates.T(loc, "radial.integrate"))),
		webtemplates.DecimalInput("r1", webtemplates.T(loc, "radial.rmin"), st.R1, "0.1"),
		webtemplates.DecimalInput("r2", webtemplates.T(loc, "radial.rmax"), st.R2, "0.1"),
		webtemplates.Button("integrate", "on", webtemplates.T(loc, "radial.compute")),
	)
	return webtemplates.Panel{ID: panelID, ErrorSlot: errorSlot}.Render(
		form,
		webtemplates.Notice(notice),
		webtemplates.Figure("radial", svg),
		webtemplates.Element("div", "result",
			webtemplates.Element("h4", "", webtemplates.Text(webtemplates.T(loc, "radial.result"))),
			webtemplates.Info("probability", result),
		),
	), nil
}
