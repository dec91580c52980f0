package nbamatrix

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
	panelID   = "nba-matrix-panel"
	errorSlot = "nba-matrix-error"

	// gridWidth is the pixel budget shared by the panels of one row.
	gridWidth    = 720
	minpanelSize = 120
	// submittedParam marks a form submission, so an empty selection is an
	// error rather than a request for the defaults.
	submittedParam = "submitted"
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
	body := webtemplates.Demo("nba-matrix", webtemplates.T(loc, "nba.heading"), webtemplates.Group(
		webtemplates.Info("dataset", webtemplates.T(loc, "nba.source", h.deps.Dataset.Len(), h.deps.Dataset.Source())),
		panel,
	), webtemplates.Paragraphs(webtemplates.T(loc, "nba.matrix.doc")))
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.nba_matrix"),
		Active: "nba-matrix",
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
	return observability.Traced(r, "nbamatrix.render", func(r *http.Request, span trace.Span) (templ.Component, error) {
		dims := parseDimensions(r.URL.Query())
		span.SetAttributes(attribute.StringSlice("dimensions", dims))
		return h.build(r, dims)
	})
}

func (h handlers) build(r *http.Request, dims []string) (templ.Component, error) {
	if h.deps.Dataset == nil {
		return nil, apperrors.New(apperrors.CodeDatasetUnavailable, "nba dataset not loaded")
	}
	m, err := h.deps.Dataset.Matrix(dims)
	if err != nil {
		return nil, err
	}
	loc, _ := pagerender.Localizer(r)
	return renderPanel(loc, m)
}

// parseDimensions returns the checked dimensions, or the defaults on a
// first visit.
func parseDimensions(values url.Values) []string {
	dims := query.Strings(values, "dim")
	if len(dims) == 0 && values.Get(submittedParam) == "" {
		return append([]string(nil), nba.DefaultMatrixDimensions...)
	}
	return dims
}

// panelSize splits the grid width between k panels.
func panelSize(k int) int {
	if k < 1 {
		k = 1
	}
	return max(gridWidth/k, minpanelSize)
}

func renderPanel(loc webtemplates.Localizer, m nba.Matrix) (templ.Component, error) {
	k := len(m.Dimensions)
	var cells []templ.Component
	for _, row := range plot.Matrix(m, panelSize(k)) {
		for _, cell := range row {
			if cell.Figure == nil {
				cells = append(cells, webtemplates.Element("div", "diagonal", webtemplates.Text(cell.Dimension)))
				continue
			}
			svg, err := cell.Figure.SVG()
			if err != nil {
				return nil, err
			}
			cells = append(cells, webtemplates.Figure("matrix-cell", svg))
		}
	}
	form := webtemplates.Form{
		ID:     "nba-matrix-form",
		Action: routepath.NBAMatrixFigure,
		Target: "#" + panelID,
	}.Render(
		webtemplates.Hidden(submittedParam, "1"),
		webtemplates.Checkboxes("dim", webtemplates.T(loc, "nba.dimensions"), webtemplates.Options(nba.NumericColumns(), m.Dimensions...)),
	)
	return webtemplates.Panel{ID: panelID, ErrorSlot: errorSlot}.Render(
		form,
		webtemplates.Grid("matrix", k, cells...),
	), nil
}
