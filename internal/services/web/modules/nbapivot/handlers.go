package nbapivot

import (
	"math"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/chartlab/internal/nba"
	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/platform/httpx"
	"github.com/louisbranch/chartlab/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/chartlab/internal/services/web/platform/observability"
	"github.com/louisbranch/chartlab/internal/services/web/platform/pagerender"
	"github.com/louisbranch/chartlab/internal/services/web/platform/query"
	"github.com/louisbranch/chartlab/internal/services/web/platform/weberror"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/chartlab/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	panelID   = "nba-pivot-panel"
	errorSlot = "nba-pivot-error"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := pagerender.Localizer(r)
	pivot, err := h.pivot(r, "nbapivot.page")
	if err != nil {
		weberror.WriteModuleError(w, r, err, errorSlot, h.deps)
		return
	}
	body := webtemplates.Demo("nba-pivot", webtemplates.T(loc, "nba.heading"), webtemplates.Group(
		webtemplates.Info("dataset", webtemplates.T(loc, "nba.source", h.deps.Dataset.Len(), h.deps.Dataset.Source())),
		renderPanel(loc, pivot),
	), webtemplates.Paragraphs(webtemplates.T(loc, "nba.pivot.doc")))
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:  webtemplates.T(loc, "nav.nba_pivot"),
		Active: "nba-pivot",
		Body:   body,
	}); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func (h handlers) handleTable(w http.ResponseWriter, r *http.Request) {
	pivot, err := h.pivot(r, "nbapivot.table")
	if err != nil {
		weberror.WriteModuleError(w, r, err, errorSlot, h.deps)
		return
	}
	loc, _ := pagerender.Localizer(r)
	if err := pagerender.WriteFragment(w, r, http.StatusOK, renderPanel(loc, pivot)); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func (h handlers) handleTableJSON(w http.ResponseWriter, r *http.Request) {
	pivot, err := h.pivot(r, "nbapivot.json")
	if err != nil {
		tag := i18nhttp.TagFromRequest(r)
		_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), weberror.PublicMessage(tag, err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, pivot.Table())
}

func (h handlers) pivot(r *http.Request, spanName string) (nba.Pivot, error) {
	return observability.Traced(r, spanName, func(r *http.Request, span trace.Span) (nba.Pivot, error) {
		value := parseValue(r.URL.Query())
		span.SetAttributes(attribute.String("value", value))
		if h.deps.Dataset == nil {
			return nba.Pivot{}, apperrors.New(apperrors.CodeDatasetUnavailable, "nba dataset not loaded")
		}
		return h.deps.Dataset.Pivot(value)
	})
}

func parseValue(values url.Values) string {
	return query.String(values, "value", nba.DefaultPivotValue)
}

// formatCell prints a mean with nba.PivotPrecision significant digits in
// the reader's locale. Missing cells print as blank.
func formatCell(p *message.Printer, v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return p.Sprint(number.Decimal(v, number.Precision(nba.PivotPrecision)))
}

func renderPanel(loc *message.Printer, pivot nba.Pivot) templ.Component {
	headers := []string{nba.ColumnHeightBins}
	for _, pos := range pivot.Columns {
		headers = append(headers, string(pos))
	}
	rows := make([][]string, 0, len(pivot.Rows))
	for i, label := range pivot.Rows {
		row := []string{label}
		for _, v := range pivot.Cells[i] {
			row = append(row, formatCell(loc, v))
		}
		rows = append(rows, row)
	}
	download := routepath.NBAPivotTableJSON + "?" + url.Values{"value": {pivot.Value}}.Encode()
	form := webtemplates.Form{
		ID:     "nba-pivot-form",
		Action: routepath.NBAPivotTable,
		Target: "#" + panelID,
	}.Render(
		webtemplates.Select("value", webtemplates.T(loc, "nba.value"), webtemplates.Options(nba.NumericColumns(), pivot.Value)),
	)
	return webtemplates.Panel{ID: panelID, ErrorSlot: errorSlot}.Render(
		form,
		webtemplates.Table("pivot", headers, rows),
		webtemplates.Element("p", "download", webtemplates.Link(download, webtemplates.T(loc, "nba.pivot.download"))),
	)
}

