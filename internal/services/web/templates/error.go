package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
)

const (
	appErrorTitleNotFoundKey    = "error.title_not_found"
	appErrorTitleServerErrKey   = "error.title_server_error"
	appErrorMessageNotFoundKey  = "error.message_not_found"
	appErrorMessageServerErrKey = "error.message_server_error"
	appErrorBackKey             = "error.back"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorTitleNotFoundKey)
	}
	return T(loc, appErrorTitleServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the body of the 404 and 5xx pages.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="app-error" data-status="`, http.StatusText(normalizeAppErrorStatus(statusCode)), `"><h2>`)
		h.text(AppErrorPageTitle(statusCode, loc))
		h.raw("</h2><p>")
		h.text(appErrorMessage(statusCode, loc))
		h.raw(`</p><a href="`, routepath.Root, `">`)
		h.text(T(loc, appErrorBackKey))
		h.raw("</a></section>")
	})
}
