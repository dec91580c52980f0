// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
	platformi18n "github.com/louisbranch/chartlab/internal/platform/i18n"
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/platform/httpx"
	"github.com/louisbranch/chartlab/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/chartlab/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/chartlab/internal/services/web/templates"
	"golang.org/x/text/language"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(tag language.Tag, err error) string {
	if err == nil {
		return ""
	}
	key := apperrors.LocalizationKey(err)
	if _, ok := platformi18n.Lookup(tag, key); ok {
		if localized := strings.TrimSpace(platformi18n.Format(tag, key, apperrors.Metadata(err))); localized != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes the localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := pagerender.Localizer(r)
	err := pagerender.WriteModulePage(w, r, deps, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Body:       webtemplates.AppErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError answers a fragment request that failed. Validation errors
// (4xx) render a localized notice; HTMX requests retarget it to errorSlot so
// the current chart and controls stay in place. Other failures render the
// error page.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, errorSlot string, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		logFailure(r, statusCode, err)
		WriteAppError(w, r, statusCode, deps)
		return
	}
	tag := i18nhttp.TagFromRequest(r)
	if httpx.IsHTMXRequest(r) && errorSlot != "" {
		w.Header().Set("HX-Retarget", "#"+errorSlot)
		w.Header().Set("HX-Reswap", "innerHTML")
	}
	writeErr := pagerender.WriteFragment(w, r, statusCode, webtemplates.ErrorNotice(PublicMessage(tag, err)))
	if writeErr != nil {
		http.Error(w, PublicMessage(tag, err), statusCode)
	}
}

// NotFound renders the 404 page for unmatched routes.
func NotFound(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound, deps)
	})
}

func logFailure(r *http.Request, statusCode int, err error) {
	path := "-"
	requestID := "-"
	if r != nil {
		path = r.URL.Path
		if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
			requestID = rid
		}
	}
	log.Printf("web request failed path=%s status=%d request_id=%s err=%v", path, statusCode, requestID, err)
}
