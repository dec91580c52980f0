package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantTag     language.Tag
		wantPersist bool
	}{
		{name: "query param", target: "/?lang=fr", wantTag: language.French, wantPersist: true},
		{name: "regional query param", target: "/?lang=fr-CA", wantTag: language.French, wantPersist: true},
		{name: "cookie", target: "/", cookie: "fr", wantTag: language.French},
		{name: "accept language", target: "/", accept: "fr-FR,fr;q=0.9,en;q=0.5", wantTag: language.French},
		{name: "unsupported falls back", target: "/?lang=pt-BR", accept: "de", wantTag: language.English},
		{name: "default", target: "/", wantTag: language.English},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "http://example.com"+tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.wantTag {
				t.Fatalf("tag = %v, want %v", tag, tc.wantTag)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestMiddlewareStoresTagAndPersistsCookie(t *testing.T) {
	t.Parallel()

	var got language.Tag
	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = TagFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/radial/?lang=fr", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got != language.French {
		t.Fatalf("TagFromContext() = %v, want %v", got, language.French)
	}
	cookie := rr.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, LangCookieName+"=fr") {
		t.Fatalf("Set-Cookie = %q, want %s=fr", cookie, LangCookieName)
	}
}

func TestTagFromContextDefaults(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := TagFromContext(req.Context()); got != language.English {
		t.Fatalf("TagFromContext() = %v, want %v", got, language.English)
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(
		[]language.Tag{language.English, language.French},
		"fr",
		"/nba/pivot/",
		"value=PTS",
		func(tag language.Tag) string { return tag.String() + "-label" },
	)
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if !options[1].Active {
		t.Fatalf("options[1].Active = false, want true")
	}
	if options[0].URL != "/nba/pivot/?lang=en&value=PTS" {
		t.Fatalf("options[0].URL = %q, want %q", options[0].URL, "/nba/pivot/?lang=en&value=PTS")
	}
	if options[1].Label != "fr-label" {
		t.Fatalf("options[1].Label = %q, want %q", options[1].Label, "fr-label")
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/orbitals/", "npts=250", "fr")
	if got != "/orbitals/?lang=fr&npts=250" {
		t.Fatalf("LanguageURL = %q, want %q", got, "/orbitals/?lang=fr&npts=250")
	}
	if got := LanguageURL("", "", "en"); got != "/?lang=en" {
		t.Fatalf("LanguageURL(empty) = %q, want %q", got, "/?lang=en")
	}
}

func TestLanguageKeyLabel(t *testing.T) {
	t.Parallel()

	if got := LanguageKeyLabel(language.French); got != "lang.fr" {
		t.Fatalf("LanguageKeyLabel(fr) = %q, want %q", got, "lang.fr")
	}
	if got := LanguageKeyLabel(language.English); got != "lang.en" {
		t.Fatalf("LanguageKeyLabel(en) = %q, want %q", got, "lang.en")
	}
}
