package violetpress

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticHandlerServesFiles(t *testing.T) {
	sh := NewStaticHandler(http.Dir("testdata"))

	rec := httptest.NewRecorder()
	sh.ServeHTTP(rec, httptest.NewRequest("GET", "/pages/blog/first/article.md", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("got status %d", rec.Code)
	}
}

func TestStaticHandlerRejectsDirs(t *testing.T) {
	sh := NewStaticHandler(http.Dir("testdata"))

	rec := httptest.NewRecorder()
	sh.ServeHTTP(rec, httptest.NewRequest("GET", "/pages", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d", rec.Code)
	}
}

func TestStaticHandlerCd(t *testing.T) {
	sh := NewStaticHandler(http.Dir("testdata")).Cd("pages")

	rec := httptest.NewRecorder()
	sh.ServeHTTP(rec, httptest.NewRequest("GET", "/alpha/meta.json", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("got status %d", rec.Code)
	}
}
