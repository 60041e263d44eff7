package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"armario-probador/dressup"
	"armario-probador/service"
)

func newDressupController(reader *fakeReader) *DressupController {
	return NewDressupController(reader, service.NewExportService(nil), "", 12)
}

func TestDressupPage(t *testing.T) {
	c := newDressupController(&fakeReader{items: wardrobe})

	rec := httptest.NewRecorder()
	c.Page(rec, httptest.NewRequest(http.MethodGet, "/dressup", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Page() status = %d, body %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`id="modelArea"`,
		`data-drag-threshold="12"`,
		`data-layer="top"`,
		`data-src="/dressup/items/T1/image?size=medium"`,
		`id="resetBtn"`,
		`id="screenshotBtn"`,
		`Zapatos`,
		`src="/dressup/model.png"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Page() body missing %s", want)
		}
	}
	if strings.Index(body, "S1") > strings.Index(body, "T1") {
		t.Error("Page() should list shoes before tops")
	}
}

func TestDressupPageError(t *testing.T) {
	c := newDressupController(&fakeReader{err: errors.New("db down")})
	rec := httptest.NewRecorder()
	c.Page(rec, httptest.NewRequest(http.MethodGet, "/dressup", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Page() status = %d, want 500", rec.Code)
	}
}

func TestDressupCatalog(t *testing.T) {
	c := newDressupController(&fakeReader{items: wardrobe})

	tests := []struct {
		url        string
		wantStatus int
		wantCount  int
	}{
		{"/dressup/catalog", http.StatusOK, 3},
		{"/dressup/catalog?layer=TOP", http.StatusOK, 2},
		{"/dressup/catalog?layer=zapatos", http.StatusOK, 1},
		{"/dressup/catalog?layer=hat", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c.Catalog(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
		if rec.Code != tt.wantStatus {
			t.Errorf("Catalog(%s) status = %d, want %d", tt.url, rec.Code, tt.wantStatus)
			continue
		}
		if tt.wantStatus != http.StatusOK {
			continue
		}
		var items []dressup.CatalogItem
		if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
			t.Fatalf("Catalog(%s) decode error = %v", tt.url, err)
		}
		if len(items) != tt.wantCount {
			t.Errorf("Catalog(%s) = %d items, want %d", tt.url, len(items), tt.wantCount)
		}
	}
}

func TestDressupRenderOutfit(t *testing.T) {
	c := newDressupController(&fakeReader{})

	q := url.Values{}
	q.Add("l", "top|/dressup/items/T1/image")
	q.Add("l", "shoe|/dressup/items/S1/image")
	q.Add("l", "top|/dressup/items/T2/image")
	q.Add("l", "bottom|http://169.254.169.254/latest/meta-data/b.png")
	rec := httptest.NewRecorder()
	c.RenderOutfit(rec, httptest.NewRequest(http.MethodGet, "/dressup/render?"+q.Encode(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("RenderOutfit() status = %d, body %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if strings.Contains(body, "/items/T1/") {
		t.Error("RenderOutfit() kept a replaced top")
	}
	if !strings.Contains(body, "/dressup/items/T2/image") || !strings.Contains(body, "/dressup/items/S1/image") {
		t.Errorf("RenderOutfit() body missing layers: %s", body)
	}
	if strings.Contains(body, "169.254.169.254") {
		t.Error("RenderOutfit() rendered a foreign image source")
	}
	if strings.Index(body, "/items/S1/") > strings.Index(body, "/items/T2/") {
		t.Error("RenderOutfit() should draw shoe before top")
	}

	rec = httptest.NewRecorder()
	c.RenderOutfit(rec, httptest.NewRequest(http.MethodGet, "/dressup/render?l=nopipe", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("RenderOutfit(bad l) status = %d, want 400", rec.Code)
	}
}

func TestDressupMethodNotAllowed(t *testing.T) {
	c := newDressupController(&fakeReader{})
	for _, h := range []http.HandlerFunc{c.Page, c.Catalog, c.RenderOutfit, c.ModelImage} {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/dressup", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	}
}

func TestDressupModelImage(t *testing.T) {
	rec := httptest.NewRecorder()
	newDressupController(&fakeReader{}).ModelImage(rec, httptest.NewRequest(http.MethodGet, "/dressup/model.png", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("ModelImage() = %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
	if !strings.HasPrefix(rec.Body.String(), "\x89PNG") {
		t.Error("ModelImage() body is not a PNG")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "model.png")
	if err := os.WriteFile(path, []byte("custom"), 0644); err != nil {
		t.Fatal(err)
	}
	c := NewDressupController(&fakeReader{}, service.NewExportService(nil), path, 12)
	rec = httptest.NewRecorder()
	c.ModelImage(rec, httptest.NewRequest(http.MethodGet, "/dressup/model.png", nil))
	if rec.Body.String() != "custom" {
		t.Errorf("ModelImage() with a model file = %q, want the file", rec.Body)
	}
}
