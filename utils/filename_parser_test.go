package utils

import (
	"testing"

	"armario-probador/models"
)

func TestParseWardrobeFileName(t *testing.T) {
	tests := []struct {
		in        string
		wantLayer string
		wantCode  string
		wantName  string
	}{
		{"TOP-T001-blusa_roja.png", "top", "T001", "blusa roja"},
		{"zapatos-z07.JPG", "shoe", "Z07", "Z07"},
		{"Chaqueta-C1-abrigo-largo.jpeg", "outerlayer", "C1", "abrigo-largo"},
		{"accessory-A9-.png", "accessory", "A9", "A9"},
	}
	for _, tt := range tests {
		got, err := ParseWardrobeFileName(tt.in)
		if err != nil {
			t.Errorf("ParseWardrobeFileName(%q) error = %v", tt.in, err)
			continue
		}
		if got.Layer != tt.wantLayer || got.Code != tt.wantCode || got.Name != tt.wantName {
			t.Errorf("ParseWardrobeFileName(%q) = {%s %s %s}, want {%s %s %s}",
				tt.in, got.Layer, got.Code, got.Name, tt.wantLayer, tt.wantCode, tt.wantName)
		}
		if got.FileName != tt.in {
			t.Errorf("FileName = %q, want %q", got.FileName, tt.in)
		}
	}
}

func TestParseWardrobeFileNameRejects(t *testing.T) {
	bad := []string{
		"top-T001.gif",
		"top.png",
		"hat-H1.png",
		"top-T 01.png",
		"-T01.png",
		"",
	}
	for _, in := range bad {
		if got, err := ParseWardrobeFileName(in); err == nil {
			t.Errorf("ParseWardrobeFileName(%q) = %+v, want error", in, got)
		}
	}
}

func TestMapGarmentToLayer(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Bottom", "bottom", true},
		{"  FALDA ", "bottom", true},
		{"Pañoleta", "accessory", true},
		{"nave", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := MapGarmentToLayer(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MapGarmentToLayer(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMapLayerToTitle(t *testing.T) {
	if got := MapLayerToTitle("shoe"); got != "Zapatos" {
		t.Errorf("MapLayerToTitle(shoe) = %q, want Zapatos", got)
	}
	if got := MapLayerToTitle("hats"); got != "Hats" {
		t.Errorf("MapLayerToTitle(hats) = %q, want Hats", got)
	}
}

func TestToCatalogItem(t *testing.T) {
	got := ToCatalogItem(models.WardrobeItem{Code: "T1", Name: "blusa", Layer: "Top"})
	if got.ID != "T1" || got.Name != "blusa" || string(got.Layer) != "top" {
		t.Errorf("ToCatalogItem() = %+v", got)
	}
	if got.SourceRef != "/dressup/items/T1/image?size=medium" || got.ThumbRef != "/dressup/items/T1/image?size=thumb" {
		t.Errorf("ToCatalogItem() refs = %s, %s", got.SourceRef, got.ThumbRef)
	}
}
