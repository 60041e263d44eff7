package router

import (
	"net/http"
	"strings"

	"armario-probador/app/controller"
)

type Controllers struct {
	Dressup  *controller.DressupController
	Image    *controller.ImageController
	Export   *controller.ExportController
	Wardrobe *controller.WardrobeController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every route on mux
func SetupRoutes(mux *http.ServeMux, controllers *Controllers, staticDir string) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Dress-up page and catalog
	mux.HandleFunc("/dressup", controllers.Dressup.Page)
	mux.HandleFunc("/dressup/catalog", controllers.Dressup.Catalog)
	mux.HandleFunc("/dressup/render", controllers.Dressup.RenderOutfit)
	mux.HandleFunc("/dressup/export", controllers.Export.Export)
	mux.HandleFunc("/dressup/model.png", controllers.Dressup.ModelImage)

	// Garment images: /dressup/items/{code}/image
	mux.HandleFunc("/dressup/items/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Image.GetItemImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Admin routes
	mux.HandleFunc("/admin/wardrobe/sync", controllers.Wardrobe.Sync)
	mux.HandleFunc("/admin/wardrobe/download", controllers.Wardrobe.Download)

	// Static files (wasm binary, wasm_exec.js, model silhouette)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/dressup", http.StatusFound)
	})
}
