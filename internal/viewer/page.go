package viewer

import (
	"embed"
	"net/http"
)

//go:embed assets/index.html
var assets embed.FS

// handleIndexPage serves the single-page dashboard shell. All data on the
// page comes from the JSON API.
func (s *Server) handleIndexPage(w http.ResponseWriter, r *http.Request) {
	page, err := assets.ReadFile("assets/index.html")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "page unavailable", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
