package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// PagesHandler serves the frontend HTML pages from the static root,
// falling back to an inline placeholder when a file is absent.
type PagesHandler struct {
	staticRoot string
}

func NewPagesHandler(staticRoot string) *PagesHandler {
	return &PagesHandler{staticRoot: strings.TrimSpace(staticRoot)}
}

func (h *PagesHandler) Index(w http.ResponseWriter, _ *http.Request) {
	h.servePage(w, "index.html", "Voice Translator Web App",
		"Please run the setup to create the frontend files.")
}

func (h *PagesHandler) Dashboard(w http.ResponseWriter, _ *http.Request) {
	h.servePage(w, "dashboard.html", "Dashboard", "Dashboard HTML file not found.")
}

func (h *PagesHandler) Translate(w http.ResponseWriter, _ *http.Request) {
	h.servePage(w, "translate.html", "Translate", "Translate HTML file not found.")
}

func (h *PagesHandler) servePage(w http.ResponseWriter, name string, title string, fallback string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	content, err := os.ReadFile(filepath.Join(h.staticRoot, name))
	if err != nil {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `<html>
  <body>
    <h1>%s</h1>
    <p>%s</p>
  </body>
</html>`, title, fallback)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
