package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers the handler for every method, including the ones chi does
// not know; it answers non-POST requests itself.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/", h.GenerateQuestions)
	r.MethodNotAllowed(h.GenerateQuestions)
	return r
}
