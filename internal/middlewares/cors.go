package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// Cors allows the browser client on the given origins (comma separated) to
// call the API and answers its preflight requests. An empty list disables
// CORS: the middleware is a no-op and OPTIONS reaches the handlers.
func Cors(allowedOrigins string) func(http.Handler) http.Handler {
	var origins []string
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
}
