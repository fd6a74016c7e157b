package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS admits the configured browser origins. Content-Disposition is
// exposed so the artist CSV download keeps its filename; X-Request-ID
// is exposed so clients can correlate log lines.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:         300,
	})

	return c.Handler
}
