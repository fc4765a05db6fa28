package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/bacauscout/scout/go/internal/feed"
	"github.com/bacauscout/scout/go/internal/respond"
	"github.com/bacauscout/scout/go/internal/users"
)

func setupServer(services *Services, hub *feed.Hub, env Env, config *Config) *http.Server {
	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: config.Server.CORSOrigins,
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", users.RoleHeader},
	})

	// Setup HTTP/2 server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", env.Port),
		Handler:           h2c.NewHandler(c.Handler(newRouter(services, hub)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func newRouter(services *Services, hub *feed.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)

	setupHealthCheck(r, services)
	r.Handle("/ws/grades", hub)

	r.Route("/api", func(r chi.Router) {
		services.Players.Routes(r)
		services.Teams.Routes(r)
		services.Wyscout.Routes(r)

		if services.Grades != nil {
			services.Grades.Routes(r)
		} else {
			unavailable(r, "/grades")
		}

		if services.Attachments != nil {
			services.Attachments.Routes(r)
		} else {
			unavailable(r, "/upload", "/attachments")
		}

		if services.Users != nil {
			services.Users.Routes(r)
		} else {
			unavailable(r, "/admin", "/auth")
		}
	})

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
	Skipped int    `json:"skipped"`
}

func setupHealthCheck(r chi.Router, services *Services) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Players: services.Store.Len(),
			Skipped: services.Store.Skipped(),
		})
	})
}

// unavailable answers 503 on every path under the given prefixes
func unavailable(r chi.Router, prefixes ...string) {
	h := func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusServiceUnavailable, "Service unavailable", nil)
	}
	for _, p := range prefixes {
		r.HandleFunc(p, h)
		r.HandleFunc(p+"/*", h)
	}
}

// requestLogger logs one line per request through zerolog
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		ev := log.Info()
		if status >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Msg("request")
	})
}
