package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// mock-ilos is a local stand-in for the ILOS backend. It serves the same
// endpoint surface with in-memory sample data so the app and eamvu-diag can
// be exercised without VPN access to the real backend. Nothing is persisted;
// restarting resets the data set.

func main() {
	s := NewServer()

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// The app is served from an emulator origin; allow everything.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.Health)
	r.Post("/getNTB_ETB", s.CustomerStatus)
	r.Get("/cif/{consumerId}", s.CIFDetails)

	r.Route("/api", func(r chi.Router) {
		r.Get("/applications/department/eamvu", s.ListApplications)
		r.Get("/applications/form/{losId}", s.ApplicationDetails)
		r.Post("/applications/update-status", s.UpdateStatus)
		r.Post("/applications/update-comment", s.UpdateComment)
		r.Get("/applications/comments/{losId}", s.ApplicationComments)
		r.Get("/applications/test/assignments", s.AgentAssignments)
		r.Get("/documents/{losId}", s.ApplicationDocuments)
		r.Post("/upload-document", s.UploadDocument)
		r.Get("/test-applications", s.ListApplications)
	})

	addr := ":5000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Printf("mock-ilos listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
