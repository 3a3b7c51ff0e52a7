package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Get("/api/host-info", h.hostInfo)
	})

	// protected resource routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/numero", func(r chi.Router) {
			r.Get("/", h.listNumbers)
			r.Post("/", h.createNumber)
			r.Get("/{id}", h.getNumber)
			r.Put("/{id}", h.updateNumber)
			r.Delete("/{id}", h.deleteNumber)
		})

		r.Route("/palindromo", func(r chi.Router) {
			r.Get("/", h.listPalindromes)
			r.Post("/", h.createPalindrome)
			r.Get("/{id}", h.getPalindrome)
			r.Put("/{id}", h.updatePalindrome)
			r.Delete("/{id}", h.deletePalindrome)
		})
	})

	return router
}
