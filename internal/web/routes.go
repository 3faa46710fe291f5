package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// RegisterRoutes registers all front-end routes on the given router.
func (web *Web) RegisterRoutes(r chi.Router) {
	r.Use(RequestIDMiddleware)
	r.Use(web.LoggingMiddleware)

	// Public routes: the register page doubles as the sign-in page.
	r.Get("/register", web.HandleRegister)
	r.Group(func(r chi.Router) {
		r.Use(web.RateLimitLogin)
		r.Post("/login", web.HandleLoginPost)
		r.Post("/register", web.HandleRegisterPost)
	})

	// Authenticated routes.
	r.Group(func(r chi.Router) {
		r.Use(web.AuthMiddleware)

		r.Get("/", web.HandleHome)
		r.Get("/logout", web.HandleLogout)
		r.Get("/refresh", web.HandleRefresh)

		// Feed (user role).
		r.Group(func(r chi.Router) {
			r.Use(web.RequireRole(model.RoleUser))
			r.Get("/feed", web.HandleFeed)
		})

		// Event management (admin role).
		r.Group(func(r chi.Router) {
			r.Use(web.RequireRole(model.RoleAdmin))
			r.Get("/events/my", web.HandleMyEvents)
			r.Get("/events/new", web.HandleEventNew)
			r.Post("/events/new", web.HandleEventCreate)
			r.Get("/events/{id}/edit", web.HandleEventEdit)
			r.Post("/events/{id}/edit", web.HandleEventUpdate)
			r.Post("/events/{id}/delete", web.HandleEventDelete)
		})

		// Platform administration (super-admin role).
		r.Group(func(r chi.Router) {
			r.Use(web.RequireRole(model.RoleSuperAdmin))
			r.Get("/dashboard", web.HandleDashboard)

			r.Get("/events", web.HandleEvents)
			r.Post("/events/{id}/remove", web.HandleEventModerate)

			r.Get("/users", web.HandleUsers)
			r.Post("/users/create", web.HandleUserCreate)
			r.Post("/users/{id}/role", web.HandleUserRole)
			r.Post("/users/{id}/delete", web.HandleUserDelete)

			r.Get("/clubs", web.HandleClubs)
			r.Post("/clubs/create", web.HandleClubCreate)
			r.Get("/clubs/{id}/edit", web.HandleClubEdit)
			r.Post("/clubs/{id}/edit", web.HandleClubUpdate)
			r.Post("/clubs/{id}/delete", web.HandleClubDelete)
		})
	})
}
