package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"estateBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleUser))
	agentAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAgent))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Auth
	mux.Post("/auth/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Get("/auth/me", authMiddleware.ThenFunc(app.userHandler.Me))
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/auth/fcm_token", authMiddleware.ThenFunc(app.userHandler.SaveFCMToken))

	// Properties
	mux.Post("/properties", agentAuthMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Get("/properties/my", agentAuthMiddleware.ThenFunc(app.propertyHandler.GetMyProperties))
	mux.Get("/properties/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetProperty))
	mux.Put("/properties/:id", agentAuthMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/properties/:id", agentAuthMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))
	mux.Put("/properties/:id/images/:image_id/primary", agentAuthMiddleware.ThenFunc(app.propertyHandler.SetPrimaryImage))
	mux.Get("/properties", standardMiddleware.ThenFunc(app.propertyHandler.GetProperties))

	// Agents
	mux.Get("/agents", standardMiddleware.ThenFunc(app.userHandler.GetAgents))

	// Inquiries
	mux.Post("/inquiries", authMiddleware.ThenFunc(app.inquiryHandler.CreateInquiry))

	// Uploaded images
	mux.Get("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.cfg.Storage.UploadsDir))))

	// Admin
	mux.Get("/admin/dashboard", adminAuthMiddleware.ThenFunc(app.adminHandler.Dashboard))
	mux.Get("/admin/users", adminAuthMiddleware.ThenFunc(app.adminHandler.GetUsers))
	mux.Put("/admin/users/:id/role", adminAuthMiddleware.ThenFunc(app.adminHandler.UpdateUserRole))
	mux.Del("/admin/users/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.DeleteUser))
	mux.Get("/admin/inquiries", adminAuthMiddleware.ThenFunc(app.adminHandler.GetInquiries))
	mux.Put("/admin/inquiries/:id/status", adminAuthMiddleware.ThenFunc(app.adminHandler.UpdateInquiryStatus))

	return mux
}
