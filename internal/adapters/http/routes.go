package web

import (
	"net/http"

	"clubadmin/internal/adapters/http/middleware"
	"clubadmin/internal/domain/account"
)

// registerRoutes attaches all API handlers to the mux. Read endpoints
// require any authenticated session; mutating endpoints require the
// admin role.
func registerRoutes(mux *http.ServeMux) {
	requireAdmin := middleware.RequireRole(account.RoleAdmin)

	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)

	mux.Handle("/api/activities", middleware.RequireAuth(http.HandlerFunc(handleActivities)))
	mux.Handle("/api/activities/schedule", middleware.RequireAuth(http.HandlerFunc(handleActivitySchedule)))
	mux.Handle("/api/activities/status", middleware.RequireAuth(http.HandlerFunc(handleActivityStatus)))

	mux.Handle("/api/removals", middleware.RequireAuth(http.HandlerFunc(handleRemovalHistory)))
	mux.Handle("/api/removals/remove", requireAdmin(http.HandlerFunc(handleRemoveMember)))
	mux.Handle("/api/removals/restore", requireAdmin(http.HandlerFunc(handleRestoreMember)))
}
