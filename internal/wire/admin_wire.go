package wire

import (
	"railbook/internal/adaptor"
	"railbook/pkg/middleware"
	"railbook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Admin routes require both a valid token and the admin role claim
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth([]byte(config.JWT.Secret), log))
		r.Use(middleware.Admin(log))

		r.Get("/dashboard", adminHandler.GetDashboard)
	})
}
