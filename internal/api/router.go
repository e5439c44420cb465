package api

import (
	"fmt"
	"net/http"

	_ "github.com/rohits-web03/quick4lio/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/rohits-web03/quick4lio/internal/api/handlers"
	"github.com/rohits-web03/quick4lio/internal/api/middleware"
	"github.com/rohits-web03/quick4lio/internal/config"
	"github.com/rs/cors"
)

// @title Quick4lio API
// @version 1.0
// @description Portfolio builder with Free, Paid and Premium plans.
// @BasePath /
func SetupRouter(h *handlers.Handler, cfg config.Config, log *zap.Logger) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)
	auth := middleware.Auth(cfg.JWTSecret)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("POST /api/v1/auth/sign-up", h.RegisterUser)
	mainMux.HandleFunc("POST /api/v1/auth/login", h.LoginUser)
	mainMux.HandleFunc("GET /api/v1/auth/google/login", h.HandleGoogleLogin)
	mainMux.HandleFunc("GET /api/v1/auth/google/callback", h.HandleGoogleCallback)

	mainMux.HandleFunc("GET /feed", h.Feed)
	mainMux.HandleFunc("GET /user/{username}", h.UserProfile)
	mainMux.HandleFunc("GET /p/{username}", h.PublicPortfolio)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()
	protectedMux.HandleFunc("POST /auth/logout", h.Logout)

	protectedMux.HandleFunc("GET /me", h.Me)
	protectedMux.HandleFunc("PUT /me/profile", h.UpdateProfile)
	protectedMux.HandleFunc("POST /posts", h.CreatePost)

	protectedMux.HandleFunc("GET /plans", h.PlanDetails)
	protectedMux.HandleFunc("POST /plans/{plan}", h.SelectPlan)
	protectedMux.HandleFunc("GET /portfolio", h.EditPortfolio)
	protectedMux.HandleFunc("POST /portfolio", h.SavePortfolio)

	protectedMux.HandleFunc("POST /uploads/presign", h.PresignUpload)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			auth(protectedMux),
		),
	)

	log.Info("router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(log)(handler)
	return handler
}
