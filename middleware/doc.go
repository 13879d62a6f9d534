// Package middleware provides net/http middleware for the welcome service:
// CORS handling, request logging, panic recovery, and request body limits.
//
// All middleware follows the func(http.Handler) http.Handler convention and
// composes with chi routers:
//
//	r := chi.NewRouter()
//	r.Use(chimiddleware.RequestID)
//	r.Use(chimiddleware.RealIP)
//	r.Use(middleware.Logging(log))
//	r.Use(middleware.CORS())
//	r.Use(middleware.Recover(log))
//	r.Use(middleware.BodyLimitWithSize(middleware.MB))
//
// Each middleware has a WithConfig variant for customization:
//
//	r.Use(middleware.CORSWithConfig(middleware.CORSConfig{
//		AllowOrigin:  "https://app.example.com",
//		AllowHeaders: []string{"authorization", "content-type"},
//	}))
//
// The CORS middleware emits a fixed header set on every response and answers
// OPTIONS requests directly, so error responses produced by inner handlers
// remain consumable by browser clients on other origins.
package middleware
