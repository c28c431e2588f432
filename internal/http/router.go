package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/grubline/recipebox/internal/config"
	"github.com/grubline/recipebox/internal/http/handlers"
	"github.com/grubline/recipebox/internal/http/middlewares"
	"github.com/grubline/recipebox/internal/observability"
	"github.com/grubline/recipebox/internal/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type UsersStore interface {
	handlers.UserReader
	handlers.UserWriter
}

// RouterDeps carries everything the router wires together; tests swap the
// postgres/redis implementations for the in-memory ones.
type RouterDeps struct {
	Log      *slog.Logger
	Users    UsersStore
	Recipes  handlers.RecipesStore
	Sessions *session.Manager
	Prom     *observability.Prom
	Cfg      config.Config

	PingDB       func() error
	PingSessions func() error
}

func NewRouter(d RouterDeps) *gin.Engine {
	if d.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(d.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.MaxBodyBytes(1 << 20))
	r.Use(middlewares.RequireJSON())

	if len(d.Cfg.CORSAllowedOrigins) > 0 {
		r.Use(middlewares.CORSMiddleware(d.Cfg.CORSAllowedOrigins))
	}

	if d.Cfg.TracingEnabled {
		r.Use(otelgin.Middleware("recipebox"))
	}

	if d.Prom != nil {
		r.Use(d.Prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// health
	h := handlers.NewHealthHandler(d.PingDB, d.PingSessions)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// wire up handlers
	authHandler := handlers.NewAuthHandler(d.Users, d.Users, d.Sessions, d.Cfg)
	recipesHandler := handlers.NewRecipesHandler(d.Recipes)

	gate := middlewares.NewSessionMiddleware(d.Sessions)

	r.POST("/signup", authHandler.SignUp)
	r.POST("/login", authHandler.Login)

	// everything below requires a live session
	r.DELETE("/logout", gate.RequireSession(), authHandler.Logout)
	r.GET("/recipes", gate.RequireSession(), recipesHandler.ListRecipes)
	r.POST("/recipes", gate.RequireSession(), recipesHandler.CreateRecipe)

	r.NoRoute(func(ctx *gin.Context) {
		handlers.RespondNotFound(ctx, "Not found")
	})

	return r
}
