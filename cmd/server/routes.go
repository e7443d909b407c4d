package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/islamku/muadzin/internal/cache"
	"github.com/islamku/muadzin/internal/db"
	"github.com/islamku/muadzin/internal/http/api"
	adminEndpoints "github.com/islamku/muadzin/internal/http/api/admin/endpoints"
	clientEndpoints "github.com/islamku/muadzin/internal/http/api/client/endpoints"
	"github.com/islamku/muadzin/internal/myquran"
	"github.com/islamku/muadzin/internal/refresh"
)

func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	scheduleCache *cache.Cache,
	apiClient *myquran.Client,
	loop *refresh.Loop,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public admin endpoints (signup/login).
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		adminEndpoints.AuthPublicModule(env.SecretKey, store),
	)

	// Authenticated admin endpoints.
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminEndpoints.AuthSessionModule(env.SecretKey, store),
		adminEndpoints.SettingsModule(store, loop),
		adminEndpoints.RefreshModule(loop),
	)

	// Public client endpoints consumed by display devices.
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/client",
	},
		clientEndpoints.ScheduleModule(store, scheduleCache, apiClient),
		clientEndpoints.CityModule(apiClient),
	)
}
