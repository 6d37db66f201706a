package bootstrap

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/vicdevman/portfolio-api/internal/api/http"
	"github.com/vicdevman/portfolio-api/internal/api/http/middleware"
	"github.com/vicdevman/portfolio-api/internal/catalog"
	cataloghttp "github.com/vicdevman/portfolio-api/internal/catalog/http"
	chathttp "github.com/vicdevman/portfolio-api/internal/chat/http"
	contacthttp "github.com/vicdevman/portfolio-api/internal/contact/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Integrations   httpapi.Integrations

	Catalog *catalog.Catalog
	Chat    chathttp.Replier
	Contact contacthttp.Submitter
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Integrations)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	chathttp.New(dep.Chat).Register(api)
	contacthttp.New(dep.Contact).Register(api)
	cataloghttp.New(dep.Catalog).Register(api)

	return r
}

// corsConfig allows every origin when origins is empty or contains "*".
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
