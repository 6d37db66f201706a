package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode selects release mode in production and test mode under "test".
func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
