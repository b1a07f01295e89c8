package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	allowOrigins []string,
	jwtSvc *service.JWTService,
	questionnaireH *QuestionnaireHandler,
	compatH *CompatHandler,
	contactH *ContactHandler,
	adminH *AdminHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, CORS y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(allowOrigins), jsonContentTypeMiddleware())

	api := r.Group("/api")

	// Rutas públicas: sincronización de cuestionarios, catálogos y contacto.
	api.POST("/questionnaires/sync", questionnaireH.SyncQuestionnaire)
	api.GET("/questions/:type", questionnaireH.GetQuestions)
	api.POST("/contact", contactH.CreateContact)

	api.POST("/admin/login", adminH.Login)
	api.POST("/admin/refresh", adminH.Refresh)
	api.POST("/admin/logout", adminH.Logout)

	// Rutas de operador: requieren access token.
	protected := api.Group("")
	protected.Use(JWTAuthMiddleware(jwtSvc))
	protected.GET("/questionnaires", questionnaireH.ListQuestionnaires)
	protected.GET("/questionnaires/:id", questionnaireH.GetQuestionnaire)
	protected.POST("/compatibility/analyze", compatH.AnalyzeCompatibility)
	protected.GET("/contact", contactH.ListContacts)
	protected.POST("/contact/:id/read", contactH.MarkContactRead)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func corsMiddleware(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cors.New(cfg)
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
