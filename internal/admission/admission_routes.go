package admission

import (
	"go-admissao/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	admissions := r.Group("/admissions")
	admissions.Use(middleware.ContextLogger(logger))
	{
		// One submission is one e-mail to HR; keep the throttle tight.
		admissions.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Submit,
		)

		admissions.GET("/schema",
			middleware.RateLimitByIP(5, 20),
			handler.Schema,
		)
	}
}
