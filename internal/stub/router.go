package stub

import (
	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-priceform/internal/middleware"
)

// NewRouter wires the stub routes. CORS is open, like the service the form
// was built against.
func NewRouter(handler *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.AssignRequestID(), middleware.AccessLog(handler.logger), middleware.CORS())

	r.POST("/predict", handler.Predict)
	r.GET("/health", handler.Health)
	return r
}
