package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/controller"
)

// RegisterOutboxRoutes registra as rotas de consulta da fila de saída
func RegisterOutboxRoutes(r *gin.RouterGroup, outboxController *controller.OutboxController) {
	outbox := r.Group("/outbox")
	{
		outbox.GET("", outboxController.List)
	}
}
