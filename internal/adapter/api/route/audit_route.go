package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/controller"
)

// RegisterAuditRoutes registra as rotas de consulta da trilha de auditoria
func RegisterAuditRoutes(r *gin.RouterGroup, auditController *controller.AuditController) {
	audit := r.Group("/audit")
	{
		audit.GET("", auditController.ListRecent)
	}
}
