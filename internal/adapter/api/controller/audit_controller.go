package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/dto"
	auditdomain "github.com/hugohenrick/pdv-livraria/internal/domain/audit"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
)

// AuditController gerencia as consultas à trilha de auditoria
type AuditController struct {
	auditRepo auditdomain.Repository
	logger    logger.Logger
}

// NewAuditController cria uma nova instância de AuditController
func NewAuditController(auditRepo auditdomain.Repository, logger logger.Logger) *AuditController {
	return &AuditController{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// ListRecent lista os registros mais recentes da trilha de auditoria
// @Summary Listar auditoria recente
// @Description Lista os registros de auditoria mais recentes, de qualquer ação
// @Tags audit
// @Accept json
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /audit [get]
func (c *AuditController) ListRecent(ctx *gin.Context) {
	pagination := paginationFromQuery(ctx)

	entries, err := c.auditRepo.ListRecent(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar auditoria recente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar auditoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}
