package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/dto"
	outboxdomain "github.com/hugohenrick/pdv-livraria/internal/domain/outbox"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
)

// OutboxController gerencia as consultas à fila de mensagens de saída
type OutboxController struct {
	outboxRepo outboxdomain.Repository
	logger     logger.Logger
}

// NewOutboxController cria uma nova instância de OutboxController
func NewOutboxController(outboxRepo outboxdomain.Repository, logger logger.Logger) *OutboxController {
	return &OutboxController{
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

// List lista as mensagens de outbox por status
// @Summary Listar mensagens de saída
// @Description Lista as mensagens da fila de saída por status, da mais antiga para a mais recente
// @Tags outbox
// @Accept json
// @Produce json
// @Param status query string false "Status (PENDING, SENT, FAILED)" default(PENDING)
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.OutboxListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /outbox [get]
func (c *OutboxController) List(ctx *gin.Context) {
	status := outboxdomain.Status(ctx.DefaultQuery("status", string(outboxdomain.StatusPending)))
	if !status.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", ""))
		return
	}

	pagination := paginationFromQuery(ctx)

	messages, err := c.outboxRepo.List(ctx, status, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar mensagens de outbox", "status", status, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar mensagens", err.Error()))
		return
	}

	total, err := c.outboxRepo.CountByStatus(ctx, status)
	if err != nil {
		c.logger.Error("erro ao contar mensagens de outbox", "status", status, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar mensagens", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.OutboxListResponse{
		Total:    total,
		Messages: dto.ToOutboxMessageResponses(messages),
	})
}
