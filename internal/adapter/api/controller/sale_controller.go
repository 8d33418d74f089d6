package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/dto"
	saledomain "github.com/hugohenrick/pdv-livraria/internal/domain/sale"
	"github.com/hugohenrick/pdv-livraria/internal/service/salesync"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	syncService *salesync.Service
	saleRepo    saledomain.Repository
	logger      logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(syncService *salesync.Service, saleRepo saledomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		syncService: syncService,
		saleRepo:    saleRepo,
		logger:      logger,
	}
}

// Sync sincroniza um lote de vendas vindo de um terminal PDV
// @Summary Sincronizar vendas
// @Description Recebe um lote ordenado de vendas de terminais possivelmente desconectados e aplica cada uma exatamente uma vez. A resposta traz um resultado por venda, na mesma ordem do lote; reenviar vendas FAILED é seguro.
// @Tags sales
// @Accept json
// @Produce json
// @Param sales body []dto.SaleRequest true "Lote ordenado de vendas"
// @Success 200 {array} dto.SaleSyncResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/sync [post]
func (c *SaleController) Sync(ctx *gin.Context) {
	var batch []dto.SaleRequest
	if err := ctx.ShouldBindJSON(&batch); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	requests := make([]saledomain.SyncRequest, 0, len(batch))
	for _, req := range batch {
		requests = append(requests, req.ToSyncRequest())
	}

	results := c.syncService.Sync(ctx, requests)

	ctx.JSON(http.StatusOK, dto.ToSyncResultResponses(results))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna uma venda sincronizada, com seus itens, pelo ID atribuído pelo servidor
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id não informado", ""))
		return
	}

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, saledomain.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "sale_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}
