package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/pdv-livraria/internal/domain/product"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo da filial
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Name, req.ISBN, req.InternalCode, req.Cost, req.Price, req.Stock, req.MinStock, req.BranchID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, productdomain.ErrProductDuplicateCode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código interno já cadastrado", ""))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "product_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos de uma filial
// @Summary Listar produtos
// @Description Lista os produtos de uma filial com paginação
// @Tags products
// @Accept json
// @Produce json
// @Param branch_id query string true "ID da filial"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	branchID := ctx.Query("branch_id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "branch_id não informado", ""))
		return
	}

	pagination := paginationFromQuery(ctx)

	products, err := c.productRepo.ListByBranch(ctx, branchID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar produtos", "branch_id", branchID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// LowStock lista os produtos no limite mínimo de estoque ou abaixo dele
// @Summary Listar produtos com estoque baixo
// @Description Lista os produtos da filial cujo estoque está no limite mínimo ou abaixo dele
// @Tags products
// @Accept json
// @Produce json
// @Param branch_id query string true "ID da filial"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) LowStock(ctx *gin.Context) {
	branchID := ctx.Query("branch_id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "branch_id não informado", ""))
		return
	}

	products, err := c.productRepo.ListBelowMinimum(ctx, branchID)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "branch_id", branchID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// UpdateCost atualiza o custo de aquisição de um produto
// @Summary Atualizar custo
// @Description Atualiza o custo de aquisição de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param cost body dto.ProductCostRequest true "Novo custo"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/cost [put]
func (c *ProductController) UpdateCost(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if req.Cost < 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "custo não pode ser negativo", ""))
		return
	}

	p, err := c.productRepo.UpdateCost(ctx, id, req.Cost)
	if err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao atualizar custo do produto", "product_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar custo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}
