package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/dto"
	branchdomain "github.com/hugohenrick/pdv-livraria/internal/domain/branch"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
)

// BranchController gerencia as requisições relacionadas a filiais
type BranchController struct {
	branchRepo branchdomain.Repository
	logger     logger.Logger
}

// NewBranchController cria uma nova instância de BranchController
func NewBranchController(branchRepo branchdomain.Repository, logger logger.Logger) *BranchController {
	return &BranchController{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

// Create cria uma nova filial
// @Summary Criar filial
// @Description Cria uma nova filial
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.BranchRequest true "Dados da filial"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [post]
func (c *BranchController) Create(ctx *gin.Context) {
	var req dto.BranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	b, err := branchdomain.NewBranch(req.Name, req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar filial", err.Error()))
		return
	}

	if err := c.branchRepo.Create(ctx, b); err != nil {
		if errors.Is(err, branchdomain.ErrBranchDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "filial já cadastrada com esse nome", ""))
			return
		}
		c.logger.Error("erro ao criar filial no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBranchResponse(b))
}

// Get retorna uma filial pelo ID
// @Summary Buscar filial
// @Description Retorna os dados de uma filial pelo ID
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "ID da filial"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [get]
func (c *BranchController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	b, err := c.branchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, branchdomain.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "filial não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar filial", "branch_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// List lista as filiais cadastradas
// @Summary Listar filiais
// @Description Lista as filiais cadastradas
// @Tags branches
// @Accept json
// @Produce json
// @Success 200 {array} dto.BranchResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [get]
func (c *BranchController) List(ctx *gin.Context) {
	branches, err := c.branchRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar filiais", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar filiais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponses(branches))
}
