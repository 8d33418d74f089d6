package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/dto"
	auditdomain "github.com/hugohenrick/pdv-livraria/internal/domain/audit"
	customerdomain "github.com/hugohenrick/pdv-livraria/internal/domain/customer"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	auditRepo    auditdomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, auditRepo auditdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente com conta de fiado zerada
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cust, err := customerdomain.NewCustomer(req.Name, req.Phone, req.CreditLimit, req.BranchID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, cust); err != nil {
		c.logger.Error("erro ao criar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	cust, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerdomain.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar cliente", "customer_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// List lista os clientes de uma filial
// @Summary Listar clientes
// @Description Lista os clientes de uma filial com paginação
// @Tags customers
// @Accept json
// @Produce json
// @Param branch_id query string true "ID da filial"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	branchID := ctx.Query("branch_id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "branch_id não informado", ""))
		return
	}

	pagination := paginationFromQuery(ctx)

	customers, err := c.customerRepo.ListByBranch(ctx, branchID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar clientes", "branch_id", branchID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	responses := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		responses = append(responses, dto.ToCustomerResponse(cust))
	}

	ctx.JSON(http.StatusOK, responses)
}

// ApplyPayment abate um pagamento do saldo devedor do cliente
// @Summary Registrar pagamento
// @Description Abate o valor pago do saldo devedor do cliente e grava a trilha de auditoria na mesma transação
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param payment body dto.BalanceOperationRequest true "Dados do pagamento"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/payments [post]
func (c *CustomerController) ApplyPayment(ctx *gin.Context) {
	c.applyBalanceOperation(ctx, c.customerRepo.ApplyPayment)
}

// ApplyCharge lança um débito (fiado) no saldo do cliente
// @Summary Registrar débito
// @Description Lança um débito na conta de fiado do cliente e grava a trilha de auditoria na mesma transação
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param charge body dto.BalanceOperationRequest true "Dados do débito"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/charges [post]
func (c *CustomerController) ApplyCharge(ctx *gin.Context) {
	c.applyBalanceOperation(ctx, c.customerRepo.ApplyCharge)
}

// History lista a trilha de auditoria de saldo do cliente
// @Summary Histórico do cliente
// @Description Lista as mutações de saldo do cliente, da mais recente para a mais antiga
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/history [get]
func (c *CustomerController) History(ctx *gin.Context) {
	id := ctx.Param("id")
	pagination := paginationFromQuery(ctx)

	entries, err := c.auditRepo.ListByCustomer(ctx, id, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar histórico do cliente", "customer_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}

// balanceOperation é a assinatura compartilhada de pagamento e débito
type balanceOperation func(ctx context.Context, customerID string, amount float64, actorID, ipAddress, deviceID string) (*customerdomain.Customer, error)

// applyBalanceOperation trata o caminho comum de pagamento e débito
func (c *CustomerController) applyBalanceOperation(ctx *gin.Context, op balanceOperation) {
	id := ctx.Param("id")

	var req dto.BalanceOperationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cust, err := op(ctx, id, req.Amount, req.UserID, ctx.ClientIP(), req.DeviceID)
	if err != nil {
		switch {
		case errors.Is(err, customerdomain.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
		case errors.Is(err, customerdomain.ErrInvalidAmount):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor inválido", err.Error()))
		default:
			c.logger.Error("erro ao mutar saldo do cliente", "customer_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar saldo", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// paginationFromQuery extrai a paginação da query string
func paginationFromQuery(ctx *gin.Context) dto.PaginationParams {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	return dto.GetPagination(page, pageSize)
}
