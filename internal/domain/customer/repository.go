package customer

import (
	"context"
	"errors"
)

var (
	// ErrCustomerNotFound indica que o cliente não existe
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// ListByBranch lista os clientes de uma filial com paginação
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Customer, error)

	// ApplyPayment abate um pagamento do saldo devedor do cliente.
	// A linha do cliente é bloqueada com exclusividade, o novo saldo é
	// gravado e o registro de auditoria é inserido na mesma transação.
	// Retorna ErrCustomerNotFound se o cliente não existir.
	ApplyPayment(ctx context.Context, customerID string, amount float64, actorID, ipAddress, deviceID string) (*Customer, error)

	// ApplyCharge lança um débito (fiado) no saldo do cliente, com a mesma
	// disciplina transacional de ApplyPayment.
	ApplyCharge(ctx context.Context, customerID string, amount float64, actorID, ipAddress, deviceID string) (*Customer, error)
}
