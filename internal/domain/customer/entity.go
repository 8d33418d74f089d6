package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("nome não pode ser vazio")
	ErrEmptyBranchID       = errors.New("ID da filial não pode ser vazio")
	ErrNegativeCreditLimit = errors.New("limite de crédito não pode ser negativo")
	ErrInvalidAmount       = errors.New("valor deve ser maior que zero")
)

// Customer representa um cliente com conta de fiado
//
// CurrentBalance é assinado: valor positivo significa que o cliente deve à
// loja. O saldo é mutado exclusivamente pelas operações atômicas do livro de
// saldo (pagamento e débito), que gravam o registro de auditoria na mesma
// transação.
type Customer struct {
	ID             string    `json:"id"`              // ID do cliente
	Name           string    `json:"name"`            // Nome
	Phone          string    `json:"phone"`           // Telefone (opcional)
	CreditLimit    float64   `json:"credit_limit"`    // Limite de crédito
	CurrentBalance float64   `json:"current_balance"` // Saldo devedor atual
	BranchID       string    `json:"branch_id"`       // ID da filial
	CreatedAt      time.Time `json:"created_at"`      // Data de criação
	UpdatedAt      time.Time `json:"updated_at"`      // Data de atualização
}

// NewCustomer cria um novo cliente com saldo zerado
func NewCustomer(name, phone string, creditLimit float64, branchID string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if creditLimit < 0 {
		return nil, ErrNegativeCreditLimit
	}

	now := time.Now().UTC()

	return &Customer{
		ID:          uuid.New().String(),
		Name:        name,
		Phone:       phone,
		CreditLimit: creditLimit,
		BranchID:    branchID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
