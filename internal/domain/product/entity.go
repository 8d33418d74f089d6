package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrEmptyBranchID   = errors.New("ID da filial não pode ser vazio")
	ErrNegativeCost    = errors.New("custo não pode ser negativo")
	ErrNegativePrice   = errors.New("preço não pode ser negativo")
	ErrNegativeMinimum = errors.New("estoque mínimo não pode ser negativo")
)

// Product representa um item de estoque (livro ou artigo de papelaria)
//
// O campo Stock é a quantidade em mãos. Ele pode ficar negativo: a baixa de
// estoque nunca é rejeitada por insuficiência, apenas o valor resultante é
// reportado. A proteção de consistência está em não aplicar a mesma baixa
// duas vezes, não em impedir a venda sem saldo.
type Product struct {
	ID           string    `json:"id"`            // ID do produto
	Name         string    `json:"name"`          // Nome/descrição
	ISBN         string    `json:"isbn"`          // ISBN (livros; opcional)
	InternalCode string    `json:"internal_code"` // Código interno (opcional, único)
	Cost         float64   `json:"cost"`          // Custo de aquisição
	Price        float64   `json:"price"`         // Preço de venda
	Stock        float64   `json:"stock"`         // Quantidade em estoque
	MinStock     float64   `json:"min_stock"`     // Limite mínimo para alerta
	BranchID     string    `json:"branch_id"`     // ID da filial
	CreatedAt    time.Time `json:"created_at"`    // Data de criação
	UpdatedAt    time.Time `json:"updated_at"`    // Data de atualização
}

// NewProduct cria um novo produto
func NewProduct(name, isbn, internalCode string, cost, price, stock, minStock float64, branchID string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if cost < 0 {
		return nil, ErrNegativeCost
	}

	if price < 0 {
		return nil, ErrNegativePrice
	}

	if minStock < 0 {
		return nil, ErrNegativeMinimum
	}

	now := time.Now().UTC()

	return &Product{
		ID:           uuid.New().String(),
		Name:         name,
		ISBN:         isbn,
		InternalCode: internalCode,
		Cost:         cost,
		Price:        price,
		Stock:        stock,
		MinStock:     minStock,
		BranchID:     branchID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// BelowMinimum verifica se o estoque atual está no limite mínimo ou abaixo dele
func (p *Product) BelowMinimum() bool {
	return p.Stock <= p.MinStock
}
