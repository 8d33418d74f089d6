package dto

import (
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/product"
)

// ProductRequest representa a requisição de criação de produto
type ProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	ISBN         string  `json:"isbn"`
	InternalCode string  `json:"internal_code"`
	Cost         float64 `json:"cost"`
	Price        float64 `json:"price"`
	Stock        float64 `json:"stock"`
	MinStock     float64 `json:"min_stock"`
	BranchID     string  `json:"branch_id" binding:"required"`
}

// ProductCostRequest representa a atualização de custo de um produto
type ProductCostRequest struct {
	Cost float64 `json:"cost" binding:"required"`
}

// ProductResponse representa a resposta de produto.
// O valor de estoque vem de uma leitura sem bloqueio e pode estar defasado
// em relação a vendas em andamento.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ISBN         string    `json:"isbn,omitempty"`
	InternalCode string    `json:"internal_code,omitempty"`
	Cost         float64   `json:"cost"`
	Price        float64   `json:"price"`
	Stock        float64   `json:"stock"`
	MinStock     float64   `json:"min_stock"`
	BranchID     string    `json:"branch_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToProductResponse converte a entidade de produto para a resposta da API
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		ISBN:         p.ISBN,
		InternalCode: p.InternalCode,
		Cost:         p.Cost,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		BranchID:     p.BranchID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductResponses converte a lista de produtos para a resposta da API
func ToProductResponses(products []*product.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses
}
