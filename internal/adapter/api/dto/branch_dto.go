package dto

import (
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/branch"
)

// BranchRequest representa a requisição de criação de filial
type BranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// BranchResponse representa a resposta de filial
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToBranchResponse converte a entidade de filial para a resposta da API
func ToBranchResponse(b *branch.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		CreatedAt: b.CreatedAt,
	}
}

// ToBranchResponses converte a lista de filiais para a resposta da API
func ToBranchResponses(branches []*branch.Branch) []BranchResponse {
	responses := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, ToBranchResponse(b))
	}
	return responses
}
