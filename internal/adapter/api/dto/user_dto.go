package dto

import (
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/user"
)

// UserRequest representa a requisição de criação de operador
type UserRequest struct {
	Username string `json:"username" binding:"required"`
	PIN      string `json:"pin" binding:"required"`
	Role     string `json:"role" binding:"required"`
	BranchID string `json:"branch_id" binding:"required"`
}

// UserResponse representa a resposta de operador (sem o hash do PIN)
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      user.Role `json:"role"`
	BranchID  string    `json:"branch_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converte a entidade de operador para a resposta da API
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		BranchID:  u.BranchID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converte a lista de operadores para a resposta da API
func ToUserResponses(users []*user.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses
}
