package user

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound indica que o operador não existe
	ErrUserNotFound = errors.New("usuário não encontrado")

	// ErrUserDuplicateUsername indica que já existe um operador com o mesmo nome
	ErrUserDuplicateUsername = errors.New("usuário com mesmo nome já existe")
)

// Repository define a interface para operações de repositório de operadores
type Repository interface {
	// Create cria um novo operador
	Create(ctx context.Context, u *User) error

	// FindByID busca um operador pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername busca um operador pelo nome de usuário
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ListByBranch lista os operadores de uma filial
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*User, error)
}
