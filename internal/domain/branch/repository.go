package branch

import (
	"context"
	"errors"
)

var (
	// ErrBranchNotFound indica que a filial não existe
	ErrBranchNotFound = errors.New("filial não encontrada")

	// ErrBranchDuplicateName indica que já existe uma filial com o mesmo nome
	ErrBranchDuplicateName = errors.New("filial com mesmo nome já existe")
)

// Repository define a interface para operações de repositório de filiais
type Repository interface {
	// Create cria uma nova filial
	Create(ctx context.Context, b *Branch) error

	// FindByID busca uma filial pelo ID
	FindByID(ctx context.Context, id string) (*Branch, error)

	// List lista todas as filiais
	List(ctx context.Context) ([]*Branch, error)
}
