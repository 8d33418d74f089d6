package product

import (
	"context"
	"errors"
)

var (
	// ErrProductNotFound indica que o produto não existe
	ErrProductNotFound = errors.New("produto não encontrado")

	// ErrProductDuplicateCode indica que já existe um produto com o mesmo código interno
	ErrProductDuplicateCode = errors.New("produto com mesmo código interno já existe")

	// ErrLockTimeout indica que o bloqueio exclusivo da linha do produto não
	// foi obtido dentro do tempo limite. A transação chamadora é desfeita por
	// inteiro; o reenvio da venda é seguro graças à chave de idempotência.
	ErrLockTimeout = errors.New("tempo esgotado aguardando bloqueio do produto")
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// ListByBranch lista os produtos de uma filial com paginação.
	// Leitura sem bloqueio: o valor de estoque retornado pode estar defasado
	// em relação a vendas em andamento.
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Product, error)

	// ListBelowMinimum lista os produtos da filial com estoque no mínimo ou abaixo
	ListBelowMinimum(ctx context.Context, branchID string) ([]*Product, error)

	// UpdateCost atualiza o custo de um produto
	UpdateCost(ctx context.Context, id string, cost float64) (*Product, error)
}
