package sale

import (
	"context"
	"errors"
)

var (
	// ErrSaleNotFound indica que a venda não existe
	ErrSaleNotFound = errors.New("venda não encontrada")

	// ErrSaleDuplicateKey indica que já existe uma venda com a mesma chave
	// natural (estação, sequencial local). Não é tratado como falha: o
	// coordenador de sincronização resolve para ALREADY_APPLIED rebuscando
	// o registro original.
	ErrSaleDuplicateKey = errors.New("venda com mesma chave natural já existe")
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create grava a venda de forma atômica: cabeçalho, itens, baixa de
	// estoque por item e mensagens de outbox de estoque baixo compartilham
	// uma única transação. Retorna ErrSaleDuplicateKey se a chave natural
	// já estiver registrada.
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda (com itens) pelo ID atribuído pelo servidor
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindByStationSale busca uma venda pela chave natural (estação, sequencial local)
	FindByStationSale(ctx context.Context, stationID string, externalID int64) (*Sale, error)

	// ListByBranch lista as vendas de uma filial com paginação
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Sale, error)
}
