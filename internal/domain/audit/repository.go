package audit

import (
	"context"
)

// Repository define a interface de leitura da trilha de auditoria.
// A escrita acontece exclusivamente dentro das transações que mutam saldo,
// através do repositório concreto.
type Repository interface {
	// ListByCustomer lista os registros de mutação de saldo de um cliente,
	// do mais recente para o mais antigo
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*Entry, error)

	// ListRecent lista os registros mais recentes de qualquer ação
	ListRecent(ctx context.Context, limit, offset int) ([]*Entry, error)
}
