package outbox

import (
	"context"
)

// Repository define a interface de leitura do outbox.
//
// A escrita (enfileiramento) não aparece aqui de propósito: ela só acontece
// dentro da transação de outra mutação, através do repositório concreto, para
// que a notificação compartilhe o destino do commit que a originou.
type Repository interface {
	// List lista mensagens por status, da mais antiga para a mais recente
	List(ctx context.Context, status Status, limit, offset int) ([]*Message, error)

	// CountByStatus conta as mensagens em um determinado status
	CountByStatus(ctx context.Context, status Status) (int, error)
}
