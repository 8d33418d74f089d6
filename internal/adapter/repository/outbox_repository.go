package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-livraria/internal/domain/outbox"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxRepository implementa a interface outbox.Repository
type OutboxRepository struct {
	db *pgxpool.Pool
}

// NewOutboxRepository cria uma nova instância de OutboxRepository
func NewOutboxRepository(db *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{
		db: db,
	}
}

// EnqueueTx insere uma mensagem de outbox dentro da transação do chamador.
//
// O enfileiramento compartilha o destino da mutação que o originou: se a
// transação for desfeita, a mensagem nunca existiu; se for confirmada, a
// mensagem fica durável com status PENDING até o despachante externo agir.
// Este repositório nunca atualiza linhas do outbox.
func (r *OutboxRepository) EnqueueTx(ctx context.Context, tx pgx.Tx, m *outbox.Message) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO outbox_messages (
			id, type, payload, status, attempts, last_attempt, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Type, m.Payload, m.Status, m.Attempts, m.LastAttempt, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao enfileirar mensagem de outbox: %w", err)
	}

	return nil
}

// List implementa outbox.Repository.List
func (r *OutboxRepository) List(ctx context.Context, status outbox.Status, limit, offset int) ([]*outbox.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, payload, status, attempts, last_attempt, created_at
		FROM outbox_messages
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar mensagens de outbox: %w", err)
	}
	defer rows.Close()

	messages := make([]*outbox.Message, 0)

	for rows.Next() {
		var m outbox.Message
		err := rows.Scan(&m.ID, &m.Type, &m.Payload, &m.Status, &m.Attempts, &m.LastAttempt, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem de outbox: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer mensagens de outbox: %w", err)
	}

	return messages, nil
}

// CountByStatus implementa outbox.Repository.CountByStatus
func (r *OutboxRepository) CountByStatus(ctx context.Context, status outbox.Status) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM outbox_messages WHERE status = $1`,
		status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens de outbox: %w", err)
	}

	return count, nil
}
