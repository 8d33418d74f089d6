package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-livraria/internal/domain/audit"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository implementa a interface audit.Repository
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository cria uma nova instância de AuditRepository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{
		db: db,
	}
}

// RegisterTx insere um registro de auditoria dentro da transação do chamador.
// O registro compartilha o destino da mutação de saldo que o originou: nunca
// existe trilha sem a mudança correspondente, nem mudança sem trilha.
func (r *AuditRepository) RegisterTx(ctx context.Context, tx pgx.Tx, e *audit.Entry) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO audit_logs (
			id, user_id, action, payload, ip_address, device_id, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.UserID, e.Action, e.Payload, e.IPAddress, e.DeviceID, e.Timestamp)

	if err != nil {
		return fmt.Errorf("erro ao registrar auditoria: %w", err)
	}

	return nil
}

// ListByCustomer implementa audit.Repository.ListByCustomer
func (r *AuditRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*audit.Entry, error) {
	rows, err := r.db.Query(ctx,
		auditSelect+`
		WHERE payload->>'customer_id' = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3`,
		customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar auditoria do cliente: %w", err)
	}
	defer rows.Close()

	return scanAuditRows(rows)
}

// ListRecent implementa audit.Repository.ListRecent
func (r *AuditRepository) ListRecent(ctx context.Context, limit, offset int) ([]*audit.Entry, error) {
	rows, err := r.db.Query(ctx,
		auditSelect+`
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar auditoria: %w", err)
	}
	defer rows.Close()

	return scanAuditRows(rows)
}

const auditSelect = `SELECT
	id, user_id, action, payload, ip_address, device_id, timestamp
FROM audit_logs`

// scanAuditRows preenche a lista de registros a partir das linhas do banco
func scanAuditRows(rows pgx.Rows) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0)

	for rows.Next() {
		var e audit.Entry
		err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Payload, &e.IPAddress, &e.DeviceID, &e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler registro de auditoria: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer registros de auditoria: %w", err)
	}

	return entries, nil
}
