package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/audit"
	"github.com/hugohenrick/pdv-livraria/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db    *pgxpool.Pool
	audit *AuditRepository
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool, auditRepo *AuditRepository) *CustomerRepository {
	return &CustomerRepository{
		db:    db,
		audit: auditRepo,
	}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, name, phone, credit_limit, current_balance, branch_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Phone, c.CreditLimit, c.CurrentBalance, c.BranchID,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx,
		customerSelect+` WHERE id = $1`,
		id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.CreditLimit, &c.CurrentBalance,
		&c.BranchID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// ListByBranch implementa customer.Repository.ListByBranch
func (r *CustomerRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		customerSelect+`
		WHERE branch_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)

	for rows.Next() {
		var c customer.Customer
		err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.CreditLimit, &c.CurrentBalance,
			&c.BranchID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}

	return customers, nil
}

// ApplyPayment implementa customer.Repository.ApplyPayment.
// Um pagamento sempre reduz o que o cliente deve.
func (r *CustomerRepository) ApplyPayment(ctx context.Context, customerID string, amount float64, actorID, ipAddress, deviceID string) (*customer.Customer, error) {
	return r.applyBalanceChange(ctx, customerID, -amount, amount, audit.ActionCustomerPayment, actorID, ipAddress, deviceID)
}

// ApplyCharge implementa customer.Repository.ApplyCharge.
// Um débito (fiado) sempre aumenta o que o cliente deve.
func (r *CustomerRepository) ApplyCharge(ctx context.Context, customerID string, amount float64, actorID, ipAddress, deviceID string) (*customer.Customer, error) {
	return r.applyBalanceChange(ctx, customerID, amount, amount, audit.ActionCustomerCharge, actorID, ipAddress, deviceID)
}

// applyBalanceChange muta o saldo do cliente e grava a trilha de auditoria em
// uma única transação: ou as duas escritas são confirmadas, ou nenhuma.
// A linha do cliente fica bloqueada com exclusividade até o commit.
func (r *CustomerRepository) applyBalanceChange(ctx context.Context, customerID string, delta, amount float64, action, actorID, ipAddress, deviceID string) (*customer.Customer, error) {
	if amount <= 0 {
		return nil, customer.ErrInvalidAmount
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Printf("erro ao fazer rollback da mutação de saldo do cliente %s: %v", customerID, rbErr)
		}
	}()

	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%s'", lockTimeout)); err != nil {
		return nil, fmt.Errorf("erro ao configurar lock_timeout: %w", err)
	}

	var c customer.Customer

	err = tx.QueryRow(ctx,
		customerSelect+` WHERE id = $1 FOR UPDATE`,
		customerID).Scan(
		&c.ID, &c.Name, &c.Phone, &c.CreditLimit, &c.CurrentBalance,
		&c.BranchID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao bloquear cliente: %w", err)
	}

	oldBalance := c.CurrentBalance
	c.CurrentBalance = oldBalance + delta
	c.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx,
		`UPDATE customers SET current_balance = $1, updated_at = $2 WHERE id = $3`,
		c.CurrentBalance, c.UpdatedAt, c.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar saldo do cliente: %w", err)
	}

	entry, err := audit.NewEntry(actorID, action, audit.BalanceChangePayload{
		CustomerID: c.ID,
		Amount:     amount,
		OldBalance: oldBalance,
		NewBalance: c.CurrentBalance,
	}, ipAddress, deviceID)
	if err != nil {
		return nil, err
	}

	if err := r.audit.RegisterTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit da mutação de saldo: %w", err)
	}

	return &c, nil
}

const customerSelect = `SELECT
	id, name, phone, credit_limit, current_balance, branch_id,
	created_at, updated_at
FROM customers`
