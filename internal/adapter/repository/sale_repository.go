package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hugohenrick/pdv-livraria/internal/domain/outbox"
	"github.com/hugohenrick/pdv-livraria/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db       *pgxpool.Pool
	products *ProductRepository
	outbox   *OutboxRepository
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool, products *ProductRepository, outboxRepo *OutboxRepository) *SaleRepository {
	return &SaleRepository{
		db:       db,
		products: products,
		outbox:   outboxRepo,
	}
}

// Create implementa sale.Repository.Create
//
// Tudo acontece em uma única transação: cabeçalho da venda, itens, baixa de
// estoque por item (com bloqueio exclusivo da linha do produto) e mensagens
// de outbox de estoque baixo. Qualquer falha desfaz a transação inteira —
// nenhuma venda parcial fica visível. A corrida entre a pré-checagem do
// coordenador e este insert é fechada pela restrição de unicidade em
// (station_id, external_id), que aqui vira ErrSaleDuplicateKey.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Printf("erro ao fazer rollback da venda %s: %v", s.ID, rbErr)
		}
	}()

	// Espera limitada por bloqueios de linha; estourado o limite a venda
	// falha por inteiro e pode ser reenviada com segurança
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%s'", lockTimeout)); err != nil {
		return fmt.Errorf("erro ao configurar lock_timeout: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (
			id, external_id, station_id, branch_id, user_id, customer_id,
			timestamp, total, payment_method, fiscal_status, cae
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.ExternalID, s.StationID, s.BranchID, s.UserID,
		nullIfEmpty(s.CustomerID), s.Timestamp, s.Total, s.PaymentMethod,
		s.FiscalStatus, nullIfEmpty(s.CAE))

	if err != nil {
		if isUniqueViolation(err) {
			return sale.ErrSaleDuplicateKey
		}
		return fmt.Errorf("erro ao criar venda: %w", err)
	}

	// Itens processados na ordem enviada pelo terminal
	for _, item := range s.Items {
		p, crossed, err := r.products.DecrementStock(ctx, tx, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("item %s: %w", item.ProductID, err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO sale_items (id, sale_id, product_id, qty, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, s.ID, item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("erro ao criar item da venda: %w", err)
		}

		// Um alerta por item que cruza o limite; alertas duplicados na mesma
		// venda são aceitáveis, silêncio não seria
		if crossed {
			msg, err := outbox.NewLowStockMessage(p.ID, p.Name, p.Stock, p.MinStock)
			if err != nil {
				return fmt.Errorf("erro ao montar alerta de estoque baixo: %w", err)
			}

			if err := r.outbox.EnqueueTx(ctx, tx, msg); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit da venda: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	return r.findOne(ctx, saleSelect+` WHERE id = $1`, id)
}

// FindByStationSale implementa sale.Repository.FindByStationSale
func (r *SaleRepository) FindByStationSale(ctx context.Context, stationID string, externalID int64) (*sale.Sale, error) {
	return r.findOne(ctx, saleSelect+` WHERE station_id = $1 AND external_id = $2`, stationID, externalID)
}

// ListByBranch implementa sale.Repository.ListByBranch
func (r *SaleRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		saleSelect+`
		WHERE branch_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}

	for _, s := range sales {
		if err := r.loadItems(ctx, s); err != nil {
			return nil, err
		}
	}

	return sales, nil
}

const saleSelect = `SELECT
	id, external_id, station_id, branch_id, user_id, customer_id,
	timestamp, total, payment_method, fiscal_status, cae
FROM sales`

// findOne busca uma única venda com seus itens
func (r *SaleRepository) findOne(ctx context.Context, query string, args ...interface{}) (*sale.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if err := r.loadItems(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

// loadItems carrega os itens de uma venda
func (r *SaleRepository) loadItems(ctx context.Context, s *sale.Sale) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, product_id, qty, unit_price
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY id ASC`,
		s.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := make([]sale.Item, 0)

	for rows.Next() {
		var item sale.Item
		err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer itens da venda: %w", err)
	}

	s.Items = items
	return nil
}

// scanSale preenche uma venda (sem itens) a partir de uma linha do banco
func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	var customerID, cae *string

	err := row.Scan(
		&s.ID, &s.ExternalID, &s.StationID, &s.BranchID, &s.UserID,
		&customerID, &s.Timestamp, &s.Total, &s.PaymentMethod,
		&s.FiscalStatus, &cae)
	if err != nil {
		return nil, err
	}

	if customerID != nil {
		s.CustomerID = *customerID
	}

	if cae != nil {
		s.CAE = *cae
	}

	return &s, nil
}
