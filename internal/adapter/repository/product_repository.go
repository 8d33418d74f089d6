package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, isbn, internal_code, cost, price, stock, min_stock,
			branch_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Name, p.ISBN, nullIfEmpty(p.InternalCode), p.Cost, p.Price,
		p.Stock, p.MinStock, p.BranchID, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return product.ErrProductDuplicateCode
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// ListByBranch implementa product.Repository.ListByBranch
func (r *ProductRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		productSelect+`
		WHERE branch_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// ListBelowMinimum implementa product.Repository.ListBelowMinimum
func (r *ProductRepository) ListBelowMinimum(ctx context.Context, branchID string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		productSelect+`
		WHERE branch_id = $1 AND stock <= min_stock
		ORDER BY name ASC`,
		branchID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos abaixo do mínimo: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// UpdateCost implementa product.Repository.UpdateCost
func (r *ProductRepository) UpdateCost(ctx context.Context, id string, cost float64) (*product.Product, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET cost = $1, updated_at = $2 WHERE id = $3`,
		cost, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar custo do produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return nil, product.ErrProductNotFound
	}

	return r.FindByID(ctx, id)
}

// DecrementStock executa a baixa de estoque dentro da transação do chamador.
//
// A linha do produto é bloqueada com exclusividade (SELECT ... FOR UPDATE) e o
// bloqueio permanece até o fim da transação, serializando baixas concorrentes
// do mesmo produto. O estoque pode ficar negativo: a baixa nunca é rejeitada
// por insuficiência. Retorna o produto com o estoque resultante e se a baixa
// cruzou o limite mínimo (newStock <= minStock).
func (r *ProductRepository) DecrementStock(ctx context.Context, tx pgx.Tx, productID string, qty float64) (*product.Product, bool, error) {
	var p product.Product

	err := tx.QueryRow(ctx,
		`SELECT id, name, stock, min_stock, branch_id
		FROM products
		WHERE id = $1
		FOR UPDATE`,
		productID).Scan(&p.ID, &p.Name, &p.Stock, &p.MinStock, &p.BranchID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, product.ErrProductNotFound
		}
		if isLockNotAvailable(err) {
			return nil, false, product.ErrLockTimeout
		}
		return nil, false, fmt.Errorf("erro ao bloquear produto: %w", err)
	}

	p.Stock -= qty

	_, err = tx.Exec(ctx,
		`UPDATE products SET stock = $1, updated_at = $2 WHERE id = $3`,
		p.Stock, time.Now().UTC(), p.ID)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao baixar estoque: %w", err)
	}

	return &p, p.BelowMinimum(), nil
}

const productSelect = `SELECT
	id, name, isbn, internal_code, cost, price, stock, min_stock,
	branch_id, created_at, updated_at
FROM products`

// scanProduct preenche um produto a partir de uma linha do banco
func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var internalCode *string

	err := row.Scan(
		&p.ID, &p.Name, &p.ISBN, &internalCode, &p.Cost, &p.Price,
		&p.Stock, &p.MinStock, &p.BranchID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if internalCode != nil {
		p.InternalCode = *internalCode
	}

	return &p, nil
}

// scanProductRows preenche a lista de produtos a partir das linhas do banco
func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return products, nil
}

// nullIfEmpty converte string vazia em NULL para colunas opcionais com unicidade
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
