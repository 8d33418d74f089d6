package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-livraria/internal/domain/branch"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BranchRepository implementa a interface branch.Repository
type BranchRepository struct {
	db *pgxpool.Pool
}

// NewBranchRepository cria uma nova instância de BranchRepository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{
		db: db,
	}
}

// Create implementa branch.Repository.Create
func (r *BranchRepository) Create(ctx context.Context, b *branch.Branch) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO branches (id, name, address, created_at)
		VALUES ($1, $2, $3, $4)`,
		b.ID, b.Name, b.Address, b.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return branch.ErrBranchDuplicateName
		}
		return fmt.Errorf("erro ao criar filial: %w", err)
	}

	return nil
}

// FindByID implementa branch.Repository.FindByID
func (r *BranchRepository) FindByID(ctx context.Context, id string) (*branch.Branch, error) {
	var b branch.Branch

	err := r.db.QueryRow(ctx,
		`SELECT id, name, address, created_at FROM branches WHERE id = $1`,
		id).Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, branch.ErrBranchNotFound
		}
		return nil, fmt.Errorf("erro ao buscar filial: %w", err)
	}

	return &b, nil
}

// List implementa branch.Repository.List
func (r *BranchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, address, created_at FROM branches ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar filiais: %w", err)
	}
	defer rows.Close()

	branches := make([]*branch.Branch, 0)

	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler filial: %w", err)
		}
		branches = append(branches, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer filiais: %w", err)
	}

	return branches, nil
}
