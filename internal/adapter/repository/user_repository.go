package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-livraria/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (
			id, username, pin_hash, role, branch_id, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.PINHash, u.Role, u.BranchID, u.IsActive, u.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrUserDuplicateUsername
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, userSelect+` WHERE id = $1`, id)
}

// FindByUsername implementa user.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, userSelect+` WHERE username = $1`, username)
}

// ListByBranch implementa user.Repository.ListByBranch
func (r *UserRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		userSelect+`
		WHERE branch_id = $1
		ORDER BY username ASC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)

	for rows.Next() {
		var u user.User
		err := rows.Scan(&u.ID, &u.Username, &u.PINHash, &u.Role, &u.BranchID, &u.IsActive, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer usuários: %w", err)
	}

	return users, nil
}

const userSelect = `SELECT
	id, username, pin_hash, role, branch_id, is_active, created_at
FROM users`

// findOne busca um único operador
func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	var u user.User

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.PINHash, &u.Role, &u.BranchID, &u.IsActive, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}
