package branch

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Branch representa uma filial da rede de lojas
type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBranch cria uma nova filial
func NewBranch(name, address string) (*Branch, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Branch{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}, nil
}
