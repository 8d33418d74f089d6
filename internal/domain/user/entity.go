package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyUsername = errors.New("nome de usuário não pode ser vazio")
	ErrEmptyBranchID = errors.New("ID da filial não pode ser vazio")
	ErrInvalidRole   = errors.New("papel de usuário inválido")
	ErrEmptyPIN      = errors.New("PIN não pode ser vazio")
)

// Role representa o papel/função do operador
type Role string

const (
	RoleAdmin      Role = "admin"      // Administrador do sistema
	RoleSeller     Role = "seller"     // Vendedor
	RoleSupervisor Role = "supervisor" // Supervisor de filial
)

// IsValid verifica se o papel é conhecido
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleSupervisor:
		return true
	}
	return false
}

// User representa um operador de terminal PDV
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PINHash   string    `json:"-"` // Hash do PIN; nunca exposto nas respostas
	Role      Role      `json:"role"`
	BranchID  string    `json:"branch_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser cria um novo operador ativo
func NewUser(username string, role Role, branchID string) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	return &User{
		ID:        uuid.New().String(),
		Username:  username,
		Role:      role,
		BranchID:  branchID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// SetPIN configura o PIN do operador com hash
func (u *User) SetPIN(pin string) error {
	if pin == "" {
		return ErrEmptyPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PINHash = string(hash)
	return nil
}

// CheckPIN verifica se o PIN fornecido é válido
func (u *User) CheckPIN(pin string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(pin))
	return err == nil
}
