package dto

import (
	"encoding/json"
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/audit"
	"github.com/hugohenrick/pdv-livraria/internal/domain/customer"
)

// CustomerRequest representa a requisição de criação de cliente
type CustomerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	CreditLimit float64 `json:"credit_limit"`
	BranchID    string  `json:"branch_id" binding:"required"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	CreditLimit    float64   `json:"credit_limit"`
	CurrentBalance float64   `json:"current_balance"`
	BranchID       string    `json:"branch_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BalanceOperationRequest representa um pagamento ou débito na conta do cliente
type BalanceOperationRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	UserID   string  `json:"user_id" binding:"required"`
	DeviceID string  `json:"device_id"`
}

// AuditEntryResponse representa um registro da trilha de auditoria
type AuditEntryResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// ToCustomerResponse converte a entidade de cliente para a resposta da API
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		CreditLimit:    c.CreditLimit,
		CurrentBalance: c.CurrentBalance,
		BranchID:       c.BranchID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToAuditEntryResponses converte os registros de auditoria para a resposta da API
func ToAuditEntryResponses(entries []*audit.Entry) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, 0, len(entries))

	for _, e := range entries {
		responses = append(responses, AuditEntryResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Action:    e.Action,
			Payload:   e.Payload,
			Timestamp: e.Timestamp,
		})
	}

	return responses
}
