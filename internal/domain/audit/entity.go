package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyAction = errors.New("ação não pode ser vazia")
)

// Ações registradas pelo motor de ingestão
const (
	ActionCustomerPayment = "CUSTOMER_PAYMENT" // Abatimento de saldo (pagamento)
	ActionCustomerCharge  = "CUSTOMER_CHARGE"  // Lançamento de débito (fiado)
)

// Entry representa um registro de auditoria.
// Registros são somente-inserção: nunca são atualizados nem removidos.
type Entry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`    // Operador responsável
	Action    string          `json:"action"`     // Tag da operação
	Payload   json.RawMessage `json:"payload"`    // Estado antes/depois
	IPAddress string          `json:"ip_address"` // Origem da requisição
	DeviceID  string          `json:"device_id"`  // Dispositivo de origem
	Timestamp time.Time       `json:"timestamp"`
}

// BalanceChangePayload captura o antes/depois de uma mutação de saldo de cliente
type BalanceChangePayload struct {
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	OldBalance float64 `json:"old_balance"`
	NewBalance float64 `json:"new_balance"`
}

// NewEntry cria um novo registro de auditoria
func NewEntry(userID, action string, payload interface{}, ipAddress, deviceID string) (*Entry, error) {
	if action == "" {
		return nil, ErrEmptyAction
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter payload para JSON: %w", err)
	}

	return &Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Payload:   data,
		IPAddress: ipAddress,
		DeviceID:  deviceID,
		Timestamp: time.Now().UTC(),
	}, nil
}
