package outbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMessageType = errors.New("tipo de mensagem inválido")
	ErrEmptyPayload       = errors.New("payload não pode ser vazio")
)

// MessageType representa o canal de entrega da notificação
type MessageType string

const (
	TypeWhatsApp MessageType = "WHATSAPP"
	TypeEmail    MessageType = "EMAIL"
	TypeFiscal   MessageType = "FISCAL"
)

// IsValid verifica se o tipo de mensagem é conhecido
func (t MessageType) IsValid() bool {
	switch t {
	case TypeWhatsApp, TypeEmail, TypeFiscal:
		return true
	}
	return false
}

// Status representa o estado de entrega da mensagem
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSent    Status = "SENT"
	StatusFailed  Status = "FAILED"
)

// IsValid verifica se o status é conhecido
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	}
	return false
}

// Message representa uma notificação pendente ou entregue.
//
// O motor de ingestão apenas insere mensagens, sempre com status PENDING e na
// mesma transação da mutação que as originou. As transições de status,
// tentativas e entrega são responsabilidade do despachante externo.
type Message struct {
	ID          string          `json:"id"`
	Type        MessageType     `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	Status      Status          `json:"status"`
	Attempts    int             `json:"attempts"`
	LastAttempt *time.Time      `json:"last_attempt"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LowStockPayload é o payload de alerta de estoque baixo
type LowStockPayload struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Stock       float64 `json:"stock"`
	MinStock    float64 `json:"min_stock"`
	Msg         string  `json:"msg"`
}

// NewMessage cria uma nova mensagem de outbox com status PENDING
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	if !msgType.IsValid() {
		return nil, ErrInvalidMessageType
	}

	if payload == nil {
		return nil, ErrEmptyPayload
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter payload para JSON: %w", err)
	}

	return &Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Payload:   data,
		Status:    StatusPending,
		Attempts:  0,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewLowStockMessage cria o alerta de estoque baixo enviado via WhatsApp
// quando uma baixa de estoque cruza o limite mínimo do produto
func NewLowStockMessage(productID, productName string, stock, minStock float64) (*Message, error) {
	return NewMessage(TypeWhatsApp, LowStockPayload{
		ProductID:   productID,
		ProductName: productName,
		Stock:       stock,
		MinStock:    minStock,
		Msg:         fmt.Sprintf("Estoque baixo: %s. Restam %g", productName, stock),
	})
}
