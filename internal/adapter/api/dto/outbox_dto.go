package dto

import (
	"encoding/json"
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/outbox"
)

// OutboxMessageResponse representa uma mensagem de outbox na resposta da API
type OutboxMessageResponse struct {
	ID          string             `json:"id"`
	Type        outbox.MessageType `json:"type"`
	Payload     json.RawMessage    `json:"payload"`
	Status      outbox.Status      `json:"status"`
	Attempts    int                `json:"attempts"`
	LastAttempt *time.Time         `json:"last_attempt,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// OutboxListResponse representa a listagem de mensagens com o total no status
type OutboxListResponse struct {
	Total    int                     `json:"total"`
	Messages []OutboxMessageResponse `json:"messages"`
}

// ToOutboxMessageResponses converte as mensagens para a resposta da API
func ToOutboxMessageResponses(messages []*outbox.Message) []OutboxMessageResponse {
	responses := make([]OutboxMessageResponse, 0, len(messages))

	for _, m := range messages {
		responses = append(responses, OutboxMessageResponse{
			ID:          m.ID,
			Type:        m.Type,
			Payload:     m.Payload,
			Status:      m.Status,
			Attempts:    m.Attempts,
			LastAttempt: m.LastAttempt,
			CreatedAt:   m.CreatedAt,
		})
	}

	return responses
}
