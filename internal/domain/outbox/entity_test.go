package outbox

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	m, err := NewMessage(TypeWhatsApp, map[string]string{"msg": "olá"})

	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, TypeWhatsApp, m.Type)
	assert.Equal(t, StatusPending, m.Status)
	assert.Equal(t, 0, m.Attempts)
	assert.Nil(t, m.LastAttempt)
}

func TestNewMessageRejectsUnknownType(t *testing.T) {
	_, err := NewMessage(MessageType("SMS"), map[string]string{"msg": "olá"})
	assert.ErrorIs(t, err, ErrInvalidMessageType)
}

func TestNewMessageRejectsNilPayload(t *testing.T) {
	_, err := NewMessage(TypeWhatsApp, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestNewLowStockMessage(t *testing.T) {
	m, err := NewLowStockMessage("product-1", "Dom Casmurro", 2, 5)

	require.NoError(t, err)
	assert.Equal(t, TypeWhatsApp, m.Type)
	assert.Equal(t, StatusPending, m.Status)

	var payload LowStockPayload
	require.NoError(t, json.Unmarshal(m.Payload, &payload))
	assert.Equal(t, "product-1", payload.ProductID)
	assert.Equal(t, "Dom Casmurro", payload.ProductName)
	assert.Equal(t, 2.0, payload.Stock)
	assert.Equal(t, 5.0, payload.MinStock)
	assert.Equal(t, "Estoque baixo: Dom Casmurro. Restam 2", payload.Msg)
}

func TestNewLowStockMessageNegativeStock(t *testing.T) {
	// Estoque pode ficar negativo; o alerta reporta o valor como está
	m, err := NewLowStockMessage("product-1", "Caneta Azul", -1.5, 0)

	require.NoError(t, err)

	var payload LowStockPayload
	require.NoError(t, json.Unmarshal(m.Payload, &payload))
	assert.Equal(t, -1.5, payload.Stock)
	assert.Equal(t, "Estoque baixo: Caneta Azul. Restam -1.5", payload.Msg)
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusSent.IsValid())
	assert.True(t, StatusFailed.IsValid())
	assert.False(t, Status("DELIVERED").IsValid())
}
