package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []Item {
	return []Item{
		{ProductID: "product-1", Quantity: 2, UnitPrice: 29.95},
		{ProductID: "product-2", Quantity: 1, UnitPrice: 15.00},
	}
}

func TestNewSale(t *testing.T) {
	s, err := NewSale("caixa-01", 42, "branch-1", "user-1", "", 74.90, PaymentCash, validItems())

	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, int64(42), s.ExternalID)
	assert.Equal(t, "caixa-01", s.StationID)
	assert.Equal(t, FiscalPending, s.FiscalStatus)
	assert.Empty(t, s.CAE)

	require.Len(t, s.Items, 2)
	for _, item := range s.Items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, s.ID, item.SaleID)
	}
}

func TestNewSaleValidation(t *testing.T) {
	tests := []struct {
		name       string
		stationID  string
		externalID int64
		branchID   string
		userID     string
		total      float64
		method     PaymentMethod
		items      []Item
		wantErr    error
	}{
		{"estação vazia", "", 1, "b", "u", 10, PaymentCash, validItems(), ErrEmptyStationID},
		{"sequencial zero", "caixa-01", 0, "b", "u", 10, PaymentCash, validItems(), ErrInvalidExternalID},
		{"sequencial negativo", "caixa-01", -3, "b", "u", 10, PaymentCash, validItems(), ErrInvalidExternalID},
		{"filial vazia", "caixa-01", 1, "", "u", 10, PaymentCash, validItems(), ErrEmptyBranchID},
		{"operador vazio", "caixa-01", 1, "b", "", 10, PaymentCash, validItems(), ErrEmptyUserID},
		{"total negativo", "caixa-01", 1, "b", "u", -1, PaymentCash, validItems(), ErrInvalidTotal},
		{"forma de pagamento desconhecida", "caixa-01", 1, "b", "u", 10, "CHEQUE", validItems(), ErrInvalidPaymentMethod},
		{"sem itens", "caixa-01", 1, "b", "u", 10, PaymentCash, nil, ErrNoItems},
		{"item sem produto", "caixa-01", 1, "b", "u", 10, PaymentCash, []Item{{Quantity: 1, UnitPrice: 1}}, ErrEmptyProductID},
		{"item com quantidade zero", "caixa-01", 1, "b", "u", 10, PaymentCash, []Item{{ProductID: "p", Quantity: 0, UnitPrice: 1}}, ErrInvalidQuantity},
		{"item com preço negativo", "caixa-01", 1, "b", "u", 10, PaymentCash, []Item{{ProductID: "p", Quantity: 1, UnitPrice: -1}}, ErrInvalidUnitPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSale(tt.stationID, tt.externalID, tt.branchID, tt.userID, "", tt.total, tt.method, tt.items)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentCard.IsValid())
	assert.True(t, PaymentTransfer.IsValid())
	assert.True(t, PaymentCredit.IsValid())
	assert.False(t, PaymentMethod("BOLETO").IsValid())
}
