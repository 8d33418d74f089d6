package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Maria Souza", "11999990000", 500, "branch-1")

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Maria Souza", c.Name)
	assert.Equal(t, 500.0, c.CreditLimit)
	assert.Zero(t, c.CurrentBalance, "cliente novo começa sem dívida")
}

func TestNewCustomerValidation(t *testing.T) {
	_, err := NewCustomer("", "", 0, "branch-1")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCustomer("Maria", "", 0, "")
	assert.ErrorIs(t, err, ErrEmptyBranchID)

	_, err = NewCustomer("Maria", "", -10, "branch-1")
	assert.ErrorIs(t, err, ErrNegativeCreditLimit)
}
