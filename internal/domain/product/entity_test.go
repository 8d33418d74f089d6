package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Dom Casmurro", "9788535910663", "LIV-001", 20, 45, 10, 3, "branch-1")

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Dom Casmurro", p.Name)
	assert.Equal(t, "LIV-001", p.InternalCode)
	assert.Equal(t, 10.0, p.Stock)
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("", "", "", 0, 0, 0, 0, "branch-1")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Caneta", "", "", 0, 0, 0, 0, "")
	assert.ErrorIs(t, err, ErrEmptyBranchID)

	_, err = NewProduct("Caneta", "", "", -1, 0, 0, 0, "branch-1")
	assert.ErrorIs(t, err, ErrNegativeCost)

	_, err = NewProduct("Caneta", "", "", 0, -1, 0, 0, "branch-1")
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("Caneta", "", "", 0, 0, 0, -1, "branch-1")
	assert.ErrorIs(t, err, ErrNegativeMinimum)
}

func TestBelowMinimum(t *testing.T) {
	p := &Product{Stock: 5, MinStock: 5}
	assert.True(t, p.BelowMinimum(), "estoque igual ao mínimo dispara o alerta")

	p.Stock = 5.5
	assert.False(t, p.BelowMinimum())

	p.Stock = -2
	assert.True(t, p.BelowMinimum())
}
