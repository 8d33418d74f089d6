package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("joao", RoleSeller, "branch-1")

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.True(t, u.IsActive)
	assert.Empty(t, u.PINHash)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", RoleSeller, "branch-1")
	assert.ErrorIs(t, err, ErrEmptyUsername)

	_, err = NewUser("joao", Role("gerente"), "branch-1")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = NewUser("joao", RoleSeller, "")
	assert.ErrorIs(t, err, ErrEmptyBranchID)
}

func TestSetAndCheckPIN(t *testing.T) {
	u, err := NewUser("joao", RoleSeller, "branch-1")
	require.NoError(t, err)

	require.NoError(t, u.SetPIN("1234"))
	assert.NotEmpty(t, u.PINHash)
	assert.NotEqual(t, "1234", u.PINHash, "o PIN nunca é guardado em claro")

	assert.True(t, u.CheckPIN("1234"))
	assert.False(t, u.CheckPIN("4321"))
}

func TestSetPINRejectsEmpty(t *testing.T) {
	u, err := NewUser("joao", RoleSeller, "branch-1")
	require.NoError(t, err)

	assert.ErrorIs(t, u.SetPIN(""), ErrEmptyPIN)
}
