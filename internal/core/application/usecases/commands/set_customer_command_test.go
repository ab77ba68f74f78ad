package commands_test

import (
	"context"
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetCustomerCommand_ValidInput(t *testing.T) {
	id := uuid.New()
	cmd, err := commands.NewSetCustomerCommand(id, "Asha", "9876543210", 4)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.SessionID())
	assert.Equal(t, "Asha", cmd.CustomerName())
	assert.Equal(t, "9876543210", cmd.Mobile())
	assert.Equal(t, 4, cmd.Table())
}

func TestNewSetCustomerCommand_MissingName(t *testing.T) {
	_, err := commands.NewSetCustomerCommand(uuid.New(), "", "9876543210", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func TestNewSetCustomerCommand_MissingMobile(t *testing.T) {
	_, err := commands.NewSetCustomerCommand(uuid.New(), "Asha", "", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMobileIsRequired)
}

func TestNewSetCustomerCommand_InvalidTable(t *testing.T) {
	_, err := commands.NewSetCustomerCommand(uuid.New(), "Asha", "9876543210", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTableIsInvalid)
}

func TestSetCustomerCommandHandler_StoresDetails(t *testing.T) {
	session := cart.NewSession()

	sessions := &MockSessionProvider{}
	sessions.On("Session", session.ID()).Return(session, nil)

	handler := commands.NewSetCustomerCommandHandler(sessions)
	cmd, err := commands.NewSetCustomerCommand(session.ID(), "Asha", "9876543210", 4)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(context.Background(), cmd))
	assert.Equal(t, "Asha", session.CustomerName())
	assert.Equal(t, "9876543210", session.Mobile())
	assert.Equal(t, 4, session.Table())
}
