package commands_test

import (
	"context"
	"errors"
	"testing"

	"burgercounter/internal/core/application/usecases/commands"
	"burgercounter/internal/core/domain/model/ledger"
	"burgercounter/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerUoW struct{ mock.Mock }

func (m *MockLedgerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

func TestAddLedgerMovementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddLedgerMovementCommand(
		ledger.Exit, mustMoney(t, "50.00"), "compra de pão", nil,
	)
	require.NoError(t, err)

	repo := new(MockLedgerRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLedgerMovementCommandHandler(factory)
	movementID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, movementID.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddLedgerMovementCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddLedgerMovementCommand{} // not constructed properly
	factory := new(MockLedgerUoWFactory)
	h := commands.NewAddLedgerMovementCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddLedgerMovementCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddLedgerMovementCommand(
		ledger.Entry, mustMoney(t, "25.00"), "venda no balcão", nil,
	)
	require.NoError(t, err)

	uow := new(MockLedgerUoW)
	factory := new(MockLedgerUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddLedgerMovementCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddLedgerMovementCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddLedgerMovementCommand(
		ledger.Entry, mustMoney(t, "25.00"), "venda no balcão", nil,
	)
	require.NoError(t, err)

	repo := new(MockLedgerRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Movement")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLedgerMovementCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddLedgerMovementCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddLedgerMovementCommand(
		ledger.Entry, mustMoney(t, "25.00"), "venda no balcão", nil,
	)
	require.NoError(t, err)

	repo := new(MockLedgerRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLedgerMovementCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
