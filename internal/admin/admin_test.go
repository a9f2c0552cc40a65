package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/admin"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
)

var owner = common.HexToAddress("0x3000000000000000000000000000000000000001")

type stubWallet struct {
	connected bool
}

func (w stubWallet) Connected() bool                        { return w.connected }
func (w stubWallet) Address() common.Address                { return owner }
func (w stubWallet) ChainID(context.Context) (int64, error) { return 4202, nil }
func (w stubWallet) Send(context.Context, common.Address, []byte) (common.Hash, error) {
	return common.Hash{}, errors.New("not used")
}

type mockSubmitter struct {
	mock.Mock
	wallet action.Wallet
}

func (m *mockSubmitter) Submit(ctx context.Context, req action.SubmitRequest) *action.Result {
	args := m.Called(ctx, req)
	return args.Get(0).(*action.Result) //nolint:forcetypeassert
}

func (m *mockSubmitter) Wallet() action.Wallet {
	return m.wallet
}

type mockOwners struct {
	mock.Mock
}

func (m *mockOwners) IsOwner(ctx context.Context, contract string, account common.Address) (bool, error) {
	args := m.Called(ctx, contract, account)
	return args.Bool(0), args.Error(1)
}

type echoLocalizer struct{}

func (echoLocalizer) Message(id string, _ map[string]interface{}) string {
	return id
}

func TestRunAsOwner(t *testing.T) {
	req := action.TriggerPairingCall(3)

	submitter := &mockSubmitter{wallet: stubWallet{connected: true}}
	submitter.On("Submit", mock.Anything, req).Return(&action.Result{Status: action.StatusSucceeded}).Once()

	owners := &mockOwners{}
	owners.On("IsOwner", mock.Anything, chain.ContractBattleManagement, owner).Return(true, nil).Once()

	res, err := admin.NewService(submitter, owners, echoLocalizer{}).Run(t.Context(), req)
	require.NoError(t, err)
	assert.True(t, res.Succeeded())

	submitter.AssertExpectations(t)
	owners.AssertExpectations(t)
}

func TestRunAsNonOwner(t *testing.T) {
	req := action.EndSeasonCall(2)

	submitter := &mockSubmitter{wallet: stubWallet{connected: true}}
	owners := &mockOwners{}
	owners.On("IsOwner", mock.Anything, chain.ContractSeasonManagement, owner).Return(false, nil).Once()

	res, err := admin.NewService(submitter, owners, echoLocalizer{}).Run(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, action.StatusRejected, res.Status)
	assert.Equal(t, action.KindNotOwner, res.Kind)
	assert.Equal(t, "not-owner", res.Message)

	submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestRunOwnerReadFails(t *testing.T) {
	req := action.SendRewardMatchCall(3, 0)

	submitter := &mockSubmitter{wallet: stubWallet{connected: true}}
	owners := &mockOwners{}
	owners.On("IsOwner", mock.Anything, chain.ContractBattleManagement, owner).Return(false, errors.New("rpc down")).Once()

	_, err := admin.NewService(submitter, owners, echoLocalizer{}).Run(t.Context(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read owner of battleManagement")
}

func TestRunDisconnectedLeavesCheckToSubmit(t *testing.T) {
	req := action.DistributeSeasonRewardsCall(1)

	submitter := &mockSubmitter{wallet: stubWallet{connected: false}}
	submitter.On("Submit", mock.Anything, req).Return(&action.Result{
		Status: action.StatusRejected,
		Kind:   action.KindWalletNotConnected,
	}).Once()

	owners := &mockOwners{}

	res, err := admin.NewService(submitter, owners, echoLocalizer{}).Run(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, action.KindWalletNotConnected, res.Kind)

	owners.AssertNotCalled(t, "IsOwner", mock.Anything, mock.Anything, mock.Anything)
}
