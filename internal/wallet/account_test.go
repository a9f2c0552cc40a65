package wallet_test

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet/keystore"
)

//nolint:dupword
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type fakeBackend struct {
	chainID     int64
	nonce       uint64
	estimateErr error
	chainIDHits int
	sent        []*types.Transaction
}

func (b *fakeBackend) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return nil, nil
}

func (b *fakeBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, ethereum.NotFound
}

func (b *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	b.chainIDHits++
	return big.NewInt(b.chainID), nil
}

func (b *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: big.NewInt(1_000)}, nil
}

func (b *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return b.nonce, nil
}

func (b *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(10), nil
}

func (b *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	if b.estimateErr != nil {
		return 0, b.estimateErr
	}
	return 90_000, nil
}

func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.sent = append(b.sent, tx)
	b.nonce++
	return nil
}

func TestOpenDisabledIsDisconnected(t *testing.T) {
	backend := &fakeBackend{chainID: 4202}

	account, err := wallet.Open(config.Wallet{Enabled: false}, backend)
	require.NoError(t, err)

	assert.False(t, account.Connected())
	assert.Equal(t, common.Address{}, account.Address())

	_, err = account.Send(context.Background(), common.HexToAddress("0x01"), nil)
	assert.ErrorIs(t, err, wallet.ErrNotConnected)
	assert.Empty(t, backend.sent)
}

func TestImportOpenAndSend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.json")

	address, err := wallet.Import(path, testMnemonic, "hunter2", "", keystore.LightScryptParams())
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", address)

	backend := &fakeBackend{chainID: 4202, nonce: 7}
	account, err := wallet.Open(config.Wallet{Enabled: true, KeystorePath: path, Password: "hunter2"}, backend)
	require.NoError(t, err)
	require.True(t, account.Connected())
	assert.Equal(t, address, account.Address().Hex())

	id, err := account.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4202), id)

	to := common.HexToAddress("0x1000000000000000000000000000000000000001")
	hash, err := account.Send(context.Background(), to, []byte{0xde, 0xad})
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)

	tx := backend.sent[0]
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(90_000), tx.Gas())
	assert.Equal(t, big.NewInt(2_010), tx.GasFeeCap())
	assert.Equal(t, big.NewInt(10), tx.GasTipCap())
	assert.Equal(t, &to, tx.To())
	assert.Equal(t, 1, backend.chainIDHits)

	sender, err := types.Sender(types.NewLondonSigner(big.NewInt(4202)), tx)
	require.NoError(t, err)
	assert.Equal(t, account.Address(), sender)
}

func TestOpenWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.json")
	_, err := wallet.Import(path, testMnemonic, "hunter2", "", keystore.LightScryptParams())
	require.NoError(t, err)

	_, err = wallet.Open(config.Wallet{Enabled: true, KeystorePath: path, Password: "nope"}, &fakeBackend{})
	assert.ErrorIs(t, err, keystore.ErrWrongPassword)
}

func TestImportRejectsShortMnemonic(t *testing.T) {
	_, err := wallet.Import(filepath.Join(t.TempDir(), "k.json"), "abandon about", "pw", "", keystore.LightScryptParams())
	assert.ErrorIs(t, err, wallet.ErrInvalidMnemonic)
}

func TestSendRejectedAndSimulationFailure(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	backend := &fakeBackend{chainID: 4202}
	account := wallet.NewAccount(backend, key).WithApprover(func(context.Context, common.Address, []byte) (bool, error) {
		return false, nil
	})

	_, err = account.Send(context.Background(), common.HexToAddress("0x01"), nil)
	assert.ErrorIs(t, err, wallet.ErrRejected)

	backend.estimateErr = errors.New("execution reverted: Round is full")
	account = wallet.NewAccount(backend, key)

	_, err = account.Send(context.Background(), common.HexToAddress("0x01"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Round is full")
	assert.Empty(t, backend.sent)
}
