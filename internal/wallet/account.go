package wallet

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet/hd"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet/keystore"
)

var (
	ErrNotConnected = errors.New("wallet not connected")
	// ErrRejected is returned when the approver declines a transaction.
	ErrRejected = errors.New("user rejected the request")
)

// Approver is asked before every transaction is signed. Returning false rejects it.
type Approver func(ctx context.Context, to common.Address, data []byte) (bool, error)

// Account is a player wallet backed by a single derived key.
type Account struct {
	backend  chain.Backend
	key      *ecdsa.PrivateKey
	address  common.Address
	approver Approver

	mu      sync.Mutex
	chainID *big.Int
}

// NewAccount wraps key. A nil key yields a disconnected account.
func NewAccount(backend chain.Backend, key *ecdsa.PrivateKey) *Account {
	a := &Account{backend: backend, key: key}
	if key != nil {
		a.address = crypto.PubkeyToAddress(key.PublicKey)
	}

	return a
}

// Open decrypts the configured keystore and derives the account key. A disabled
// wallet opens as a disconnected account.
func Open(cfg config.Wallet, backend chain.Backend) (*Account, error) {
	if !cfg.Enabled {
		return NewAccount(backend, nil), nil
	}

	file, err := keystore.Load(cfg.KeystorePath)
	if err != nil {
		return nil, err
	}

	mnemonic, err := keystore.Decrypt(file, cfg.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unlock wallet")
	}

	path := cfg.DerivationPath
	if path == "" {
		path = hd.DefaultPath
	}

	key, err := hd.DeriveKey(hd.SeedFromMnemonic(mnemonic, ""), path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive wallet key")
	}

	a := NewAccount(backend, key)
	log.Info().Str("address", a.address.Hex()).Str("path", path).Msg("Wallet unlocked")

	return a, nil
}

// WithApprover installs a confirmation hook consulted before each send.
func (a *Account) WithApprover(approver Approver) *Account {
	a.approver = approver
	return a
}

func (a *Account) Connected() bool {
	return a.key != nil
}

func (a *Account) Address() common.Address {
	return a.address
}

// ChainID returns the network the backend is connected to. The first answer is cached.
func (a *Account) ChainID(ctx context.Context) (int64, error) {
	id, err := a.networkID(ctx)
	if err != nil {
		return 0, err
	}

	return id.Int64(), nil
}

func (a *Account) networkID(ctx context.Context) (*big.Int, error) {
	a.mu.Lock()
	cached := a.chainID
	a.mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	id, err := a.backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	a.mu.Lock()
	a.chainID = id
	a.mu.Unlock()

	return id, nil
}

// Send simulates, signs and broadcasts an EIP-1559 call of data on to and
// returns the transaction hash. Sends are serialized to keep nonces ordered.
func (a *Account) Send(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	if !a.Connected() {
		return common.Hash{}, ErrNotConnected
	}

	if a.approver != nil {
		ok, err := a.approver(ctx, to, data)
		if err != nil {
			return common.Hash{}, errors.Wrap(err, "failed to confirm transaction")
		}
		if !ok {
			return common.Hash{}, ErrRejected
		}
	}

	chainID, err := a.networkID(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	nonce, err := a.backend.PendingNonceAt(ctx, a.address)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get nonce")
	}

	tipCap, err := a.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	head, err := a.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get latest header")
	}

	baseFee := head.BaseFee
	if baseFee == nil {
		baseFee = new(big.Int)
	}
	feeCap := new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), tipCap)

	// EstimateGas doubles as a simulation: a call that would revert fails here with the revert reason.
	gas, err := a.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      a.address,
		To:        &to,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Data:      data,
	})
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "transaction simulation failed")
	}

	tx := types.NewTx(&types.DynamicFeeTx{ //nolint:varnamelen
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     new(big.Int),
		Data:      data,
	})

	signed, err := types.SignTx(tx, types.NewLondonSigner(chainID), a.key)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to sign transaction")
	}

	if err := a.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to send transaction")
	}

	log.Debug().
		Str("hash", signed.Hash().Hex()).
		Str("to", to.Hex()).
		Uint64("nonce", nonce).
		Uint64("gas", gas).
		Msg("Transaction sent")

	return signed.Hash(), nil
}
