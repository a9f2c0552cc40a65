package action_test

import (
	"context"
	"encoding/hex"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain/chaintest"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/i18n"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
)

type sentTx struct {
	To   common.Address
	Data []byte
	Hash common.Hash
}

type fakeWallet struct {
	mu           sync.Mutex
	connected    bool
	address      common.Address
	chainID      int64
	chainIDCalls int
	sendErr      error
	sent         []sentTx

	// when set, Send signals entered and blocks until release is closed
	entered chan struct{}
	release chan struct{}
}

func (w *fakeWallet) Connected() bool {
	return w.connected
}

func (w *fakeWallet) Address() common.Address {
	return w.address
}

func (w *fakeWallet) ChainID(context.Context) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.chainIDCalls++
	return w.chainID, nil
}

func (w *fakeWallet) Send(_ context.Context, to common.Address, data []byte) (common.Hash, error) {
	if w.entered != nil {
		w.entered <- struct{}{}
		<-w.release
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sendErr != nil {
		return common.Hash{}, w.sendErr
	}

	hash := crypto.Keccak256Hash(to.Bytes(), data, big.NewInt(int64(len(w.sent))).Bytes())
	w.sent = append(w.sent, sentTx{To: to, Data: data, Hash: hash})

	return hash, nil
}

func (w *fakeWallet) Sent() []sentTx {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]sentTx(nil), w.sent...)
}

type fakeReads struct {
	mu          sync.Mutex
	fees        *facade.Fees
	feesErr     error
	details     *facade.TokenDetails
	balance     *big.Int
	allowance   *big.Int
	chance      int64
	calls       map[string]int
	invalidated []string
}

func (r *fakeReads) hit(method string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.calls == nil {
		r.calls = map[string]int{}
	}
	r.calls[method]++
}

func (r *fakeReads) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, n := range r.calls {
		total += n
	}

	return total
}

func (r *fakeReads) Fees(context.Context, common.Address) (*facade.Fees, error) {
	r.hit("Fees")
	return r.fees, r.feesErr
}

func (r *fakeReads) TokenDetails(_ context.Context, token common.Address) (*facade.TokenDetails, error) {
	r.hit("TokenDetails")
	return r.details, nil
}

func (r *fakeReads) Balance(context.Context, common.Address, common.Address) (*big.Int, error) {
	r.hit("Balance")
	return r.balance, nil
}

func (r *fakeReads) Allowance(context.Context, common.Address, common.Address, common.Address) (*big.Int, error) {
	r.hit("Allowance")
	return r.allowance, nil
}

func (r *fakeReads) CaptureChance(context.Context, int64) (int64, error) {
	r.hit("CaptureChance")
	return r.chance, nil
}

func (r *fakeReads) InvalidateUser(_ context.Context, user common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invalidated = append(r.invalidated, "user:"+user.Hex())
	return nil
}

func (r *fakeReads) InvalidateEvolution(_ context.Context, ids ...int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		r.invalidated = append(r.invalidated, "evolution:"+big.NewInt(id).String())
	}
	return nil
}

// fakeReceipts hands out scripted receipts in send order. A nil script entry never mines.
type fakeReceipts struct {
	mu       sync.Mutex
	script   []func(hash common.Hash) *types.Receipt
	assigned map[common.Hash]*types.Receipt
	polls    int
}

func (f *fakeReceipts) Then(build func(hash common.Hash) *types.Receipt) *fakeReceipts {
	f.script = append(f.script, build)
	return f
}

func (f *fakeReceipts) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.polls++
	if f.assigned == nil {
		f.assigned = map[common.Hash]*types.Receipt{}
	}

	receipt, ok := f.assigned[hash]
	if !ok {
		if len(f.script) == 0 {
			return nil, ethereum.NotFound
		}
		build := f.script[0]
		f.script = f.script[1:]
		if build != nil {
			receipt = build(hash)
		}
		f.assigned[hash] = receipt
	}

	if receipt == nil {
		return nil, ethereum.NotFound
	}

	return receipt, nil
}

type recordingUI struct {
	mu          sync.Mutex
	toasts      []action.Toast
	navigations []string
	steps       []action.Step
}

func (u *recordingUI) Toast(_ context.Context, toast action.Toast) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.toasts = append(u.toasts, toast)
}

func (u *recordingUI) Navigate(_ context.Context, url string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.navigations = append(u.navigations, url)
}

func (u *recordingUI) StepChanged(_ action.Flow, step action.Step) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.steps = append(u.steps, step)
}

func (u *recordingUI) FlowFinished(action.Flow, action.Status, action.ErrorKind) {}

func (u *recordingUI) ReceiptWaited(action.Flow, time.Duration) {}

func (u *recordingUI) Toasts() []action.Toast {
	u.mu.Lock()
	defer u.mu.Unlock()

	return append([]action.Toast(nil), u.toasts...)
}

type harness struct {
	t         *testing.T
	contracts *chain.Contracts
	wallet    *fakeWallet
	reads     *fakeReads
	receipts  *fakeReceipts
	ui        *recordingUI
	orch      *action.Orchestrator
}

func testConfig() action.Config {
	return action.Config{
		ExpectedChainID: config.LiskSepoliaChainID,
		ApproveTimeout:  time.Second,
		CaptureTimeout:  time.Second,
		EvolveTimeout:   time.Second,
		JoinTimeout:     time.Second,
		SubmitTimeout:   time.Second,
		Retry: chain.RetryPolicy{
			InitialBackoff: time.Millisecond,
			MaxBackoff:     2 * time.Millisecond,
			Multiplier:     2,
			MaxAttempts:    5,
		},
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signer, err := signature.NewService(config.Signature{
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(key)),
	}, time2.DefaultClock, nil)
	require.NoError(t, err)

	bundle, err := i18n.NewBundle(language.English)
	require.NoError(t, err)

	h := &harness{
		t:         t,
		contracts: chaintest.Contracts(t),
		wallet: &fakeWallet{
			connected: true,
			address:   chaintest.PlayerAddress,
			chainID:   config.LiskSepoliaChainID,
		},
		reads: &fakeReads{
			fees: &facade.Fees{
				CaptureFee: big.NewInt(100),
				EvolveFee:  big.NewInt(200),
				BattleFee:  big.NewInt(50),
			},
			details:   &facade.TokenDetails{Address: chaintest.TokenAddress, Accepted: true, Symbol: "MOON", Decimals: 18},
			balance:   big.NewInt(1_000),
			allowance: big.NewInt(1_000),
			chance:    40,
		},
		receipts: &fakeReceipts{},
		ui:       &recordingUI{},
	}

	h.orch, err = action.NewOrchestrator(testConfig(), action.Deps{
		Wallet:    h.wallet,
		Reads:     h.reads,
		Signer:    signer,
		Receipts:  h.receipts,
		Contracts: h.contracts,
		Localizer: bundle.Localizer("en"),
		Notifier:  h.ui,
		Navigator: h.ui,
		Observer:  h.ui,
	})
	require.NoError(t, err)

	return h
}

func (h *harness) approveReceipt() func(common.Hash) *types.Receipt {
	return func(hash common.Hash) *types.Receipt {
		return chaintest.Receipt(hash, types.ReceiptStatusSuccessful)
	}
}

func (h *harness) eventReceipt(contract *chain.Contract, name string, args map[string]interface{}) func(common.Hash) *types.Receipt {
	return func(hash common.Hash) *types.Receipt {
		return chaintest.Receipt(hash, types.ReceiptStatusSuccessful, chaintest.EventLog(h.t, contract, name, args))
	}
}

func (h *harness) idAssigned(id int64) func(common.Hash) *types.Receipt {
	return h.eventReceipt(h.contracts.UserManagement, "IDAssigned", map[string]interface{}{
		"user": chaintest.PlayerAddress,
		"id":   big.NewInt(id),
	})
}

func (h *harness) captureFailed(id, chance, roll int64) func(common.Hash) *types.Receipt {
	return h.eventReceipt(h.contracts.UserManagement, "CaptureFailed", map[string]interface{}{
		"user":   chaintest.PlayerAddress,
		"id":     big.NewInt(id),
		"chance": big.NewInt(chance),
		"roll":   big.NewInt(roll),
	})
}

func (h *harness) selector(tx sentTx) string {
	if len(tx.Data) < 4 {
		return ""
	}

	for _, contract := range []*chain.Contract{h.contracts.UserManagement, h.contracts.BattleManagement, h.contracts.ERC20(chaintest.TokenAddress)} {
		if method, err := contract.ABI.MethodById(tx.Data[:4]); err == nil {
			return method.Name
		}
	}

	return ""
}

func (h *harness) sentMethods() []string {
	methods := []string{}
	for _, tx := range h.wallet.Sent() {
		methods = append(methods, h.selector(tx))
	}

	return methods
}
