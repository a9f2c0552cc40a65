package action

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

type Config struct {
	ExpectedChainID int64
	ApproveTimeout  time.Duration
	CaptureTimeout  time.Duration
	EvolveTimeout   time.Duration
	JoinTimeout     time.Duration
	SubmitTimeout   time.Duration
	Retry           chain.RetryPolicy
}

func NewConfig(chainCfg config.Chain, cfg config.Orchestrator) Config {
	return Config{
		ExpectedChainID: chainCfg.ExpectedChainID,
		ApproveTimeout:  cfg.ApproveTimeout,
		CaptureTimeout:  cfg.CaptureTimeout,
		EvolveTimeout:   cfg.EvolveTimeout,
		JoinTimeout:     cfg.JoinTimeout,
		SubmitTimeout:   cfg.SubmitTimeout,
		Retry: chain.RetryPolicy{
			InitialBackoff: cfg.InitialBackoff,
			MaxBackoff:     cfg.MaxBackoff,
			Multiplier:     2,
			MaxAttempts:    cfg.MaxAttempts,
		},
	}
}

type Deps struct {
	Wallet    Wallet
	Reads     Reads
	Signer    signature.Service
	Receipts  chain.ReceiptFetcher
	Contracts *chain.Contracts
	Localizer Localizer
	Notifier  Notifier
	Navigator Navigator
	Recorder  Recorder
	Observer  Observer
}

// Orchestrator sequences approve, act and receipt interpretation for one player wallet.
// Exactly one flow runs at a time.
type Orchestrator struct {
	cfg  Config
	deps Deps

	mu       sync.Mutex
	step     Step
	pending  PendingTransaction
	busy     bool
	evolving bool
}

func NewOrchestrator(cfg Config, deps Deps) (*Orchestrator, error) {
	switch {
	case deps.Wallet == nil:
		return nil, errors.New("orchestrator requires a wallet")
	case deps.Reads == nil:
		return nil, errors.New("orchestrator requires chain reads")
	case deps.Signer == nil:
		return nil, errors.New("orchestrator requires a signer")
	case deps.Receipts == nil:
		return nil, errors.New("orchestrator requires a receipt fetcher")
	case deps.Contracts == nil:
		return nil, errors.New("orchestrator requires contracts")
	case deps.Localizer == nil:
		return nil, errors.New("orchestrator requires a localizer")
	}

	if deps.Notifier == nil {
		deps.Notifier = LogNotifier{}
	}
	if deps.Navigator == nil {
		deps.Navigator = LogNavigator{}
	}
	if deps.Recorder == nil {
		deps.Recorder = NopRecorder{}
	}
	if deps.Observer == nil {
		deps.Observer = NopObserver{}
	}

	return &Orchestrator{cfg: cfg, deps: deps}, nil
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	return State{
		Step:     o.step,
		Pending:  o.pending,
		Busy:     o.busy,
		Evolving: o.evolving,
	}
}

// Wallet returns the account flows are sent from.
func (o *Orchestrator) Wallet() Wallet {
	return o.deps.Wallet
}

// acquire claims the orchestrator for flow. It returns a terminal result when the flow may not start.
func (o *Orchestrator) acquire(ctx context.Context, flow Flow, name string) *Result {
	o.mu.Lock()
	status := Status("")
	switch {
	case flow == FlowEvolve && o.evolving:
		status = StatusIgnored
	case o.busy:
		status = StatusBusy
	default:
		o.busy = true
		o.evolving = flow == FlowEvolve
	}
	o.mu.Unlock()

	if len(status) == 0 {
		return nil
	}

	res := &Result{Flow: flow, Name: name, Status: status, Step: o.State().Step}
	if status == StatusBusy {
		res.Message = o.deps.Localizer.Message("busy", nil)
		o.deps.Notifier.Toast(ctx, Toast{Level: ToastError, Message: res.Message})
	}

	o.deps.Observer.FlowFinished(flow, status, KindNone)

	return res
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.busy = false
	o.evolving = false
}

func (o *Orchestrator) setStep(ctx context.Context, res *Result, to Step) {
	o.mu.Lock()
	from := o.step
	if !IsTransitionAllowed(from, to) {
		o.mu.Unlock()
		util.LogFromContext(ctx).Error().Err(ErrInvalidTransition).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Refusing step transition")
		return
	}
	o.step = to
	hash := o.pending.Hash
	o.mu.Unlock()

	res.Step = to
	res.Steps = append(res.Steps, to)
	o.deps.Observer.StepChanged(res.Flow, to)

	if err := o.deps.Recorder.Step(ctx, res.FlowID, to, hash); err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Str("flowId", res.FlowID).Msg("Failed to journal step")
	}
}

func (o *Orchestrator) setPending(step Step, hash *common.Hash) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.pending = PendingTransaction{Hash: hash, Step: step}
}

func (o *Orchestrator) clearPending() {
	o.setPending(StepIdle, nil)
}

// checkWallet verifies connection and network. It never touches the network when disconnected.
func (o *Orchestrator) checkWallet(ctx context.Context) *Error {
	if !o.deps.Wallet.Connected() {
		return newError(KindWalletNotConnected, nil, nil)
	}

	chainID, err := o.deps.Wallet.ChainID(ctx)
	if err != nil {
		return Classify(errors.Wrap(err, "failed to read wallet chain ID"))
	}

	if chainID != o.cfg.ExpectedChainID {
		return newError(KindWrongNetwork, nil, map[string]interface{}{
			"Expected": o.cfg.ExpectedChainID,
			"Actual":   chainID,
		})
	}

	return nil
}

// reject ends a flow whose preconditions failed. The step stays idle and nothing was written.
func (o *Orchestrator) reject(ctx context.Context, res *Result, err *Error) *Result {
	res.Status = StatusRejected
	res.Kind = err.Kind
	res.Message = o.deps.Localizer.Message(string(err.Kind), err.Data)

	util.LogFromContext(ctx).Debug().
		Str("flow", string(res.Flow)).
		Str("kind", string(err.Kind)).
		Err(err.Err).
		Msg("Flow precondition failed")

	o.deps.Notifier.Toast(ctx, Toast{Level: ToastError, Message: res.Message})
	o.deps.Observer.FlowFinished(res.Flow, res.Status, res.Kind)

	return res
}

func (o *Orchestrator) begin(ctx context.Context, res *Result, targets []int64) {
	id, err := o.deps.Recorder.Begin(ctx, res.Flow, o.deps.Wallet.Address(), targets)
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Str("flow", string(res.Flow)).Msg("Failed to journal flow start")
		return
	}

	res.FlowID = id
}

func (o *Orchestrator) finish(ctx context.Context, res *Result) *Result {
	if err := o.deps.Recorder.Finish(ctx, res.FlowID, res); err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Str("flowId", res.FlowID).Msg("Failed to journal flow result")
	}

	o.deps.Observer.FlowFinished(res.Flow, res.Status, res.Kind)

	return res
}

// wait blocks until txHash is mined, the timeout passes or the retry policy gives up.
func (o *Orchestrator) wait(ctx context.Context, flow Flow, txHash common.Hash, timeout time.Duration) (*types.Receipt, error) {
	start := time.Now()
	receipt, err := chain.WaitForReceipt(ctx, o.deps.Receipts, txHash, timeout, o.cfg.Retry)
	o.deps.Observer.ReceiptWaited(flow, time.Since(start))

	return receipt, err
}

// send submits data to `to` and waits for a successful receipt, tracking it as pending for step.
func (o *Orchestrator) send(ctx context.Context, step Step, flow Flow, to common.Address, data []byte, timeout time.Duration) (common.Hash, *types.Receipt, error) {
	hash, err := o.deps.Wallet.Send(ctx, to, data)
	if err != nil {
		return common.Hash{}, nil, err
	}

	o.setPending(step, &hash)

	receipt, err := o.wait(ctx, flow, hash, timeout)
	if err != nil {
		return hash, nil, err
	}

	return hash, receipt, nil
}

func displayName(name string, id int64) string {
	if len(name) > 0 {
		return name
	}

	return "#" + strconv.FormatInt(id, 10)
}
