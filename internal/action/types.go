package action

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
)

type CaptureRequest struct {
	ID     int64
	Chance int64
	Name   string
	Token  common.Address
}

type EvolveRequest struct {
	CurrentID int64
	NewID     int64
	Name      string
	Token     common.Address
}

type JoinRequest struct {
	RoundID    int64
	MoonsterID int64
	Token      common.Address
	Name       string
}

// SubmitRequest is a plain contract call without fee or approval.
type SubmitRequest struct {
	Contract string
	Method   string
	Args     []interface{}
	Label    string
}

// Status is how a flow ended.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	// StatusRejected means a precondition failed and nothing was written.
	StatusRejected Status = "rejected"
	StatusBusy     Status = "busy"
	// StatusIgnored is a silent no-op, e.g. evolve re-entry.
	StatusIgnored Status = "ignored"
)

// PendingTransaction is the transaction the orchestrator is currently waiting on.
type PendingTransaction struct {
	Hash *common.Hash `json:"hash,omitempty"`
	Step Step         `json:"step"`
}

// State is a snapshot of the orchestrator.
type State struct {
	Step     Step               `json:"step"`
	Pending  PendingTransaction `json:"pending"`
	Busy     bool               `json:"busy"`
	Evolving bool               `json:"evolving"`
}

type Result struct {
	FlowID    string       `json:"flowId,omitempty"`
	Flow      Flow         `json:"flow"`
	Name      string       `json:"name"`
	Status    Status       `json:"status"`
	Step      Step         `json:"step"`
	Steps     []Step       `json:"steps"`
	ApproveTx *common.Hash `json:"approveTx,omitempty"`
	ActionTx  *common.Hash `json:"actionTx,omitempty"`
	Kind      ErrorKind    `json:"kind,omitempty"`
	Message   string       `json:"message,omitempty"`
	URL       string       `json:"url,omitempty"`
	Event     *chain.Event `json:"-"`
}

func (r *Result) Succeeded() bool {
	return r.Status == StatusSucceeded
}

type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

type Toast struct {
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}

// Wallet is the player account flows are signed and sent from.
type Wallet interface {
	Connected() bool
	Address() common.Address
	ChainID(ctx context.Context) (int64, error)
	Send(ctx context.Context, to common.Address, data []byte) (common.Hash, error)
}

// Reads is the part of the chain read facade the flows depend on.
type Reads interface {
	Fees(ctx context.Context, token common.Address) (*facade.Fees, error)
	TokenDetails(ctx context.Context, token common.Address) (*facade.TokenDetails, error)
	Balance(ctx context.Context, token common.Address, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, token common.Address, owner common.Address, spender common.Address) (*big.Int, error)
	CaptureChance(ctx context.Context, id int64) (int64, error)
	InvalidateUser(ctx context.Context, user common.Address) error
	InvalidateEvolution(ctx context.Context, ids ...int64) error
}

type Notifier interface {
	Toast(ctx context.Context, toast Toast)
}

type Navigator interface {
	Navigate(ctx context.Context, url string)
}

type Localizer interface {
	Message(id string, data map[string]interface{}) string
}

// Recorder journals flows. Failures to record never fail a flow.
type Recorder interface {
	Begin(ctx context.Context, flow Flow, user common.Address, targets []int64) (string, error)
	Step(ctx context.Context, flowID string, step Step, txHash *common.Hash) error
	Finish(ctx context.Context, flowID string, result *Result) error
}

type Observer interface {
	StepChanged(flow Flow, step Step)
	FlowFinished(flow Flow, status Status, kind ErrorKind)
	ReceiptWaited(flow Flow, d time.Duration)
}
