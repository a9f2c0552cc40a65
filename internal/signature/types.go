package signature

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Service issues single-use signatures authorizing paid contract actions.
type Service interface {
	SignCapture(ctx context.Context, req CaptureRequest) (*SignedAction, error)
	SignEvolve(ctx context.Context, req EvolveRequest) (*SignedAction, error)
}

// CaptureRequest binds (user, token, chance, id, timestamp).
type CaptureRequest struct {
	User   string `json:"user"`
	Token  string `json:"token"`
	Chance int64  `json:"chance"`
	ID     int64  `json:"id"`
}

// EvolveRequest binds (user, token, currentId, newId, timestamp).
type EvolveRequest struct {
	User      string `json:"user"`
	Token     string `json:"token"`
	CurrentID int64  `json:"currentId"`
	NewID     int64  `json:"newId"`
}

// SignedAction must be consumed by exactly one transaction and is never cached.
type SignedAction struct {
	Signature hexutil.Bytes `json:"signature"`
	Timestamp int64         `json:"timestamp"`
}

const (
	KindCapture = "capture"
	KindEvolve  = "evolve"
)

// Observer is notified about every issued signature.
type Observer interface {
	SignatureIssued(kind string)
}
