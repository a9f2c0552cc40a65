package signature

import (
	"context"
	"crypto/ecdsa"
	"strings"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

var ErrSigningKeyUnset = errors.New("signing key is not configured")

type service struct {
	key      *ecdsa.PrivateKey
	address  common.Address
	clock    time2.Clock
	observer Observer
}

// NewService creates the in-process signer. An empty key yields a service whose every
// signing call fails with ErrSigningKeyUnset; a malformed key is rejected right away.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(cfg config.Signature, clock time2.Clock, observer Observer) (Service, error) {
	s := &service{
		clock:    clock,
		observer: observer,
	}

	if len(cfg.PrivateKey) == 0 {
		return s, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse signing key")
	}

	s.key = key
	s.address = crypto.PubkeyToAddress(key.PublicKey)

	return s, nil
}

// SignerAddress returns the address of the configured key or the zero address.
func SignerAddress(s Service) common.Address {
	if svc, ok := s.(*service); ok {
		return svc.address
	}

	return common.Address{}
}

func (s *service) SignCapture(ctx context.Context, req CaptureRequest) (*SignedAction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	timestamp := s.clock.Now().Unix()
	signed, err := s.sign(CaptureHash(req, timestamp), timestamp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign capture of id %d for %s", req.ID, req.User)
	}

	s.issued(ctx, KindCapture, req.User, timestamp)

	return signed, nil
}

func (s *service) SignEvolve(ctx context.Context, req EvolveRequest) (*SignedAction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	timestamp := s.clock.Now().Unix()
	signed, err := s.sign(EvolveHash(req, timestamp), timestamp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign evolution %d -> %d for %s", req.CurrentID, req.NewID, req.User)
	}

	s.issued(ctx, KindEvolve, req.User, timestamp)

	return signed, nil
}

func (s *service) sign(hash common.Hash, timestamp int64) (*SignedAction, error) {
	if s.key == nil {
		return nil, ErrSigningKeyUnset
	}

	sig, err := crypto.Sign(accounts.TextHash(hash.Bytes()), s.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign hash")
	}

	sig[recoveryIDIndex] += legacyVOffset

	return &SignedAction{
		Signature: sig,
		Timestamp: timestamp,
	}, nil
}

func (s *service) issued(ctx context.Context, kind string, user string, timestamp int64) {
	util.LogFromContext(ctx).Debug().
		Str("kind", kind).
		Str("user", user).
		Int64("timestamp", timestamp).
		Msg("Issued action signature")

	if s.observer != nil {
		s.observer.SignatureIssued(kind)
	}
}
