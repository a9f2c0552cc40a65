package action

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
)

// OutcomeKind discriminates Outcome.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeDomainFailure
	OutcomeUnexpected
	OutcomeReverted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeDomainFailure:
		return "domainFailure"
	case OutcomeUnexpected:
		return "unexpected"
	case OutcomeReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// Outcome is what a mined action transaction did. Event is set for success and domain failure.
type Outcome struct {
	Kind  OutcomeKind
	Event *chain.Event
}

// Interpreter maps the logs of a receipt to an Outcome. Only logs emitted by Contract
// count, and when Subject is set only events whose subject field names it.
type Interpreter struct {
	Contract     *chain.Contract
	Success      string
	Failure      string
	Subject      common.Address
	SubjectField string
}

// Interpret decides the outcome of receipt. A success event wins over a failure event.
func (i Interpreter) Interpret(receipt *types.Receipt) Outcome {
	if receipt == nil {
		return Outcome{Kind: OutcomeUnexpected}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return Outcome{Kind: OutcomeReverted}
	}

	var failure *chain.Event
	for _, ev := range i.Contract.DecodeEvents(receipt) {
		if !i.concerns(ev) {
			continue
		}

		switch ev.Name {
		case i.Success:
			ev := ev
			return Outcome{Kind: OutcomeSuccess, Event: &ev}
		case i.Failure:
			if failure == nil && len(i.Failure) > 0 {
				ev := ev
				failure = &ev
			}
		}
	}

	if failure != nil {
		return Outcome{Kind: OutcomeDomainFailure, Event: failure}
	}

	return Outcome{Kind: OutcomeUnexpected}
}

func (i Interpreter) concerns(ev chain.Event) bool {
	if i.Subject == (common.Address{}) || len(i.SubjectField) == 0 {
		return true
	}

	return ev.Address(i.SubjectField) == i.Subject
}

// CaptureInterpreter reads capture receipts: IDAssigned wins, CaptureFailed is a missed roll.
func CaptureInterpreter(contracts *chain.Contracts, user common.Address) Interpreter {
	return Interpreter{
		Contract:     contracts.UserManagement,
		Success:      "IDAssigned",
		Failure:      "CaptureFailed",
		Subject:      user,
		SubjectField: "user",
	}
}

func EvolveInterpreter(contracts *chain.Contracts, user common.Address) Interpreter {
	return Interpreter{
		Contract:     contracts.UserManagement,
		Success:      "PokemonEvolved",
		Subject:      user,
		SubjectField: "user",
	}
}

func JoinInterpreter(contracts *chain.Contracts, player common.Address) Interpreter {
	return Interpreter{
		Contract:     contracts.BattleManagement,
		Success:      "PlayerJoined",
		Subject:      player,
		SubjectField: "player",
	}
}

// InterpreterFor returns the receipt interpreter of a paid flow. Submit flows have none.
func InterpreterFor(flow Flow, contracts *chain.Contracts, subject common.Address) (Interpreter, bool) {
	switch flow {
	case FlowCapture:
		return CaptureInterpreter(contracts, subject), true
	case FlowEvolve:
		return EvolveInterpreter(contracts, subject), true
	case FlowJoin:
		return JoinInterpreter(contracts, subject), true
	default:
		return Interpreter{}, false
	}
}
