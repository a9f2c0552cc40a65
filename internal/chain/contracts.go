package chain

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

const (
	ContractUserManagement   = "userManagement"
	ContractBattleManagement = "battleManagement"
	ContractSeasonManagement = "seasonManagement"
	ContractMoonsters        = "moonsters"
	ContractERC20            = "erc20"
)

var (
	ErrEmptyResult     = errors.New("contract call returned no data")
	ErrUnknownLog      = errors.New("log does not belong to contract")
	ErrUnknownContract = errors.New("unknown contract")
	ErrDecode          = errors.New("failed to decode contract output")
)

// Contract binds a parsed ABI to a deployed address.
type Contract struct {
	Name    string
	Address common.Address
	ABI     abi.ABI
}

func NewContract(name string, address common.Address, abiJSON string) (*Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s ABI", name)
	}

	return &Contract{
		Name:    name,
		Address: address,
		ABI:     parsed,
	}, nil
}

// Pack encodes a call to method with args.
func (c *Contract) Pack(method string, args ...interface{}) ([]byte, error) {
	data, err := c.ABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pack %s.%s", c.Name, method)
	}

	return data, nil
}

// Call executes a read-only call against the latest block and returns the unpacked outputs.
func (c *Contract) Call(ctx context.Context, caller Caller, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	to := c.Address
	res, err := caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s.%s", c.Name, method)
	}

	if len(res) == 0 {
		return nil, errors.Wrapf(ErrEmptyResult, "%s.%s at %s", c.Name, method, c.Address.Hex())
	}

	out, err := c.ABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%s.%s: %v", c.Name, method, err)
	}

	return out, nil
}

// EventID returns the topic hash of the named event or the zero hash if the ABI does not declare it.
func (c *Contract) EventID(name string) common.Hash {
	if ev, ok := c.ABI.Events[name]; ok {
		return ev.ID
	}

	return common.Hash{}
}

// Event is a decoded log entry. Fields holds both indexed and non-indexed arguments by ABI name.
type Event struct {
	Name     string
	Contract string
	TxHash   common.Hash
	Index    uint
	Fields   map[string]interface{}
}

// BigInt returns the named uint field or zero if absent.
func (e Event) BigInt(name string) *big.Int {
	if v, ok := e.Fields[name].(*big.Int); ok && v != nil {
		return v
	}

	return new(big.Int)
}

// Address returns the named address field or the zero address if absent.
func (e Event) Address(name string) common.Address {
	if v, ok := e.Fields[name].(common.Address); ok {
		return v
	}

	return common.Address{}
}

// DecodeLog decodes lg if it was emitted by this contract and matches a declared event.
func (c *Contract) DecodeLog(lg *types.Log) (*Event, error) {
	if lg == nil || lg.Address != c.Address || len(lg.Topics) == 0 {
		return nil, ErrUnknownLog
	}

	ev, err := c.ABI.EventByID(lg.Topics[0])
	if err != nil {
		return nil, ErrUnknownLog
	}

	fields := make(map[string]interface{}, len(ev.Inputs))
	if err := ev.Inputs.UnpackIntoMap(fields, lg.Data); err != nil {
		return nil, errors.Wrapf(err, "failed to unpack %s data", ev.Name)
	}

	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	if err := abi.ParseTopicsIntoMap(fields, indexed, lg.Topics[1:]); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s topics", ev.Name)
	}

	return &Event{
		Name:     ev.Name,
		Contract: c.Name,
		TxHash:   lg.TxHash,
		Index:    lg.Index,
		Fields:   fields,
	}, nil
}

// DecodeEvents decodes every log of the receipt emitted by this contract. Logs of other
// contracts and undecodable logs are skipped.
func (c *Contract) DecodeEvents(receipt *types.Receipt) []Event {
	if receipt == nil {
		return nil
	}

	events := make([]Event, 0, len(receipt.Logs))
	for _, lg := range receipt.Logs {
		ev, err := c.DecodeLog(lg)
		if err != nil {
			continue
		}
		events = append(events, *ev)
	}

	return events
}

// Contracts is the registry of every contract the service talks to.
type Contracts struct {
	UserManagement   *Contract
	BattleManagement *Contract
	SeasonManagement *Contract
	Moonsters        *Contract
	DefaultToken     common.Address

	erc20 abi.ABI
}

func NewContracts(cfg config.Chain) (*Contracts, error) {
	userManagement, err := NewContract(ContractUserManagement, common.HexToAddress(cfg.UserManagement), UserManagementABI)
	if err != nil {
		return nil, err
	}

	battleManagement, err := NewContract(ContractBattleManagement, common.HexToAddress(cfg.BattleManagement), BattleManagementABI)
	if err != nil {
		return nil, err
	}

	seasonManagement, err := NewContract(ContractSeasonManagement, common.HexToAddress(cfg.SeasonManagement), SeasonManagementABI)
	if err != nil {
		return nil, err
	}

	moonsters, err := NewContract(ContractMoonsters, common.HexToAddress(cfg.Moonsters), MoonstersABI)
	if err != nil {
		return nil, err
	}

	erc20, err := abi.JSON(strings.NewReader(ERC20ABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse erc20 ABI")
	}

	contracts := &Contracts{
		UserManagement:   userManagement,
		BattleManagement: battleManagement,
		SeasonManagement: seasonManagement,
		Moonsters:        moonsters,
		erc20:            erc20,
	}

	if len(cfg.DefaultToken) > 0 {
		contracts.DefaultToken = common.HexToAddress(cfg.DefaultToken)
	}

	return contracts, nil
}

// ERC20 binds the token ABI to address.
func (c *Contracts) ERC20(address common.Address) *Contract {
	return &Contract{
		Name:    ContractERC20,
		Address: address,
		ABI:     c.erc20,
	}
}

// ByName resolves one of the managed contracts by its registry name.
func (c *Contracts) ByName(name string) (*Contract, error) {
	switch name {
	case ContractUserManagement:
		return c.UserManagement, nil
	case ContractBattleManagement:
		return c.BattleManagement, nil
	case ContractSeasonManagement:
		return c.SeasonManagement, nil
	case ContractMoonsters:
		return c.Moonsters, nil
	default:
		return nil, errors.Wrap(ErrUnknownContract, name)
	}
}
