// Package chaintest provides in-memory stand-ins for the chain backend used in tests.
package chaintest

import (
	"context"
	"encoding/hex"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

var ErrNoResponse = errors.New("chaintest: no response registered")

// Well known addresses used across tests.
var (
	UserManagementAddress   = common.HexToAddress("0x1000000000000000000000000000000000000001")
	BattleManagementAddress = common.HexToAddress("0x1000000000000000000000000000000000000002")
	SeasonManagementAddress = common.HexToAddress("0x1000000000000000000000000000000000000003")
	MoonstersAddress        = common.HexToAddress("0x1000000000000000000000000000000000000004")
	TokenAddress            = common.HexToAddress("0x2000000000000000000000000000000000000001")
	PlayerAddress           = common.HexToAddress("0x3000000000000000000000000000000000000001")
)

// ChainConfig returns a chain config pointing at the well known addresses.
func ChainConfig() config.Chain {
	return config.Chain{
		RPCURLs:          []string{"http://localhost:8545"},
		ExpectedChainID:  config.LiskSepoliaChainID,
		UserManagement:   UserManagementAddress.Hex(),
		BattleManagement: BattleManagementAddress.Hex(),
		SeasonManagement: SeasonManagementAddress.Hex(),
		Moonsters:        MoonstersAddress.Hex(),
		DefaultToken:     TokenAddress.Hex(),
	}
}

// Contracts returns the registry for ChainConfig.
func Contracts(t testing.TB) *chain.Contracts {
	t.Helper()

	contracts, err := chain.NewContracts(ChainConfig())
	if err != nil {
		t.Fatalf("failed to build contracts: %v", err)
	}

	return contracts
}

type response struct {
	data []byte
	err  error
}

// Caller answers CallContract from registered responses. Exact calldata matches win over
// selector-only matches.
type Caller struct {
	t     testing.TB
	mu    sync.Mutex
	exact map[string]response
	any   map[string]response
	calls int
}

func NewCaller(t testing.TB) *Caller {
	t.Helper()

	return &Caller{
		t:     t,
		exact: make(map[string]response),
		any:   make(map[string]response),
	}
}

func selectorKey(to common.Address, data []byte) string {
	if len(data) > 4 {
		data = data[:4]
	}

	return to.Hex() + ":" + hex.EncodeToString(data)
}

func exactKey(to common.Address, data []byte) string {
	return to.Hex() + ":" + hex.EncodeToString(data)
}

func (c *Caller) pack(contract *chain.Contract, method string, outputs []interface{}) []byte {
	c.t.Helper()

	m, ok := contract.ABI.Methods[method]
	if !ok {
		c.t.Fatalf("unknown method %s.%s", contract.Name, method)
	}

	data, err := m.Outputs.Pack(outputs...)
	if err != nil {
		c.t.Fatalf("failed to pack %s.%s outputs: %v", contract.Name, method, err)
	}

	return data
}

// Respond registers outputs for method called with exactly args.
func (c *Caller) Respond(contract *chain.Contract, method string, args []interface{}, outputs ...interface{}) {
	c.t.Helper()

	input, err := contract.Pack(method, args...)
	if err != nil {
		c.t.Fatalf("failed to pack %s.%s input: %v", contract.Name, method, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.exact[exactKey(contract.Address, input)] = response{data: c.pack(contract, method, outputs)}
}

// RespondAny registers outputs for method regardless of its arguments.
func (c *Caller) RespondAny(contract *chain.Contract, method string, outputs ...interface{}) {
	c.t.Helper()

	m := contract.ABI.Methods[method]

	c.mu.Lock()
	defer c.mu.Unlock()
	c.any[selectorKey(contract.Address, m.ID)] = response{data: c.pack(contract, method, outputs)}
}

// RespondRaw registers raw return data for method regardless of its arguments.
func (c *Caller) RespondRaw(contract *chain.Contract, method string, data []byte) {
	m := contract.ABI.Methods[method]

	c.mu.Lock()
	defer c.mu.Unlock()
	c.any[selectorKey(contract.Address, m.ID)] = response{data: data}
}

// Fail makes every call of method return err.
func (c *Caller) Fail(contract *chain.Contract, method string, err error) {
	m := contract.ABI.Methods[method]

	c.mu.Lock()
	defer c.mu.Unlock()
	c.any[selectorKey(contract.Address, m.ID)] = response{err: err}
}

func (c *Caller) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

func (c *Caller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++

	if msg.To == nil {
		return nil, ErrNoResponse
	}

	if res, ok := c.exact[exactKey(*msg.To, msg.Data)]; ok {
		return res.data, res.err
	}

	if res, ok := c.any[selectorKey(*msg.To, msg.Data)]; ok {
		return res.data, res.err
	}

	return nil, errors.Wrapf(ErrNoResponse, "%s", selectorKey(*msg.To, msg.Data))
}

// EventLog builds a log as emitted by contract for the named event. Indexed arguments become
// topics; the remaining ones are ABI encoded into the data section in declaration order.
func EventLog(t testing.TB, contract *chain.Contract, name string, args map[string]interface{}) *types.Log {
	t.Helper()

	ev, ok := contract.ABI.Events[name]
	if !ok {
		t.Fatalf("unknown event %s.%s", contract.Name, name)
	}

	topics := []common.Hash{ev.ID}
	values := make([]interface{}, 0, len(ev.Inputs))

	for _, input := range ev.Inputs {
		value, ok := args[input.Name]
		if !ok {
			t.Fatalf("missing argument %s for event %s", input.Name, name)
		}

		if !input.Indexed {
			values = append(values, value)
			continue
		}

		switch v := value.(type) {
		case common.Address:
			topics = append(topics, common.BytesToHash(v.Bytes()))
		case *big.Int:
			topics = append(topics, common.BigToHash(v))
		default:
			t.Fatalf("unsupported indexed argument type %T", value)
		}
	}

	data, err := ev.Inputs.NonIndexed().Pack(values...)
	if err != nil {
		t.Fatalf("failed to pack %s data: %v", name, err)
	}

	return &types.Log{
		Address: contract.Address,
		Topics:  topics,
		Data:    data,
	}
}

// Receipt wraps logs in a receipt with the given status.
func Receipt(txHash common.Hash, status uint64, logs ...*types.Log) *types.Receipt {
	for i, lg := range logs {
		lg.TxHash = txHash
		lg.Index = uint(i)
	}

	return &types.Receipt{
		Status: status,
		TxHash: txHash,
		Logs:   logs,
	}
}

// Backend is a read-only chain: calls go to the embedded Caller, receipts are never found and
// every write fails.
type Backend struct {
	*Caller
	NetworkID int64
}

var _ chain.Backend = (*Backend)(nil)

func NewBackend(t testing.TB) *Backend {
	t.Helper()

	return &Backend{
		Caller:    NewCaller(t),
		NetworkID: config.LiskSepoliaChainID,
	}
}

func (b *Backend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, ethereum.NotFound
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(b.NetworkID), nil
}

func (b *Backend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(1)}, nil
}

func (b *Backend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, nil
}

func (b *Backend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (b *Backend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 0, errors.Wrap(ErrNoResponse, "read-only backend")
}

func (b *Backend) SendTransaction(context.Context, *types.Transaction) error {
	return errors.Wrap(ErrNoResponse, "read-only backend")
}
