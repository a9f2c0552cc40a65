package chain

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNoRPCAvailable = errors.New("all RPC clients are unavailable")

// Caller performs read-only contract calls.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// ReceiptFetcher returns the receipt of a mined transaction or ethereum.NotFound.
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Backend is the chain surface a transacting wallet needs.
type Backend interface {
	Caller
	ReceiptFetcher
	ChainID(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// RPCClient wraps one ethclient per configured URL and fails over to the next
// URL whenever the current one does not answer a health check.
type RPCClient struct {
	urls    []string
	mu      sync.Mutex
	clients []*ethclient.Client
	current int
}

var _ Backend = (*RPCClient)(nil)

func NewRPCClient(urls []string) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, len(urls))
	connected := 0
	for i, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().Str("url", url).Err(err).Msg("Failed to connect to RPC node, will retry on use")
			continue
		}
		clients[i] = client
		connected++
	}

	if connected == 0 {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    urls,
		clients: clients,
	}, nil
}

func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, client := range c.clients {
		if client != nil {
			client.Close()
			c.clients[i] = nil
		}
	}
}

func (c *RPCClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	res, err := client.CallContract(ctx, msg, blockNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call contract")
	}

	return res, nil
}

func (c *RPCClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction receipt")
	}

	return receipt, nil
}

func (c *RPCClient) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return chainID, nil
}

func (c *RPCClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	header, err := client.HeaderByNumber(ctx, number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get block header")
	}

	return header, nil
}

func (c *RPCClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, err
	}

	nonce, err := client.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

// SuggestGasTipCap suggests the EIP-1559 priority fee.
func (c *RPCClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	tipCap, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	return tipCap, nil
}

// EstimateGas also acts as the simulation step: a call that would revert fails here
// with the revert reason in the error message.
func (c *RPCClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, err
	}

	gas, err := client.EstimateGas(ctx, msg)
	if err != nil {
		return 0, errors.Wrap(err, "failed to estimate gas")
	}

	return gas, nil
}

func (c *RPCClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	client, err := c.getClient(ctx)
	if err != nil {
		return err
	}

	if err := client.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// getClient returns the first healthy client, starting at the last one that worked.
// Clients that failed to dial are redialed on the way.
func (c *RPCClient) getClient(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < len(c.clients); i++ {
		idx := (c.current + i) % len(c.clients)

		if c.clients[idx] == nil {
			client, err := ethclient.DialContext(ctx, c.urls[idx])
			if err != nil {
				log.Warn().Str("url", c.urls[idx]).Err(err).Msg("Failed to redial RPC node")
				continue
			}
			c.clients[idx] = client
		}

		if _, err := c.clients[idx].ChainID(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, errors.Wrap(ctx.Err(), "context done while selecting RPC client")
			}

			log.Warn().Str("url", c.urls[idx]).Err(err).Msg("RPC client health check failed, trying next node")
			continue
		}

		if idx != c.current {
			log.Info().Str("url", c.urls[idx]).Msg("Switched to RPC node")
			c.current = idx
		}

		return c.clients[idx], nil
	}

	return nil, ErrNoRPCAvailable
}
