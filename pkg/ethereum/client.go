package ethereum

import (
	"context"
	"fmt"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/pkg/config"
)

// Client represents an Ethereum client. Receipts and headers go over the
// HTTP endpoint, log subscriptions over the WebSocket endpoint.
type Client struct {
	config   *config.EthereumConfig
	client   *ethclient.Client
	wsClient *ethclient.Client
	logger   *zap.Logger

	poolAddress common.Address
	swapTopic   common.Hash
}

// NewClient creates a new Ethereum client
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	var wsClient *ethclient.Client
	if cfg.WSURL != "" {
		wsClient, err = ethclient.Dial(cfg.WSURL)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to Ethereum WebSocket: %w", err)
		}
	}

	c := &Client{
		config:      cfg,
		client:      client,
		wsClient:    wsClient,
		logger:      logger,
		poolAddress: common.HexToAddress(cfg.PoolAddress),
		swapTopic:   common.HexToHash(cfg.SwapTopic),
	}

	logger.Info("Connected to Ethereum",
		zap.String("rpc_url", cfg.RPCURL),
		zap.Bool("websocket", wsClient != nil),
		zap.String("pool_address", c.poolAddress.Hex()),
		zap.String("swap_topic", c.swapTopic.Hex()))

	return c, nil
}

// Close closes the Ethereum clients
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
	if c.wsClient != nil {
		c.wsClient.Close()
	}
}

// PoolAddress returns the watched pool contract
func (c *Client) PoolAddress() common.Address {
	return c.poolAddress
}

// SwapTopic returns the Swap event signature hash
func (c *Client) SwapTopic() common.Hash {
	return c.swapTopic
}

// TransactionReceipt returns the receipt of a mined transaction.
// It returns geth.NotFound while the transaction is not indexed.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.client.TransactionReceipt(ctx, txHash)
}

// HeaderByHash returns the header of the given block
func (c *Client) HeaderByHash(ctx context.Context, blockHash common.Hash) (*types.Header, error) {
	header, err := c.client.HeaderByHash(ctx, blockHash)
	if err != nil {
		return nil, fmt.Errorf("%w: get block %s: %w", ErrRPCUnavailable, blockHash.Hex(), err)
	}
	return header, nil
}

// SubscribeFilterLogs opens a live log subscription over the WebSocket endpoint
func (c *Client) SubscribeFilterLogs(ctx context.Context, q geth.FilterQuery, ch chan<- types.Log) (geth.Subscription, error) {
	if c.wsClient == nil {
		return nil, fmt.Errorf("log subscriptions require ethereum.ws_url")
	}
	return c.wsClient.SubscribeFilterLogs(ctx, q, ch)
}

// SwapFilter returns the filter matching Swap logs of the watched pool
func (c *Client) SwapFilter() geth.FilterQuery {
	return SwapFilter(c.poolAddress, c.swapTopic)
}

// SwapFilter builds a log filter for one pool and one event topic
func SwapFilter(pool common.Address, topic common.Hash) geth.FilterQuery {
	return geth.FilterQuery{
		Addresses: []common.Address{pool},
		Topics:    [][]common.Hash{{topic}},
	}
}
