package void

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/void-protocol/void-sdk-go/internal/telemetry"
)

// ClientConfig selects the program and cluster a Client talks to.
// Neither field is validated when a client is constructed.
type ClientConfig struct {
	ProgramID string  `json:"programId" yaml:"program_id"`
	Cluster   Cluster `json:"cluster" yaml:"cluster"`
}

// Client is the entrypoint for Void Protocol interactions.
// Its configuration is fixed at construction.
type Client struct {
	config  ClientConfig
	rpcURL  string
	logger  zerolog.Logger
	metrics *telemetry.Collector

	rpcOnce sync.Once
	rpc     *solanarpc.Client
}

// NewClient creates a client for cfg. It accepts any configuration and never fails.
func NewClient(cfg ClientConfig, opts ...Option) *Client {
	c := &Client{
		config:  cfg,
		logger:  log.Logger,
		metrics: telemetry.GetGlobal(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Info().
		Str("program_id", cfg.ProgramID).
		Str("cluster", string(cfg.Cluster)).
		Msg("void client initialized")
	c.metrics.Counter("void_client_constructed", 1, c.labels())
	return c
}

// Config returns the configuration the client was constructed with.
func (c *Client) Config() ClientConfig { return c.config }

// Logger returns the logger used by the client.
func (c *Client) Logger() zerolog.Logger { return c.logger }

// ProgramKey decodes the configured program identifier.
func (c *Client) ProgramKey() (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(c.config.ProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w %q: %v", ErrInvalidProgramID, c.config.ProgramID, err)
	}
	return key, nil
}

// RPCEndpoint returns the JSON-RPC endpoint the client would use, or ""
// when neither an override nor a known cluster supplies one.
func (c *Client) RPCEndpoint() string {
	if c.rpcURL != "" {
		return c.rpcURL
	}
	return ClusterRPCURLs[c.config.Cluster]
}

// RPC returns the client's RPC handle, building it on first use.
// Building the handle does not contact the endpoint.
func (c *Client) RPC() *solanarpc.Client {
	c.rpcOnce.Do(func() {
		if c.rpc != nil {
			return
		}
		if url := c.RPCEndpoint(); url != "" {
			c.rpc = solanarpc.New(url)
		}
	})
	return c.rpc
}

// InitPrivateAccount creates a confidential account for the caller.
// The backing program is not deployed, so it always fails with ErrNotImplemented.
func (c *Client) InitPrivateAccount(ctx context.Context) (string, error) {
	c.metrics.Counter("void_init_private_account_calls", 1, c.labels())
	c.logger.Debug().Str("cluster", string(c.config.Cluster)).Msg("init private account requested")
	return "", ErrNotImplemented
}

func (c *Client) labels() map[string]string {
	return map[string]string{"cluster": string(c.config.Cluster)}
}
