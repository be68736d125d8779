package void

import (
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"github.com/void-protocol/void-sdk-go/internal/telemetry"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for client diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRPCEndpoint overrides the cluster's default JSON-RPC endpoint.
func WithRPCEndpoint(url string) Option {
	return func(c *Client) { c.rpcURL = url }
}

// WithRPCClient supplies a prebuilt RPC client. It takes precedence over any endpoint.
func WithRPCClient(rpc *solanarpc.Client) Option {
	return func(c *Client) { c.rpc = rpc }
}

// WithCollector records client metrics into the given collector.
func WithCollector(collector *telemetry.Collector) Option {
	return func(c *Client) { c.metrics = collector }
}
