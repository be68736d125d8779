package core

import (
	"fmt"
	"net/url"

	"github.com/gagliardetto/solana-go"

	"github.com/void-protocol/void-sdk-go/pkg/void"
)

// ValidationError represents a configuration field that failed a check.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s=%s: %s", e.Field, e.Value, e.Message)
}

// Validate checks cfg for values the SDK client would not be able to use.
// The client itself never calls this; it is an advisory check for tooling.
func Validate(cfg Config) error {
	if cfg.ProgramID == "" {
		return ValidationError{Field: "program_id", Value: "", Message: "program id is required"}
	}
	if _, err := solana.PublicKeyFromBase58(cfg.ProgramID); err != nil {
		return ValidationError{Field: "program_id", Value: cfg.ProgramID, Message: "not a base58 Solana address"}
	}

	if !void.Cluster(cfg.Cluster).Valid() {
		return ValidationError{
			Field:   "cluster",
			Value:   cfg.Cluster,
			Message: fmt.Sprintf("invalid cluster. Valid clusters: %v", void.ValidClusters),
		}
	}

	if cfg.RPCURL != "" {
		u, err := url.Parse(cfg.RPCURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ValidationError{Field: "rpc_url", Value: cfg.RPCURL, Message: "must be an http(s) URL"}
		}
	}
	return nil
}
