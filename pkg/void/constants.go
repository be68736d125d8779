package void

import "github.com/gagliardetto/solana-go"

// Version is the SDK release this package implements.
const Version = "0.1.0"

// Cluster names the Solana network a client session is bound to.
type Cluster string

const (
	ClusterDevnet   Cluster = "devnet"
	ClusterMainnet  Cluster = "mainnet-beta"
	ClusterLocalnet Cluster = "localnet"
)

// ValidClusters lists the clusters the SDK knows how to address.
var ValidClusters = []Cluster{ClusterDevnet, ClusterMainnet, ClusterLocalnet}

// Valid reports whether c is one of ValidClusters.
func (c Cluster) Valid() bool {
	for _, v := range ValidClusters {
		if c == v {
			return true
		}
	}
	return false
}

func (c Cluster) String() string { return string(c) }

// ClusterRPCURLs maps each cluster to its public JSON-RPC endpoint.
var ClusterRPCURLs = map[Cluster]string{
	ClusterDevnet:   "https://api.devnet.solana.com",
	ClusterMainnet:  "https://api.mainnet-beta.solana.com",
	ClusterLocalnet: "http://localhost:8899",
}

// DefaultProgramID is the address declared by the Void Protocol program workspace.
// It is not yet deployed on any public cluster.
var DefaultProgramID = solana.MustPublicKeyFromBase58("9oqbvYkKhFA2EFrJKGujRqzHnCRGuGnzTD6dyXuxo6oo")
