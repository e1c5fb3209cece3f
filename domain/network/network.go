package network

import (
	"github.com/x-xyz/traitkit/domain"
)

// Network is the target blockchain environment
type Network string

const (
	Main    Network = "main"
	Rinkeby Network = "rinkeby"
)

var (
	aliases = map[string]Network{
		"rinkeby":  Rinkeby,
		"testnet":  Rinkeby,
		"testnets": Rinkeby,
		"mainnet":  Main,
		"main":     Main,
	}

	networkToChainId = map[Network]domain.ChainId{
		Main:    domain.ChainId(1),
		Rinkeby: domain.ChainId(4),
	}
)

// Lookup matches name case-sensitively against the known aliases
func Lookup(name string) (Network, bool) {
	n, ok := aliases[name]
	return n, ok
}

// FromString resolves name, defaulting to Main for unknown names
func FromString(name string) Network {
	if n, ok := Lookup(name); ok {
		return n
	}
	return Main
}

func (n Network) ChainId() domain.ChainId {
	return networkToChainId[n]
}

func (n Network) IsTestnet() bool {
	return n == Rinkeby
}
