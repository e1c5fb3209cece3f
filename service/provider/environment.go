package provider

import (
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	bCtx "github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/domain"
)

// Capability is the wallet surface found in an Environment
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityModernWallet
	CapabilityLegacyProvider
)

func (c Capability) String() string {
	switch c {
	case CapabilityModernWallet:
		return "modern_wallet"
	case CapabilityLegacyProvider:
		return "legacy_provider"
	default:
		return "none"
	}
}

// Environment holds the injected surfaces. Both may be nil.
type Environment struct {
	Wallet Wallet
	Legacy domain.EthProvider

	closers []func()
}

// Capability prefers the modern wallet over the legacy provider
func (e Environment) Capability() Capability {
	switch {
	case e.Wallet != nil:
		return CapabilityModernWallet
	case e.Legacy != nil:
		return CapabilityLegacyProvider
	}
	return CapabilityNone
}

// Close releases connections opened by DetectEnvironment
func (e Environment) Close() {
	for _, c := range e.closers {
		c()
	}
}

// DetectEnvironment dials the configured surfaces. A surface that cannot be
// dialed is reported as absent.
func DetectEnvironment(ctx bCtx.Ctx, cfg Config) Environment {
	env := Environment{}

	if url := cfg.Wallet.Url; url != "" {
		client, err := rpc.DialContext(ctx, url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"url": url,
			}).Warn("failed to dial wallet")
		} else {
			env.Wallet = NewRPCWallet(client)
			env.closers = append(env.closers, client.Close)
		}
	}

	if url := cfg.Legacy.Url; url != "" {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"url": url,
			}).Warn("failed to dial legacy provider")
		} else {
			env.Legacy = client
			env.closers = append(env.closers, client.Close)
		}
	}

	ctx.WithField("capability", env.Capability()).Info("provider environment detected")
	return env
}
