package provider

import (
	bCtx "github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/domain"
)

// GetProvider returns the injected provider when there is one, without
// asking for authorization, and the fallback signing provider otherwise.
func GetProvider(ctx bCtx.Ctx, env Environment, fallback FallbackConfig) (domain.EthProvider, error) {
	switch env.Capability() {
	case CapabilityModernWallet:
		return env.Wallet.Provider(), nil
	case CapabilityLegacyProvider:
		return env.Legacy, nil
	}

	p, err := NewSigningProvider(ctx, fallback)
	if err != nil {
		ctx.WithField("err", err).Error("NewSigningProvider failed")
		return nil, err
	}
	return p, nil
}
