package repository

import (
	"time"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/domain"
	hcdomain "github.com/x-xyz/traitkit/domain/healthcheck"
)

type impl struct {
	provider domain.EthProvider
}

// New creates a HealthCheckRepo that pings the given provider. A nil
// provider always reports unavailable.
func New(provider domain.EthProvider) hcdomain.HealthCheckRepo {
	return &impl{
		provider: provider,
	}
}

func (im *impl) PingRPC(context ctx.Ctx) error {
	if im.provider == nil {
		return domain.ErrProviderUnavailable
	}
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	block, err := im.provider.BlockNumber(ctx)
	if err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	context.WithField("block", block).Debug("ping rpc")
	return nil
}
