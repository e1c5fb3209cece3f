package provider

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/ethereum"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/domain"
)

// SigningProvider is the fallback provider: a remote RPC endpoint paired
// with the account of the configured key. The key itself is not retained.
type SigningProvider struct {
	*ethclient.Client

	address common.Address
}

func NewSigningProvider(ctx bCtx.Ctx, cfg FallbackConfig) (*SigningProvider, error) {
	if cfg.IsEmpty() {
		return nil, domain.ErrMissingFallbackConfig
	}

	_, address, err := ethereum.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		ctx.WithField("err", err).Error("ethereum.ParsePrivateKey failed")
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("ethclient.DialContext failed")
		return nil, xerrors.Errorf("dial fallback rpc: %w", err)
	}

	return &SigningProvider{
		Client:  client,
		address: address,
	}, nil
}

// Address is the account of the fallback key
func (p *SigningProvider) Address() common.Address {
	return p.address
}
