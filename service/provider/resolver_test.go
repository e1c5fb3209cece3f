package provider

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/ethereum"
	"github.com/x-xyz/traitkit/domain"
)

func TestGetProviderInjected(t *testing.T) {
	req := require.New(t)
	wallet := &fakeWallet{}
	legacy := &fakeProvider{name: "legacy"}

	p, err := GetProvider(ctx.Background(), Environment{Wallet: wallet, Legacy: legacy}, FallbackConfig{})
	req.NoError(err)
	req.Same(&wallet.provider, p)
	req.Zero(wallet.Calls(), "no authorization on the synchronous path")

	p, err = GetProvider(ctx.Background(), Environment{Legacy: legacy}, FallbackConfig{})
	req.NoError(err)
	req.Same(legacy, p)
}

func TestGetProviderFallback(t *testing.T) {
	req := require.New(t)
	key, _, err := ethereum.GenerateKey()
	req.NoError(err)
	url := newHTTPEndpoint(t, &ethService{chainId: 4})

	p, err := GetProvider(ctx.Background(), Environment{}, FallbackConfig{
		RpcUrl:     url,
		PrivateKey: "0x" + ethereum.KeyToHex(key),
	})
	req.NoError(err)

	signing, ok := p.(*SigningProvider)
	req.True(ok)
	defer signing.Close()
	req.Equal(crypto.PubkeyToAddress(key.PublicKey), signing.Address())

	chainId, err := p.ChainID(ctx.Background())
	req.NoError(err)
	req.Equal(int64(4), chainId.Int64())
}

func TestGetProviderFallbackErrors(t *testing.T) {
	url := newHTTPEndpoint(t, &ethService{chainId: 1})
	tests := []struct {
		name string
		cfg  FallbackConfig
		want error
	}{
		{name: "empty", cfg: FallbackConfig{}, want: domain.ErrMissingFallbackConfig},
		{name: "no key", cfg: FallbackConfig{RpcUrl: url}, want: domain.ErrMissingFallbackConfig},
		{name: "no url", cfg: FallbackConfig{PrivateKey: "ab"}, want: domain.ErrMissingFallbackConfig},
		{name: "bad key", cfg: FallbackConfig{RpcUrl: url, PrivateKey: "not-a-key"}, want: domain.ErrInvalidPrivateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := GetProvider(ctx.Background(), Environment{}, tt.cfg)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, p)
		})
	}
}

func TestGetProviderFallbackDialError(t *testing.T) {
	key, _, err := ethereum.GenerateKey()
	require.NoError(t, err)

	_, err = GetProvider(ctx.Background(), Environment{}, FallbackConfig{
		RpcUrl:     "unsupported://fallback",
		PrivateKey: ethereum.KeyToHex(key),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "dial fallback rpc")
}
