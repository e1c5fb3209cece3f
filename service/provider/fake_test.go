package provider

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/traitkit/domain"
)

var errNotImplemented = errors.New("not implemented")

type fakeProvider struct {
	name string
}

func (p *fakeProvider) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (p *fakeProvider) BlockNumber(context.Context) (uint64, error) {
	return 0, errNotImplemented
}

func (p *fakeProvider) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return nil, errNotImplemented
}

func (p *fakeProvider) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return nil, errNotImplemented
}

func (p *fakeProvider) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, errNotImplemented
}

func (p *fakeProvider) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return nil, errNotImplemented
}

// fakeWallet blocks RequestAccounts until release is closed when release is set
type fakeWallet struct {
	accounts []common.Address
	err      error
	panicMsg string
	release  chan struct{}
	provider fakeProvider
	calls    int32
}

func (w *fakeWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	atomic.AddInt32(&w.calls, 1)
	if w.release != nil {
		select {
		case <-w.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if w.panicMsg != "" {
		panic(w.panicMsg)
	}
	return w.accounts, w.err
}

func (w *fakeWallet) Provider() domain.EthProvider {
	return &w.provider
}

func (w *fakeWallet) Calls() int {
	return int(atomic.LoadInt32(&w.calls))
}
