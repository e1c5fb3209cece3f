package provider

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/x-xyz/traitkit/domain"
)

const methodRequestAccounts = "eth_requestAccounts"

var ErrNoAccounts = errors.New("wallet returned no accounts")

// Wallet is an injected wallet handle that needs an explicit authorization
// before its provider may be used.
type Wallet interface {
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	Provider() domain.EthProvider
}

type rpcWallet struct {
	client   *rpc.Client
	provider *ethclient.Client
}

// NewRPCWallet wraps a wallet reachable over JSON-RPC
func NewRPCWallet(client *rpc.Client) Wallet {
	return &rpcWallet{
		client:   client,
		provider: ethclient.NewClient(client),
	}
}

// RequestAccounts asks the wallet for authorization. An empty account list
// means the user did not grant access.
func (w *rpcWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := w.client.CallContext(ctx, &accounts, methodRequestAccounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}

func (w *rpcWallet) Provider() domain.EthProvider {
	return w.provider
}
