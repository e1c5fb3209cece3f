package provider

import (
	"errors"
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

// ethService answers the handful of eth_ methods the tests need
type ethService struct {
	accounts []common.Address
	err      error
	chainId  int64
	block    uint64
	calls    int
}

func (s *ethService) RequestAccounts() ([]common.Address, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.accounts, nil
}

func (s *ethService) ChainId() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(s.chainId))
}

func (s *ethService) BlockNumber() hexutil.Uint64 {
	return hexutil.Uint64(s.block)
}

func newRPCServer(t *testing.T, svc *ethService) *rpc.Server {
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", svc))
	t.Cleanup(server.Stop)
	return server
}

func newInProcClient(t *testing.T, svc *ethService) *rpc.Client {
	client := rpc.DialInProc(newRPCServer(t, svc))
	t.Cleanup(client.Close)
	return client
}

// newHTTPEndpoint serves svc over http and returns its url
func newHTTPEndpoint(t *testing.T, svc *ethService) string {
	ts := httptest.NewServer(newRPCServer(t, svc))
	t.Cleanup(ts.Close)
	return ts.URL
}

var errUserRejected = errors.New("User rejected the request.")
