package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewHealthCheckRepo(t)
	errDown := errors.New("down")
	repo.On("PingRPC", mock.Anything).Return(nil).Once()
	repo.On("PingRPC", mock.Anything).Return(errDown).Once()

	uc := New(repo)
	req.NoError(uc.Check(ctx.Background()))
	req.ErrorIs(uc.Check(ctx.Background()), errDown)
}
