package provider

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	bCtx "github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/goroutine"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/base/metrics"
	"github.com/x-xyz/traitkit/domain"
)

type State int

const (
	StateIdle State = iota
	StateRequesting
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRequesting:
		return "requesting"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

func (s State) IsTerminal() bool {
	return s == StateResolved || s == StateFailed
}

// Acquisition obtains an authorized provider once. It moves from Idle to
// Requesting on the first Resolve and ends in Resolved or Failed; a new
// Acquisition is needed to try again.
type Acquisition struct {
	id      string
	env     Environment
	metrics metrics.Service

	once sync.Once
	done chan struct{}

	// mutex protected members
	mutex    sync.Mutex
	state    State
	provider domain.EthProvider
	accounts []common.Address
	err      error
}

// NewAcquisition uses the "provider" metrics when m is nil
func NewAcquisition(env Environment, m metrics.Service) *Acquisition {
	if m == nil {
		m = metrics.New("provider")
	}
	return &Acquisition{
		id:      uuid.NewString(),
		env:     env,
		metrics: m,
		done:    make(chan struct{}),
	}
}

func (a *Acquisition) Id() string {
	return a.id
}

func (a *Acquisition) State() State {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.state
}

// Accounts are the authorized accounts, only set for a modern wallet
func (a *Acquisition) Accounts() []common.Address {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.accounts
}

// Resolve starts the acquisition on the first call and waits for its outcome.
// The wallet request runs with the context of the first caller; later callers
// only stop waiting when their own context ends. There is no timeout.
func (a *Acquisition) Resolve(c bCtx.Ctx) (domain.EthProvider, error) {
	a.once.Do(func() {
		a.start(bCtx.WithLogField(c, "acquisitionId", a.id))
	})

	select {
	case <-a.done:
	case <-c.Done():
		return nil, c.Err()
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.provider, a.err
}

func (a *Acquisition) start(c bCtx.Ctx) {
	capability := a.env.Capability()
	c = bCtx.WithLogField(c, "capability", capability)
	timer := a.metrics.BumpTime("acquisition.time", "capability", capability.String())

	a.setState(c, StateRequesting)

	switch capability {
	case CapabilityNone:
		a.finish(c, timer, nil, nil, domain.ErrProviderUnavailable)
	case CapabilityLegacyProvider:
		a.finish(c, timer, a.env.Legacy, nil, nil)
	case CapabilityModernWallet:
		wallet := a.env.Wallet
		goroutine.RecoverableGo(
			func() {
				accounts, err := wallet.RequestAccounts(c)
				if err != nil {
					a.finish(c, timer, nil, nil, &domain.AuthorizationError{Reason: err})
					return
				}
				a.finish(c, timer, wallet.Provider(), accounts, nil)
			},
			goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
				a.finish(c, timer, nil, nil, &domain.AuthorizationError{Reason: fmt.Errorf("wallet panicked: %v", p)})
			}),
		)
	}
}

func (a *Acquisition) setState(c bCtx.Ctx, s State) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	c.WithFields(log.Fields{"from": a.state, "to": s}).Debug("acquisition state")
	a.state = s
}

// finish records the first terminal outcome; later calls are ignored.
func (a *Acquisition) finish(c bCtx.Ctx, timer metrics.Ender, p domain.EthProvider, accounts []common.Address, err error) {
	a.mutex.Lock()
	if a.state.IsTerminal() {
		a.mutex.Unlock()
		return
	}
	if err != nil {
		a.state = StateFailed
		a.err = err
	} else {
		a.state = StateResolved
		a.provider = p
		a.accounts = accounts
	}
	a.mutex.Unlock()

	timer.End()
	if err != nil {
		a.metrics.BumpSum("acquisition.err", 1)
		c.WithField("err", err).Warn("provider acquisition failed")
	} else {
		c.WithField("accounts", len(accounts)).Info("provider acquired")
	}
	close(a.done)
}
