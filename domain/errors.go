package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// provider errors
	ErrProviderUnavailable   = errors.New("no compatible wallet provider found in this environment")
	ErrAuthorization         = errors.New("wallet authorization failed")
	ErrMissingFallbackConfig = errors.New("fallback provider requires rpcUrl and privateKey")
	ErrInvalidPrivateKey     = errors.New("invalid private key")
)

// AuthorizationError is returned when the wallet declines or the
// authorization request itself fails. Reason is the wallet's error.
type AuthorizationError struct {
	Reason error
}

func (e *AuthorizationError) Error() string {
	if e.Reason == nil {
		return ErrAuthorization.Error()
	}
	return fmt.Sprintf("%s: %s", ErrAuthorization, e.Reason)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Reason
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrAuthorization
}
