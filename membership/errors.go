package membership

import "errors"

var (
	// ErrOracle wraps an error returned by the oracle.
	ErrOracle = errors.New("membership: oracle failed")
	// ErrBadFactorisation indicates an oracle word that does not multiply out to its target.
	ErrBadFactorisation = errors.New("membership: oracle returned an invalid factorisation")
)
