package rmf

import "errors"

// Sentinel errors for the binary scene boundary (spec §7).
var (
	ErrPrematureInput = errors.New("rmf: unexpected end of input")
	ErrInvalidHeader  = errors.New("rmf: unrecognized header or discriminator")
)
