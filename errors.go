package phishtriage

import "errors"

var (
	ErrNoHeaders             = errors.New("phishtriage: message has no header section")
	ErrNoFromHeader          = errors.New("phishtriage: no From header in message")
	ErrInvalidFromHeader     = errors.New("phishtriage: invalid From header")
	ErrMultipleFromAddresses = errors.New("phishtriage: multiple addresses in From header")
)
