package sbcheck

import (
	"errors"
	"fmt"
)

var (
	ErrUsage   = errors.New("please supply a valid URL")
	ErrKeyFile = errors.New("key file")
	ErrNetwork = errors.New("request failed")
)

// NetworkError is returned by Lookup when the transport fails before a
// response is read in full.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
