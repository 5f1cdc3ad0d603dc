package slack

import "fmt"

// AuthenticationError reports an invalid or missing credential detected
// while building the client, before any search runs.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("slack authentication failed, please check your API token: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// TransportError reports a network or provider failure during a search or
// identity call. It is fatal for the enclosing exploration run.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("slack %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
