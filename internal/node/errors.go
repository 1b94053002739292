package node

import "errors"

var (
	ErrTimeout                = errors.New("node: timeout waiting for response")
	ErrUnknownCommandReceived = errors.New("node: unknown command received")
	ErrNotImplemented         = errors.New("node: not implemented")
	ErrBindingUnavailable     = errors.New("node: no binding for cluster")
	ErrClusterUnavailable     = errors.New("node: cluster not available on endpoint")
	ErrUnknownEndpoint        = errors.New("node: unknown endpoint")
)
