package zcl

import (
	"errors"
	"fmt"
)

var (
	ErrShortBuffer          = errors.New("zcl: short buffer")
	ErrInvalidValue         = errors.New("zcl: invalid value")
	ErrUnknownType          = errors.New("zcl: unknown data type")
	ErrUnknownField         = errors.New("zcl: unknown field")
	ErrUnknownCluster       = errors.New("zcl: unknown cluster")
	ErrUnknownCommand       = errors.New("zcl: unknown command")
	ErrUnknownAttribute     = errors.New("zcl: unknown attribute")
	ErrManufacturerMismatch = errors.New("zcl: attributes from different manufacturers")
	ErrMalformedFrame       = errors.New("zcl: malformed frame")
)

// StatusError is a non-SUCCESS status reported by the peer, either in a
// default response or in an attribute result record.
type StatusError struct {
	Status    Status
	Command   string
	Attribute string
}

func (e *StatusError) Error() string {
	return e.Status.String()
}

// Detail returns the status together with the command or attribute it
// was reported for.
func (e *StatusError) Detail() string {
	switch {
	case e.Attribute != "":
		return fmt.Sprintf("%s: attribute %s", e.Status, e.Attribute)
	case e.Command != "":
		return fmt.Sprintf("%s: command %s", e.Status, e.Command)
	}
	return e.Status.String()
}

// IsStatus reports whether err carries the given peer status.
func IsStatus(err error, s Status) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == s
}
