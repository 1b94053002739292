package node

import "time"

// DefaultTimeout bounds the wait for a correlated response.
const DefaultTimeout = 25 * time.Second

type invokeOptions struct {
	timeout                time.Duration
	noWait                 bool
	disableDefaultResponse bool
	manufacturerID         *uint16
}

// Option tunes a single command invocation.
type Option func(*invokeOptions)

// WithTimeout overrides the response timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *invokeOptions) { o.timeout = d }
}

// WithoutResponse sends the frame and returns without waiting.
func WithoutResponse() Option {
	return func(o *invokeOptions) { o.noWait = true }
}

// WithDisableDefaultResponse sets the disableDefaultResponse frame bit. A
// command that declares a cluster-specific response still waits for it.
func WithDisableDefaultResponse() Option {
	return func(o *invokeOptions) { o.disableDefaultResponse = true }
}

// WithManufacturerID sends the command as manufacturer specific.
func WithManufacturerID(id uint16) Option {
	return func(o *invokeOptions) { o.manufacturerID = &id }
}

func applyOptions(defTimeout time.Duration, opts []Option) invokeOptions {
	o := invokeOptions{timeout: defTimeout}
	for _, fn := range opts {
		fn(&o)
	}
	if o.timeout <= 0 {
		o.timeout = DefaultTimeout
	}
	return o
}
