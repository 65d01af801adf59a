package smc

// Transport is the low-level call primitive against the SMC user
// client: one fixed-size structure in, one out. The production
// implementation talks to IOKit; tests substitute their own.
type Transport interface {
	// Call issues one struct-method call on the given selector.
	Call(selector int, in, out *KeyData) error

	// Close releases the underlying connection. A Transport must not
	// be used after Close.
	Close() error
}
