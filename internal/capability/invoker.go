// Package capability wraps the external language-model capability behind a
// small text-in/text-out boundary. The rest of the system treats it as an
// opaque, possibly slow, possibly failing function.
package capability

import "context"

// Invoker is the external capability boundary: a single synchronous call
// with a system instruction and a user instruction, returning raw text.
// Implementations must be safe for reuse across calls.
type Invoker interface {
	Invoke(ctx context.Context, systemInstruction, userInstruction string) (string, error)
}

// InvokerFunc adapts a plain function to the Invoker interface, mainly for
// tests and fixed-response fakes.
type InvokerFunc func(ctx context.Context, systemInstruction, userInstruction string) (string, error)

// Invoke calls the wrapped function.
func (f InvokerFunc) Invoke(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	return f(ctx, systemInstruction, userInstruction)
}
