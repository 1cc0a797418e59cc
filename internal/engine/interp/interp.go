// Released under an MIT license. See LICENSE.

// Package interp provides the execution context shared by every node built
// for one interpreter instance. It owns the unsafe-operations policy.
package interp

import (
	"sync"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"go.uber.org/zap"
)

const name = "context"

// T (interp) is an execution context.
type T struct {
	sync.RWMutex

	label string
	log   *zap.SugaredLogger

	exited bool
	status int64
	unsafe bool
}

type interp = T

// New creates an execution context labelled label that logs to log.
// Unsafe operations are disallowed until AllowUnsafe is called.
func New(label string, log *zap.SugaredLogger) *interp {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &interp{label: label, log: log.Named(label)}
}

// AllowUnsafe sets whether unsafe operations may be built in this context.
// Nodes built earlier keep the decision made when they were built.
func (c *interp) AllowUnsafe(allowed bool) {
	c.Lock()
	defer c.Unlock()

	c.unsafe = allowed
}

// Equal returns true if the cell x is the same context as c.
func (c *interp) Equal(x cell.I) bool {
	o, ok := x.(*interp)

	return ok && o == c
}

// Exit records the exit status requested by the running program.
func (c *interp) Exit(status int64) {
	c.Lock()
	defer c.Unlock()

	c.exited = true
	c.status = status
}

// Exited returns the recorded exit status and whether one was requested.
func (c *interp) Exited() (int64, bool) {
	c.RLock()
	defer c.RUnlock()

	return c.status, c.exited
}

// Label returns the context's label.
func (c *interp) Label() string {
	return c.label
}

// Literal returns the literal representation of the context c.
func (c *interp) Literal() string {
	return "(|" + name + " " + c.label + "|)"
}

// Log returns the context's logger.
func (c *interp) Log() *zap.SugaredLogger {
	return c.log
}

// Name returns the type name for a context.
func (*interp) Name() string {
	return name
}

// UnsafeAllowed returns true if unsafe operations may currently be built.
func (c *interp) UnsafeAllowed() bool {
	c.RLock()
	defer c.RUnlock()

	return c.unsafe
}
