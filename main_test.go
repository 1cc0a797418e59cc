// Released under an MIT license. See LICENSE.

package main

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/prim/internal/engine"
	"github.com/michaelmacinnis/prim/internal/engine/interp"
	"github.com/stretchr/testify/require"
)

func TestRunStream(t *testing.T) {
	var out strings.Builder

	e := engine.New(interp.New("test", nil))

	status := run(e, strings.NewReader("integer_add 1 2\nvm_version\n"), &out)
	require.Equal(t, 0, status)
	require.Equal(t, "3\n$'0.1.0'\n", out.String())
}

func TestRunFailure(t *testing.T) {
	var out strings.Builder

	e := engine.New(interp.New("test", nil))

	status := run(e, strings.NewReader("vm_exit 7\n"), &out)
	require.Equal(t, 1, status)
	require.Contains(t, out.String(), "SecurityError: vm_exit is an unsafe operation")
}

func TestRunExit(t *testing.T) {
	var out strings.Builder

	ctx := interp.New("test", nil)
	ctx.AllowUnsafe(true)

	status := run(engine.New(ctx), strings.NewReader("vm_exit 7\nvm_version\n"), &out)
	require.Equal(t, 7, status)
	require.Equal(t, "7\n", out.String())
}
