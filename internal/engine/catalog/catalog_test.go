// Released under an MIT license. See LICENSE.

package catalog

import (
	"testing"

	"github.com/michaelmacinnis/prim/internal/engine/node"
	"github.com/michaelmacinnis/prim/internal/engine/primitive"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func self(args []node.I) node.I {
	return args[0]
}

func impls() map[string]primitive.Factory {
	return map[string]primitive.Factory{
		"first":  primitive.Flat(2, self),
		"joined": primitive.Array(3, self),
	}
}

const good = `
primitives:
  - name: first
    needs_self: true
    lower_fixnum_parameters: [0]
  - name: joined
`

func TestLoad(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	c, err := Load(zap.New(core).Sugar(), []byte(good), impls())
	require.NoError(t, err)
	require.Equal(t, []string{"first", "joined"}, c.Names())

	p, ok := c.Lookup("first")
	require.True(t, ok)
	require.True(t, p.Descriptor().NeedsSelf())
	require.Equal(t, []int{0}, p.Descriptor().Lowered())

	_, ok = c.Lookup("missing")
	require.False(t, ok)

	require.Equal(t, 2, logs.FilterMessage("registered primitive").Len())
	require.Equal(t, 1, logs.FilterMessage("catalog loaded").Len())
}

func TestLoadReportsEveryDefect(t *testing.T) {
	decls := `
primitives:
  - name: first
    lower_fixnum_parameters: [5]
  - name: joined
  - name: joined
  - name: ghost
`

	_, err := Load(nil, []byte(decls), map[string]primitive.Factory{
		"first":  primitive.Flat(2, self),
		"joined": primitive.Array(3, self),
		"extra":  primitive.Flat(1, self),
	})
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	require.Contains(t, err.Error(), "first: lowered position 5")
	require.Contains(t, err.Error(), "joined: declared more than once")
	require.Contains(t, err.Error(), "ghost: no implementation")
	require.Contains(t, err.Error(), "extra: implemented but not declared")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(nil, []byte("primitives:\n  - name: first\n    bogus: true\n"), impls())
	require.Error(t, err)
}

func TestMustLoadPanics(t *testing.T) {
	require.Panics(t, func() {
		MustLoad(nil, []byte("primitives:\n  - name: nothing\n"), nil)
	})
}
