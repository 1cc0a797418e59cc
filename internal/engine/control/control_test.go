// Released under an MIT license. See LICENSE.

package control

import (
	"errors"
	"fmt"
	"testing"

	"github.com/michaelmacinnis/prim/internal/common/type/str"
	"github.com/stretchr/testify/require"
)

func TestCatchMatchingReturn(t *testing.T) {
	id := NewReturnID("m")
	v := str.New("done")

	got, err := Catch(id, nil, fmt.Errorf("wrapped: %w", &Return{ID: id, Value: v}))
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}

func TestCatchOtherReturn(t *testing.T) {
	inner := NewReturnID("inner")
	outer := NewReturnID("outer")
	signal := &Return{ID: outer, Value: str.New("up")}

	got, err := Catch(inner, nil, signal)
	require.Nil(t, got)
	require.Same(t, signal, err)
}

func TestCatchPassesOtherErrors(t *testing.T) {
	e := errors.New("boom")

	_, err := Catch(NewReturnID("m"), nil, e)
	require.Same(t, e, err)
}

func TestRaiseClasses(t *testing.T) {
	require.True(t, Is(Restricted("vm_exit"), SecurityError))
	require.True(t, Is(MissingArgument(2), ArgumentError))
	require.True(t, Is(PrimitiveFailed("integer_add"), PrimitiveFailure))
	require.False(t, Is(errors.New("plain"), SecurityError))

	require.EqualError(t, Restricted("vm_exit"), "SecurityError: vm_exit is an unsafe operation")
}

func TestReturnIDsAreDistinct(t *testing.T) {
	a := NewReturnID("m")
	b := NewReturnID("m")

	require.NotSame(t, a, b)
	require.NotEqual(t, a.String(), b.String())
}
