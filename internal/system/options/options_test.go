// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	parse([]string{"-u", "integer_add", "1", "2"}, true)

	require.Equal(t, "integer_add", Name())
	require.Equal(t, []string{"1", "2"}, Args())
	require.True(t, Unsafe())
	require.False(t, Debug())
	require.False(t, Interactive())
	require.False(t, List())
}

func TestInteractive(t *testing.T) {
	parse([]string{}, true)
	require.True(t, Interactive())

	parse([]string{}, false)
	require.False(t, Interactive())

	parse([]string{"-i"}, true)
	require.False(t, Interactive())

	parse([]string{"-d"}, true)
	require.True(t, Debug())
	require.True(t, Interactive())
}

func TestNilArgv(t *testing.T) {
	parse(nil, true)

	require.True(t, Interactive())
	require.Empty(t, Name())
	require.Empty(t, Args())
}

func TestList(t *testing.T) {
	parse([]string{"-l"}, true)

	require.True(t, List())
	require.False(t, Interactive())
	require.Empty(t, Name())
}
