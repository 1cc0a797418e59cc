// Released under an MIT license. See LICENSE.

package engine

import (
	"math"
	"testing"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/common/type/fixnum"
	"github.com/michaelmacinnis/prim/internal/common/type/num"
	"github.com/michaelmacinnis/prim/internal/common/type/str"
	"github.com/michaelmacinnis/prim/internal/engine/control"
	"github.com/michaelmacinnis/prim/internal/engine/interp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func engine(t *testing.T) *T {
	t.Helper()

	return New(interp.New("test", nil))
}

func evaluate(t *testing.T, e *T, text string) string {
	t.Helper()

	v, err := e.Evaluate(&loc.T{Label: "test", Line: 1, Char: 1, Text: text})
	require.NoError(t, err, text)

	return literal.String(v)
}

func TestBuiltins(t *testing.T) {
	e := engine(t)

	tests := []struct {
		text string
		want string
	}{
		{`integer_add 2 3`, "5"},
		{`integer_add 1/2 1/2`, "1"},
		{`integer_add 1/2 1/3`, "5/6"},
		{`integer_lt 2 3`, "true"},
		{`integer_lt 3 2`, "false"},
		{`object_equal "a" "a"`, "true"},
		{`object_equal "a" :a`, "false"},
		{`object_equal 2 2`, "true"},
		{`fixnum_p 3`, "true"},
		{`fixnum_p 1/2`, "false"},
		{`fixnum_p "3"`, "false"},
		{`undefined_p`, "true"},
		{`undefined_p nil`, "false"},
		{`string_join ", " "a"`, "$'a'"},
		{`string_join ", " "a" "b"`, "$'a, b'"},
		{`vm_version`, "$'0.1.0'"},
		{`vm_unsafe_p`, "false"},
		{`source_location`, "(|location test:1:1|)"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, evaluate(t, e, tt.text), tt.text)
	}
}

func TestLoweredArgumentsAreFixnums(t *testing.T) {
	e := engine(t)

	v, err := e.Run(nil, "integer_add", []cell.I{fixnum.Int(2), num.Int(3)})
	require.NoError(t, err)
	require.True(t, fixnum.Is(v))
	require.EqualValues(t, 5, fixnum.To(v).Int64())
}

func TestIntegerAddOverflow(t *testing.T) {
	e := engine(t)

	v, err := e.Call(nil, "integer_add", fixnum.Int(math.MaxInt64), fixnum.Int(1))
	require.NoError(t, err)
	require.True(t, num.Is(v))
	require.Equal(t, "9223372036854775808", literal.String(v))
}

func TestDeclinedCallFails(t *testing.T) {
	e := engine(t)

	_, err := e.Evaluate(&loc.T{Text: `integer_add "a" 1`})
	require.True(t, control.Is(err, control.PrimitiveFailure))

	_, err = e.Evaluate(&loc.T{Text: `string_join 1 "a"`})
	require.True(t, control.Is(err, control.PrimitiveFailure))
}

func TestUnsafeExit(t *testing.T) {
	e := engine(t)

	_, err := e.Evaluate(&loc.T{Text: `vm_exit 3`})
	require.True(t, control.Is(err, control.SecurityError))

	_, exited := e.Context().Exited()
	require.False(t, exited)

	ctx := interp.New("test", nil)
	ctx.AllowUnsafe(true)

	e = New(ctx)
	require.Equal(t, "true", evaluate(t, e, `vm_unsafe_p`))
	require.Equal(t, "3", evaluate(t, e, `vm_exit 3`))

	status, exited := ctx.Exited()
	require.True(t, exited)
	require.EqualValues(t, 3, status)

	require.Equal(t, "1", evaluate(t, e, `vm_exit false`))
	require.Equal(t, "0", evaluate(t, e, `vm_exit true`))

	_, err = e.Evaluate(&loc.T{Text: `vm_exit "x"`})
	require.True(t, control.Is(err, control.PrimitiveFailure))
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := New(interp.New("test", zap.New(core).Sugar()))

	require.Equal(t, "nil", evaluate(t, e, `vm_log "hello" 42`))

	entries := logs.FilterMessage("hello").All()
	require.Len(t, entries, 1)
	require.Equal(t, "42", entries[0].ContextMap()["value"])
}

func TestInvoke(t *testing.T) {
	e := engine(t)

	v, err := e.Invoke(nil, "string_join", str.New("-"), str.New("a"), str.New("b"))
	require.NoError(t, err)
	require.Equal(t, "$'a-b'", literal.String(v))

	_, err = e.Invoke(nil, "string_join", num.Int(1), str.New("a"), str.New("b"))
	require.True(t, control.Is(err, control.PrimitiveFailure))

	v, err = e.Invoke(nil, "vm_log", str.New("invoked"), num.Int(1))
	require.NoError(t, err)
	require.Equal(t, "nil", literal.String(v))

	_, err = e.Invoke(nil, "integer_add", num.Int(1), num.Int(2))
	require.Error(t, err)
}

func TestInvokeWrongArgumentCount(t *testing.T) {
	e := engine(t)

	require.NotPanics(t, func() {
		_, err := e.Invoke(nil, "vm_log", str.New("only"))
		require.Error(t, err)

		_, err = e.Invoke(nil, "string_join")
		require.Error(t, err)

		_, err = e.Invoke(nil, "string_join", str.New("-"), str.New("a"), str.New("b"), str.New("c"))
		require.Error(t, err)
	})
}

func TestEvaluateErrors(t *testing.T) {
	e := engine(t)

	_, err := e.Evaluate(&loc.T{Text: `no_such_primitive`})
	require.Error(t, err)

	_, err = e.Evaluate(&loc.T{Text: `vm_log "unterminated`})
	require.Error(t, err)

	v, err := e.Evaluate(&loc.T{Text: "   "})
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{
		"fixnum_p",
		"integer_add",
		"integer_lt",
		"object_equal",
		"source_location",
		"string_join",
		"undefined_p",
		"vm_exit",
		"vm_log",
		"vm_unsafe_p",
		"vm_version",
	}, engine(t).Names())
}
