// Released under an MIT license. See LICENSE.

package node

import (
	"testing"

	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/common/type/fixnum"
	"github.com/michaelmacinnis/prim/internal/common/type/num"
	"github.com/michaelmacinnis/prim/internal/common/type/null"
	"github.com/michaelmacinnis/prim/internal/common/type/str"
	"github.com/michaelmacinnis/prim/internal/common/type/undef"
	"github.com/michaelmacinnis/prim/internal/engine/control"
	"github.com/stretchr/testify/require"
)

func TestReadPreMissing(t *testing.T) {
	f := frame.New(nil, nil, str.New("a"))

	v, err := (&ReadPre{Index: 0}).Execute(f)
	require.NoError(t, err)
	require.True(t, str.New("a").Equal(v))

	v, err = (&ReadPre{Index: 1}).Execute(f)
	require.NoError(t, err)
	require.Same(t, undef.Value, v)

	v, err = (&ReadPre{Index: 1, Missing: Nil}).Execute(f)
	require.NoError(t, err)
	require.Same(t, nul.Nil, v)

	_, err = (&ReadPre{Index: 1, Missing: Error}).Execute(f)
	require.True(t, control.Is(err, control.ArgumentError))
}

func TestSelf(t *testing.T) {
	v, err := (&Self{}).Execute(frame.New(nil, str.New("me")))
	require.NoError(t, err)
	require.True(t, str.New("me").Equal(v))

	v, err = (&Self{}).Execute(frame.New(nil, nil))
	require.NoError(t, err)
	require.Same(t, nul.Nil, v)
}

func TestLower(t *testing.T) {
	half, ok := num.New("1/2")
	require.True(t, ok)

	f := frame.New(nil, nil, num.Int(4), half, str.New("s"))

	v, err := (&Lower{Child: &ReadPre{Index: 0}}).Execute(f)
	require.NoError(t, err)
	require.True(t, fixnum.Is(v))

	v, err = (&Lower{Child: &ReadPre{Index: 1}}).Execute(f)
	require.NoError(t, err)
	require.True(t, num.Is(v))

	v, err = (&Lower{Child: &ReadPre{Index: 2}}).Execute(f)
	require.NoError(t, err)
	require.True(t, str.Is(v))

	_, err = (&Lower{Child: &ReadPre{Index: 3, Missing: Error}}).Execute(f)
	require.Error(t, err)
}

func TestMethodCatchesOwnReturn(t *testing.T) {
	id := control.NewReturnID("m")
	other := control.NewReturnID("other")
	f := frame.New(nil, nil)

	ret := &Fail{Err: &control.Return{ID: id, Value: str.New("early")}}

	v, err := (&Method{ID: id, Body: Sequence{ret, &Literal{Value: str.New("late")}}}).Execute(f)
	require.NoError(t, err)
	require.True(t, str.New("early").Equal(v))

	_, err = (&Method{ID: other, Body: ret}).Execute(f)
	require.Error(t, err)

	v, err = Sequence{}.Execute(f)
	require.NoError(t, err)
	require.Same(t, nul.Nil, v)
}

func TestContextAndLocation(t *testing.T) {
	ctx := str.New("context value")
	at := &loc.T{Label: "test", Line: 4, Char: 2}
	f := frame.New(nil, nil)

	v, err := (&Context{Value: ctx}).Execute(f)
	require.NoError(t, err)
	require.Same(t, ctx, v)

	v, err = (&Location{Value: at}).Execute(f)
	require.NoError(t, err)
	require.Same(t, at, v)

	require.Equal(t, []string{"context", "location"}, Strings([]I{&Context{}, &Location{}}))
}

func TestStrings(t *testing.T) {
	ns := []I{
		&Self{},
		&Lower{Child: &ReadPre{Index: 0}},
		&ReadPre{Index: 1, Missing: Nil},
		&Literal{Value: nul.Nil},
	}

	require.Equal(t, []string{"self", "lower(arg(0))", "arg(1, nil)", "nil"}, Strings(ns))
}
