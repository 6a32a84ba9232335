package types_test

import (
	"testing"

	"github.com/rhino1998/calls/pkg/compiler/types"
	"github.com/stretchr/testify/require"
)

type classifier struct {
	name   string
	supers []types.Type
}

func (c *classifier) Name() string             { return c.name }
func (c *classifier) Supertypes() []types.Type { return c.supers }

func TestIsSubtypeOf_Hierarchy(t *testing.T) {
	r := require.New(t)

	base := &classifier{name: "Base"}
	mid := &classifier{name: "Mid", supers: []types.Type{types.NewClass(base)}}
	leaf := &classifier{name: "Leaf", supers: []types.Type{types.NewClass(mid)}}
	other := &classifier{name: "Other"}

	r.True(types.IsSubtypeOf(types.NewClass(leaf), types.NewClass(base)))
	r.True(types.IsSubtypeOf(types.NewClass(mid), types.NewClass(mid)))
	r.False(types.IsSubtypeOf(types.NewClass(base), types.NewClass(leaf)))
	r.False(types.IsSubtypeOf(types.NewClass(other), types.NewClass(base)))
}

func TestIsSubtypeOf_Nullability(t *testing.T) {
	r := require.New(t)

	c := types.NewClass(&classifier{name: "C"})
	nullable := types.MakeNullable(c)

	r.Equal("C?", nullable.String())
	r.True(types.IsSubtypeOf(c, nullable))
	r.False(types.IsSubtypeOf(nullable, c))
	r.True(types.Equal(c, types.MakeNotNull(nullable)))
}

func TestIsSubtypeOf_Cycle(t *testing.T) {
	r := require.New(t)

	a := &classifier{name: "A"}
	b := &classifier{name: "B", supers: []types.Type{types.NewClass(a)}}
	a.supers = []types.Type{types.NewClass(b)}
	c := &classifier{name: "C"}

	r.True(types.IsSubtypeOf(types.NewClass(a), types.NewClass(b)))
	r.False(types.IsSubtypeOf(types.NewClass(a), types.NewClass(c)))
}

func TestIsSubtypeOf_Error(t *testing.T) {
	r := require.New(t)

	c := types.NewClass(&classifier{name: "C"})

	r.True(types.IsSubtypeOf(types.Error, c))
	r.True(types.IsSubtypeOf(c, types.Error))
	r.True(types.Checker{}.IsSubtypeOf(types.Error, types.Error))
}

func TestIsSubtypeOf_Namespace(t *testing.T) {
	r := require.New(t)

	app := &classifier{name: "app"}
	lib := &classifier{name: "lib"}

	r.True(types.IsSubtypeOf(types.NewNamespace(app), types.NewNamespace(app)))
	r.False(types.IsSubtypeOf(types.NewNamespace(app), types.NewNamespace(lib)))
	r.False(types.IsSubtypeOf(types.NewClass(app), types.NewNamespace(app)))
	r.Equal("namespace app", types.NewNamespace(app).String())
}
