package scopes_test

import (
	"testing"

	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/receivers"
	"github.com/rhino1998/calls/pkg/compiler/scopes"
	"github.com/rhino1998/calls/pkg/compiler/types"
	"github.com/stretchr/testify/require"
)

func TestLexical_Chain(t *testing.T) {
	r := require.New(t)

	app := descriptors.NewNamespace("app", nil)
	c := descriptors.NewClass("C", kinds.Class, app, descriptors.Public)
	method := descriptors.NewFunction("m", c, nil, descriptors.Public)

	outerF := descriptors.NewFunction("f", app, nil, descriptors.Public)
	innerF := descriptors.NewFunction("f", method, nil, descriptors.Public)

	file := scopes.NewLexical(nil, "app", app)
	r.NoError(file.Put(outerF))

	body := scopes.NewLexical(file, "C", c)
	body.SetReceiver(receivers.NewClass(c))

	fun := scopes.NewLexical(body, "m", method)
	r.NoError(fun.Put(innerF))
	r.Error(fun.Put(innerF))

	block := scopes.NewLexical(fun, "block", nil)

	r.Equal(descriptors.Declaration(method), block.ContainingDeclaration())
	r.Equal([]descriptors.Declaration{innerF, outerF}, block.Lookup("f"))
	r.Empty(block.Lookup("g"))

	recvs := block.ImplicitReceivers()
	r.Len(recvs, 1)
	r.Equal("this@C", recvs[0].String())
}

func TestLexical_Import(t *testing.T) {
	r := require.New(t)

	root := descriptors.NewNamespace("", nil)
	lib := descriptors.NewNamespace("lib", root)
	imported := descriptors.NewFunction("f", lib, nil, descriptors.Public)
	lib.Add(imported)

	own := descriptors.NewFunction("f", root, nil, descriptors.Public)

	file := scopes.NewLexical(nil, "main", root)
	file.Import(scopes.MemberScopeOf(lib.Type()))
	r.NoError(file.Put(own))

	r.Equal([]descriptors.Declaration{own, imported}, file.Lookup("f"))
}

func TestMemberScopeOf_Class(t *testing.T) {
	r := require.New(t)

	app := descriptors.NewNamespace("app", nil)
	base := descriptors.NewClass("Base", kinds.Class, app, descriptors.Public)
	left := descriptors.NewClass("Left", kinds.Trait, app, descriptors.Public)
	right := descriptors.NewClass("Right", kinds.Trait, app, descriptors.Public)
	left.SetSupertypes(base.DefaultType())
	right.SetSupertypes(base.DefaultType())

	leaf := descriptors.NewClass("Leaf", kinds.Class, app, descriptors.Public)
	leaf.SetSupertypes(left.DefaultType(), right.DefaultType())

	baseF := descriptors.NewFunction("f", base, nil, descriptors.Public)
	base.Add(baseF)
	leafF := descriptors.NewFunction("f", leaf, nil, descriptors.Public)
	leaf.Add(leafF)

	scope := scopes.MemberScopeOf(leaf.DefaultType())
	r.Equal([]descriptors.Declaration{leafF, baseF}, scope.Lookup("f"))
	r.Equal(descriptors.Declaration(leaf), scope.ContainingDeclaration())
	r.Empty(scope.ImplicitReceivers())
}

func TestMemberScopeOf_Other(t *testing.T) {
	r := require.New(t)

	r.Equal(scopes.Empty, scopes.MemberScopeOf(types.Error))
	r.Empty(scopes.MemberScopeOf(nil).Lookup("f"))
}
