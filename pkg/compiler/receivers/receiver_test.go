package receivers_test

import (
	"testing"

	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/receivers"
	"github.com/rhino1998/calls/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestReceivers(t *testing.T) {
	r := require.New(t)

	app := descriptors.NewNamespace("app", nil)
	c := descriptors.NewClass("C", kinds.Class, app, descriptors.Public)
	ext := descriptors.NewFunction("ext", app, c.DefaultType(), descriptors.Public)

	r.False(receivers.None.Exists())
	r.Nil(receivers.None.Type())
	r.Equal("<none>", receivers.None.String())

	expr := receivers.NewExpression(&parser.ReferenceExpr{Name: "x"}, c.DefaultType())
	r.True(expr.Exists())
	r.Equal("x: C", expr.String())

	class := receivers.NewClass(c)
	r.True(class.Exists())
	r.Equal(c.DefaultType(), class.Type())
	r.Equal("this@C", class.String())

	extension := receivers.NewExtension(ext)
	r.Equal(c.DefaultType(), extension.Type())
	r.Equal("this@ext", extension.String())
}

func TestSuper(t *testing.T) {
	r := require.New(t)

	app := descriptors.NewNamespace("app", nil)
	c := descriptors.NewClass("C", kinds.Class, app, descriptors.Public)

	super, ok := receivers.Super(receivers.NewExpression(&parser.SuperExpr{Label: "C"}, c.DefaultType()))
	r.True(ok)
	r.Equal(parser.Identifier("C"), super.Label)

	_, ok = receivers.Super(receivers.NewExpression(&parser.ThisExpr{}, c.DefaultType()))
	r.False(ok)

	_, ok = receivers.Super(receivers.NewClass(c))
	r.False(ok)

	_, ok = receivers.Super(receivers.None)
	r.False(ok)
}
