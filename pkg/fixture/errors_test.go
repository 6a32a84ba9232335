package fixture_test

import (
	"errors"
	"testing"

	"github.com/rhino1998/calls/pkg/fixture"
	"github.com/stretchr/testify/require"
)

func TestErrorSet(t *testing.T) {
	r := require.New(t)

	var set fixture.ErrorSet
	r.NoError(set.Err())

	errBroken := errors.New("broken")
	set.AddAt("app.f", errBroken)
	set.AddAt("app.g", nil)
	r.Equal("app.f: broken", set.Err().Error())

	var nested fixture.ErrorSet
	nested.AddAt("lib.h", errors.New("missing"))
	nested.Add(errors.New("cycle"))
	set.Add(&nested)

	r.Len(set.Errs, 3)
	r.Equal("3 errors:\n\tapp.f: broken\n\tlib.h: missing\n\tcycle", set.Error())
	r.ErrorIs(set.Err(), errBroken)

	var decl fixture.DeclError
	r.ErrorAs(set.Err(), &decl)
	r.Equal("app.f", decl.Path)
}
