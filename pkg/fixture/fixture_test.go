package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/calls/pkg/compiler/calls"
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/fixture"
	"github.com/rhino1998/calls/pkg/topological"
	"github.com/stretchr/testify/require"
)

const program = `
namespaces:
  - name: lib
    decls:
      - fun: h
      - object: Registry
        members:
          - fun: lookup
  - name: app
    imports: [lib, Registry]
    decls:
      - class: Base
        members:
          - fun: f
      - class: Derived
        supertypes: [Base]
        members:
          - property: p
            visibility: private
        calls:
          - name: super-call
            expr: super.f()
          - name: this-call
            expr: this@Derived.p
            members: properties
      - fun: ext
        receiver: Base?
    calls:
      - expr: h()
      - name: on-value
        expr: b.f(x, g())
        values:
          b: Base
        autocasts:
          b: [Derived]
      - name: ctor
        expr: Base()
        members: constructors
      - name: via-object
        expr: Registry.lookup()
`

func TestParse(t *testing.T) {
	r := require.New(t)

	prog, err := fixture.Parse(slogt.New(t), []byte(program), "program.yaml")
	r.NoError(err)

	var names []string
	for _, site := range prog.Sites {
		names = append(names, site.Name)
	}
	r.Equal([]string{"super-call", "this-call", "h()", "on-value", "ctor", "via-object"}, names)

	site, ok := prog.Site("on-value")
	r.True(ok)
	r.Equal("b.f(x, g())", site.Expr.String())
	r.Equal("f", site.Call.Name)
	r.Equal("b: Base", site.Call.ExplicitReceiver.String())
	r.Equal(calls.Functions, site.Members)

	site, ok = prog.Site("super-call")
	r.True(ok)
	r.Equal("super: Base", site.Call.ExplicitReceiver.String())

	site, ok = prog.Site("this-call")
	r.True(ok)
	r.Equal(calls.Properties, site.Members)
	r.False(site.Expr.Invoked)

	site, ok = prog.Site("ctor")
	r.True(ok)
	r.Equal(calls.Constructors, site.Members)

	_, ok = prog.Site("missing")
	r.False(ok)

	app := prog.Root.Members("app")
	r.Len(app, 1)
	r.Equal(kinds.Namespace, app[0].Kind())
}

func TestParse_Resolves(t *testing.T) {
	r := require.New(t)

	prog, err := fixture.Parse(slogt.New(t), []byte(program), "program.yaml")
	r.NoError(err)

	p, err := calls.New(slogt.New(t), calls.DefaultConfig())
	r.NoError(err)

	for name, want := range map[string]string{
		"h()":        "task 1:\n  lib.h [this=<none>, receiver=<none>]\n",
		"via-object": "task 1:\n  lib.Registry.lookup [this=Registry: Registry, receiver=<none>]\n",
		"ctor":       "task 1:\n  app.Base.<init> [this=<none>, receiver=<none>]\n",
	} {
		site, ok := prog.Site(name)
		r.True(ok, name)

		tasks, err := p.ComputeTasks(site.Call, site.Members)
		r.NoError(err, name)
		r.Equal(want, calls.Format(tasks), name)
	}
}

func TestLoad(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "program.yaml")
	r.NoError(os.WriteFile(path, []byte(program), 0o644))

	prog, err := fixture.Load(slogt.New(t), path)
	r.NoError(err)
	r.Len(prog.Sites, 6)

	_, err = fixture.Load(slogt.New(t), filepath.Join(t.TempDir(), "missing.yaml"))
	r.ErrorIs(err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	for _, tt := range []struct {
		name     string
		src      string
		is       error
		contains string
	}{
		{
			name:     "invalid yaml",
			src:      "namespaces: [",
			contains: "bad.yaml",
		},
		{
			name: "unknown receiver type",
			src: `
namespaces:
  - name: app
    decls:
      - fun: f
        receiver: Missing
`,
			is: fixture.ErrUnknownType,
		},
		{
			name: "duplicate class",
			src: `
namespaces:
  - name: app
    decls:
      - class: C
      - trait: C
`,
			is: fixture.ErrDuplicateType,
		},
		{
			name: "supertype cycle",
			src: `
namespaces:
  - name: app
    decls:
      - class: A
        supertypes: [B]
      - class: B
        supertypes: [A]
`,
			is: topological.ErrCycleDetected,
		},
		{
			name: "local class",
			src: `
namespaces:
  - name: app
    decls:
      - fun: f
        body:
          - class: Local
`,
			contains: "local classes are not supported",
		},
		{
			name: "ambiguous declaration",
			src: `
namespaces:
  - name: app
    decls:
      - fun: f
        property: f
`,
			contains: "exactly one of",
		},
		{
			name: "unknown import",
			src: `
namespaces:
  - name: app
    imports: [nowhere]
`,
			contains: `unknown import "nowhere"`,
		},
		{
			name: "unknown receiver",
			src: `
namespaces:
  - name: app
    calls:
      - expr: x.f()
`,
			contains: "no type for receiver x",
		},
		{
			name: "this outside class",
			src: `
namespaces:
  - name: app
    calls:
      - expr: this.f()
`,
			contains: "no implicit receiver in scope",
		},
		{
			name: "bad visibility",
			src: `
namespaces:
  - name: app
    decls:
      - fun: f
        visibility: secret
`,
			contains: "secret",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			_, err := fixture.Parse(slogt.New(t), []byte(tt.src), "bad.yaml")
			r.Error(err)

			var fileErr fixture.FileError
			r.ErrorAs(err, &fileErr)
			r.Equal("bad.yaml", fileErr.File)

			if tt.is != nil {
				r.ErrorIs(err, tt.is)
			}

			if tt.contains != "" {
				r.ErrorContains(err, tt.contains)
			}
		})
	}
}

func TestParse_CollectsAllErrors(t *testing.T) {
	r := require.New(t)

	_, err := fixture.Parse(slogt.New(t), []byte(`
namespaces:
  - name: app
    decls:
      - fun: f
        receiver: Missing
      - fun: g
        receiver: AlsoMissing
`), "bad.yaml")
	r.ErrorContains(err, `"Missing"`)
	r.ErrorContains(err, `"AlsoMissing"`)

	var set *fixture.ErrorSet
	r.ErrorAs(err, &set)
	r.Len(set.Errs, 2)
}
