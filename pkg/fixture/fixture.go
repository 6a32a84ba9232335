package fixture

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rhino1998/calls/pkg/compiler/calls"
	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/parser"
	"gopkg.in/yaml.v3"
)

type fileNode struct {
	Namespaces []namespaceNode `yaml:"namespaces"`
}

type namespaceNode struct {
	Name    string     `yaml:"name"`
	Imports []string   `yaml:"imports,omitempty"`
	Decls   []declNode `yaml:"decls,omitempty"`
	Calls   []callNode `yaml:"calls,omitempty"`
}

// declNode is one declaration. Exactly one of the naming fields is set and
// decides the kind of the declaration.
type declNode struct {
	Fun      string `yaml:"fun,omitempty"`
	Property string `yaml:"property,omitempty"`
	Class    string `yaml:"class,omitempty"`
	Object   string `yaml:"object,omitempty"`
	Trait    string `yaml:"trait,omitempty"`
	Error    string `yaml:"error,omitempty"`

	// Receiver makes a fun or property an extension of the named type.
	Receiver   string   `yaml:"receiver,omitempty"`
	Supertypes []string `yaml:"supertypes,omitempty"`
	Visibility string   `yaml:"visibility,omitempty"`

	Members []declNode `yaml:"members,omitempty"`
	Body    []declNode `yaml:"body,omitempty"`
	Calls   []callNode `yaml:"calls,omitempty"`
}

type callNode struct {
	Name    string `yaml:"name,omitempty"`
	Expr    string `yaml:"expr"`
	Members string `yaml:"members,omitempty"`

	// Values gives the static type of receiver expressions by their text.
	Values map[string]string `yaml:"values,omitempty"`

	// Autocasts lists the types a receiver expression is narrowed to.
	Autocasts map[string][]string `yaml:"autocasts,omitempty"`
}

// Program is a symbol table built from a fixture, with the call sites it
// declares.
type Program struct {
	Root  *descriptors.Namespace
	Sites []*Site
}

func (p *Program) Site(name string) (*Site, bool) {
	for _, site := range p.Sites {
		if site.Name == name {
			return site, true
		}
	}

	return nil, false
}

type Site struct {
	Name    string
	Expr    *parser.CallExpr
	Call    calls.Call
	Members calls.MemberPrioritizer
}

func Load(logger *slog.Logger, path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %q: %w", path, err)
	}

	return Parse(logger, data, path)
}

// Parse builds a program from fixture YAML. The path is only used in errors.
func Parse(logger *slog.Logger, data []byte, path string) (*Program, error) {
	var file fileNode
	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, FileError{File: path, Err: err}
	}

	prog, err := newBuilder(logger).build(file)
	if err != nil {
		return nil, FileError{File: path, Err: err}
	}

	logger.Debug("loaded fixture", "file", path, "sites", len(prog.Sites))

	return prog, nil
}
