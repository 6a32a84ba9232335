package fixture

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rhino1998/calls/pkg/compiler/autocast"
	"github.com/rhino1998/calls/pkg/compiler/calls"
	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/receivers"
	"github.com/rhino1998/calls/pkg/compiler/scopes"
	"github.com/rhino1998/calls/pkg/compiler/types"
	"github.com/rhino1998/calls/pkg/parser"
	"github.com/rhino1998/calls/pkg/topological"
)

var (
	ErrUnknownType   = errors.New("unknown type")
	ErrDuplicateType = errors.New("duplicate type")
)

type classEntry struct {
	path  string
	node  declNode
	class *descriptors.Class
}

type builder struct {
	logger *slog.Logger
	errs   *ErrorSet

	root       *descriptors.Namespace
	namespaces map[string]*descriptors.Namespace
	classes    map[string]*classEntry
	sites      []*Site
}

func newBuilder(logger *slog.Logger) *builder {
	root := descriptors.NewNamespace("", nil)

	return &builder{
		logger:     logger,
		errs:       new(ErrorSet),
		root:       root,
		namespaces: map[string]*descriptors.Namespace{"": root},
		classes:    make(map[string]*classEntry),
	}
}

// build declares classes first, links their supertypes in dependency order
// and only then declares callables, whose signatures refer to class types.
func (b *builder) build(file fileNode) (*Program, error) {
	for _, nsNode := range file.Namespaces {
		ns := b.namespace(nsNode.Name)
		b.declareClasses(nsNode.Decls, ns, ns.Add)
	}

	b.linkSupertypes()

	for _, nsNode := range file.Namespaces {
		ns := b.namespace(nsNode.Name)

		scope := scopes.NewLexical(nil, nsNode.Name, ns)
		scope.Import(scopes.MemberScopeOf(ns.Type()))

		for _, imported := range nsNode.Imports {
			typ, err := b.importedType(imported)
			if err != nil {
				b.errs.AddAt(nsNode.Name, err)
				continue
			}

			scope.Import(scopes.MemberScopeOf(typ))
		}

		b.declareCallables(nsNode.Decls, ns, scope, ns.Add)
		b.declareSites(nsNode.Calls, scope)
	}

	err := b.errs.Err()
	if err != nil {
		return nil, err
	}

	return &Program{
		Root:  b.root,
		Sites: b.sites,
	}, nil
}

// importedType is the type whose members an import brings into a file: a
// namespace or a singleton object.
func (b *builder) importedType(name string) (types.Type, error) {
	if ns, ok := b.namespaces[name]; ok {
		return ns.Type(), nil
	}

	if entry, ok := b.classes[name]; ok && entry.class.Kind().IsSingleton() {
		return entry.class.DefaultType(), nil
	}

	return nil, fmt.Errorf("unknown import %q", name)
}

func (b *builder) namespace(name string) *descriptors.Namespace {
	if ns, ok := b.namespaces[name]; ok {
		return ns
	}

	parent := b.root
	if i := strings.LastIndex(name, "."); i >= 0 {
		parent = b.namespace(name[:i])
	}

	ns := descriptors.NewNamespace(name[strings.LastIndex(name, ".")+1:], parent)
	parent.Add(ns)
	b.namespaces[name] = ns

	return ns
}

func (node declNode) kind() (string, kinds.Kind, error) {
	var name string
	kind := kinds.Unknown
	set := 0

	for _, field := range []struct {
		name string
		kind kinds.Kind
	}{
		{node.Fun, kinds.Function},
		{node.Property, kinds.Property},
		{node.Class, kinds.Class},
		{node.Object, kinds.Object},
		{node.Trait, kinds.Trait},
		{node.Error, kinds.Error},
	} {
		if field.name != "" {
			name, kind = field.name, field.kind
			set++
		}
	}

	if set != 1 {
		return "", kinds.Unknown, fmt.Errorf("declaration must have exactly one of fun, property, class, object, trait or error")
	}

	return name, kind, nil
}

func (b *builder) declareClasses(nodes []declNode, container descriptors.Declaration, add func(descriptors.Declaration)) {
	for _, node := range nodes {
		name, kind, err := node.kind()
		if err != nil || !kind.IsClassifier() {
			continue
		}

		path := qualify(container, name)

		visibility, err := descriptors.ParseVisibility(node.Visibility)
		if err != nil {
			b.errs.AddAt(path, err)
		}

		if _, ok := b.classes[name]; ok {
			b.errs.AddAt(path, fmt.Errorf("%w %q", ErrDuplicateType, name))
			continue
		}

		class := descriptors.NewClass(name, kind, container, visibility)
		if kind == kinds.Class {
			class.AddConstructor(visibility)
		}

		add(class)
		b.classes[name] = &classEntry{
			path:  path,
			node:  node,
			class: class,
		}

		b.declareClasses(node.Members, class, class.Add)
	}
}

func (b *builder) linkSupertypes() {
	var entries []*classEntry
	for _, entry := range b.classes {
		entries = append(entries, entry)
	}

	ordered, err := topological.SortFunc(entries,
		func(entry *classEntry) string { return entry.class.Name() },
		func(entry *classEntry) []string {
			var deps []string
			for _, super := range entry.node.Supertypes {
				deps = append(deps, strings.TrimSuffix(super, "?"))
			}

			return deps
		},
	)
	if err != nil {
		b.errs.Add(fmt.Errorf("invalid class hierarchy: %w", err))
		return
	}

	for _, entry := range ordered {
		var supertypes []types.Type
		for _, super := range entry.node.Supertypes {
			typ, err := b.resolveType(super)
			if err != nil {
				b.errs.AddAt(entry.path, err)
				continue
			}

			supertypes = append(supertypes, types.MakeNotNull(typ))
		}

		entry.class.SetSupertypes(supertypes...)
	}
}

func (b *builder) resolveType(name string) (types.Type, error) {
	base, nullable := strings.CutSuffix(name, "?")

	entry, ok := b.classes[base]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
	}

	var typ types.Type = entry.class.DefaultType()
	if nullable {
		typ = types.MakeNullable(typ)
	}

	return typ, nil
}

func (b *builder) declareCallables(nodes []declNode, container descriptors.Declaration, scope *scopes.Lexical, add func(descriptors.Declaration)) {
	for _, node := range nodes {
		name, kind, err := node.kind()
		if err != nil {
			b.errs.AddAt(qualify(container, name), err)
			continue
		}

		path := qualify(container, name)

		if kind.IsClassifier() {
			entry, ok := b.classes[name]
			if !ok || entry.class.Container() != container {
				// Already reported as a duplicate.
				continue
			}

			body := scopes.NewLexical(scope, name, entry.class)
			body.SetReceiver(receivers.NewClass(entry.class))

			b.declareCallables(node.Members, entry.class, body, entry.class.Add)
			b.declareSites(node.Calls, body)

			continue
		}

		if kind == kinds.Error {
			add(descriptors.NewError(name))
			continue
		}

		visibility, err := descriptors.ParseVisibility(node.Visibility)
		if err != nil {
			b.errs.AddAt(path, err)
		}

		var receiver types.Type
		if node.Receiver != "" {
			receiver, err = b.resolveType(node.Receiver)
			if err != nil {
				b.errs.AddAt(path, err)
				continue
			}
		}

		var callable descriptors.Callable
		if kind == kinds.Property {
			callable = descriptors.NewProperty(name, container, receiver, visibility)
		} else {
			callable = descriptors.NewFunction(name, container, receiver, visibility)
		}

		add(callable)

		body := scopes.NewLexical(scope, name, callable)
		if receiver != nil {
			body.SetReceiver(receivers.NewExtension(callable))
		}

		if hasClassifier(node.Body) {
			b.errs.AddAt(path, fmt.Errorf("local classes are not supported"))
			continue
		}

		b.declareCallables(node.Body, callable, body, func(decl descriptors.Declaration) {
			err := body.Put(decl)
			if err != nil {
				b.errs.AddAt(path, err)
			}
		})
		b.declareSites(node.Calls, body)
	}
}

func hasClassifier(nodes []declNode) bool {
	for _, node := range nodes {
		_, kind, err := node.kind()
		if err == nil && kind.IsClassifier() {
			return true
		}
	}

	return false
}

func qualify(container descriptors.Declaration, name string) string {
	prefix := descriptors.QualifiedName(container)
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

func membersFor(name string) (calls.MemberPrioritizer, error) {
	switch name {
	case "", "functions":
		return calls.Functions, nil
	case "properties":
		return calls.Properties, nil
	case "constructors":
		return calls.Constructors, nil
	default:
		return nil, fmt.Errorf("unknown member kind %q", name)
	}
}

func (b *builder) declareSites(nodes []callNode, scope *scopes.Lexical) {
	for _, node := range nodes {
		name := node.Name
		if name == "" {
			name = node.Expr
		}

		site, err := b.site(name, node, scope)
		if err != nil {
			b.errs.AddAt(name, err)
			continue
		}

		b.sites = append(b.sites, site)
	}
}

func (b *builder) site(name string, node callNode, scope *scopes.Lexical) (*Site, error) {
	expr, err := parser.ParseCall(node.Expr)
	if err != nil {
		return nil, fmt.Errorf("invalid call %q: %w", node.Expr, err)
	}

	members, err := membersFor(node.Members)
	if err != nil {
		return nil, err
	}

	info := autocast.NewDataFlowInfo()
	for target, typeNames := range node.Autocasts {
		for _, typeName := range typeNames {
			typ, err := b.resolveType(typeName)
			if err != nil {
				return nil, err
			}

			info.Narrow(target, typ)
		}
	}

	explicit := receivers.None
	if expr.Receiver != nil {
		explicit, err = b.receiver(expr.Receiver, node.Values, scope)
		if err != nil {
			return nil, err
		}
	}

	return &Site{
		Name: name,
		Expr: expr,
		Call: calls.Call{
			Scope:            scope,
			ExplicitReceiver: explicit,
			Name:             string(expr.Callee.Name),
			Reference:        expr.Callee,
			Autocasts:        info,
		},
		Members: members,
	}, nil
}

// receiver types an explicit receiver expression: by its declared value
// type, as this or super of an enclosing receiver, or as a reference to a
// namespace or object.
func (b *builder) receiver(expr parser.Expr, values map[string]string, scope scopes.Scope) (receivers.Receiver, error) {
	if typeName, ok := values[expr.String()]; ok {
		typ, err := b.resolveType(typeName)
		if err != nil {
			return nil, err
		}

		return receivers.NewExpression(expr, typ), nil
	}

	switch expr := expr.(type) {
	case *parser.ThisExpr:
		this, err := labeledReceiver(scope, expr.Label)
		if err != nil {
			return nil, err
		}

		return receivers.NewExpression(expr, this.Type()), nil
	case *parser.SuperExpr:
		this, err := labeledReceiver(scope, expr.Label)
		if err != nil {
			return nil, err
		}

		class, ok := this.(*receivers.Class)
		if !ok || len(class.Class().Supertypes()) == 0 {
			return nil, fmt.Errorf("%s has no supertype", this)
		}

		return receivers.NewExpression(expr, class.Class().Supertypes()[0]), nil
	}

	if ns, ok := b.namespaces[expr.String()]; ok && expr.String() != "" {
		return receivers.NewExpression(expr, ns.Type()), nil
	}

	if entry, ok := b.classes[expr.String()]; ok && entry.class.Kind().IsSingleton() {
		return receivers.NewExpression(expr, entry.class.DefaultType()), nil
	}

	return nil, fmt.Errorf("no type for receiver %s", expr)
}

func labeledReceiver(scope scopes.Scope, label parser.Identifier) (receivers.Receiver, error) {
	for _, implicit := range scope.ImplicitReceivers() {
		if label == "" {
			return implicit, nil
		}

		switch implicit := implicit.(type) {
		case *receivers.Class:
			if implicit.Class().Name() == string(label) {
				return implicit, nil
			}
		case *receivers.Extension:
			if implicit.Callable().Name() == string(label) {
				return implicit, nil
			}
		}
	}

	if label == "" {
		return nil, fmt.Errorf("no implicit receiver in scope")
	}

	return nil, fmt.Errorf("no implicit receiver labeled %s", label)
}
