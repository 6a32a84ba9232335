package calls

import (
	"fmt"
	"log/slog"

	"github.com/rhino1998/calls/pkg/compiler/autocast"
	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/receivers"
	"github.com/rhino1998/calls/pkg/compiler/scopes"
	"github.com/rhino1998/calls/pkg/compiler/types"
	"github.com/rhino1998/calls/pkg/parser"
)

// Call is an unresolved call site: [ExplicitReceiver.]Name(...) in Scope.
type Call struct {
	Scope            scopes.Scope
	ExplicitReceiver receivers.Receiver
	Name             string
	Reference        *parser.ReferenceExpr

	// Autocasts expands receivers into their smart cast variants. Nil means
	// no narrowing is known at the call site.
	Autocasts autocast.Service
}

// Prioritizer orders the candidates of a call into tasks. It holds no state
// between calls and is safe for concurrent use.
type Prioritizer struct {
	logger *slog.Logger
	config Config
}

func New(logger *slog.Logger, config Config) (*Prioritizer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate prioritizer config: %w", err)
	}

	return &Prioritizer{
		logger: logger,
		config: config,
	}, nil
}

// ComputeTasks returns the tasks for call in priority order. An empty result
// means the name is unresolved.
func (p *Prioritizer) ComputeTasks(call Call, members MemberPrioritizer) ([]*Task, error) {
	if call.Scope == nil {
		return nil, fmt.Errorf("call %q has no scope: %w", call.Name, ErrInvalidCall)
	}

	explicit := call.ExplicitReceiver
	if explicit == nil {
		explicit = receivers.None
	}

	autocasts := call.Autocasts
	if autocasts == nil {
		autocasts = autocast.None
	}

	from := call.Scope.ContainingDeclaration()

	scope := call.Scope
	if explicit.Exists() {
		if _, ok := explicit.Type().(*types.Namespace); ok {
			scope = scopes.MemberScopeOf(explicit.Type())
			explicit = receivers.None
		}
	}

	super, _ := receivers.Super(explicit)

	res := &resolution{
		Prioritizer: p,
		logger:      p.logger.With("name", call.Name),
		scope:       scope,
		container:   from,
		name:        call.Name,
		members:     members,
		autocasts:   autocasts,
	}

	res.logger.Debug("computing tasks", "receiver", explicit.String())

	tiers, err := res.expand(explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to prioritize candidates for %q: %w", call.Name, err)
	}

	holder := NewTaskHolder(call.Reference, super, func(c *Candidate) bool {
		if descriptors.IsError(c.Descriptor) {
			return true
		}

		return p.config.Visibility.IsVisible(c.Descriptor, from)
	})
	holder.Add(tiers...)

	tasks := holder.Tasks()
	res.logger.Debug("computed tasks", "tiers", len(tiers), "tasks", len(tasks))

	return tasks, nil
}

// resolution carries what stays fixed while the receiver hierarchy of one
// call is expanded.
type resolution struct {
	*Prioritizer

	logger    *slog.Logger
	scope     scopes.Scope
	container descriptors.Declaration
	name      string
	members   MemberPrioritizer
	autocasts autocast.Service
}

// expand returns the tiers contributed by receiver, highest priority first.
func (r *resolution) expand(receiver receivers.Receiver) ([][]*Candidate, error) {
	if receiver.Exists() {
		return r.expandReceiver(receiver)
	}

	return r.expandNoReceiver()
}

func (r *resolution) expandReceiver(receiver receivers.Receiver) ([][]*Candidate, error) {
	variants := r.autocasts.Variants(receiver)

	extensions, err := r.withImpliedThis(variants, r.members.ExtensionsByName(r.scope, r.name))
	if err != nil {
		return nil, err
	}

	local, nonlocal := PartitionByLocality(extensions, r.container, r.config.Locality)

	var members []*Candidate
	for _, variant := range variants {
		members = append(members, withReceiverPairs(
			r.members.MembersByName(variant.Type(), r.name),
			[]receivers.Receiver{variant},
			[]receivers.Receiver{receivers.None},
		)...)
	}

	tiers := [][]*Candidate{append(local, members...)}
	r.logger.Debug("local extensions and members", "receiver", receiver.String(), "local", len(local), "members", len(members))

	for _, implicit := range r.scope.ImplicitReceivers() {
		memberExtensions := r.members.ExtensionsByName(scopes.MemberScopeOf(implicit.Type()), r.name)
		tier := withReceiverPairs(memberExtensions, r.autocasts.Variants(implicit), variants)

		r.logger.Debug("member extensions", "receiver", receiver.String(), "implicit", implicit.String(), "candidates", len(tier))
		tiers = append(tiers, tier)
	}

	r.logger.Debug("nonlocal extensions", "receiver", receiver.String(), "candidates", len(nonlocal))

	return append(tiers, nonlocal), nil
}

func (r *resolution) expandNoReceiver() ([][]*Candidate, error) {
	plain, err := r.withImpliedThis([]receivers.Receiver{receivers.None}, r.members.NonExtensionsByName(r.scope, r.name))
	if err != nil {
		return nil, err
	}

	local, nonlocal := PartitionByLocality(plain, r.container, r.config.Locality)
	r.logger.Debug("plain candidates", "local", len(local), "nonlocal", len(nonlocal))

	tiers := [][]*Candidate{local}
	for _, implicit := range r.scope.ImplicitReceivers() {
		implicitTiers, err := r.expand(implicit)
		if err != nil {
			return nil, err
		}

		tiers = append(tiers, implicitTiers...)
	}

	return append(tiers, nonlocal), nil
}

// withImpliedThis binds each descriptor to each receiver argument, choosing
// its this object from the scope. Descriptors whose this cannot be supplied
// are left out.
func (r *resolution) withImpliedThis(receiverArgs []receivers.Receiver, descs []descriptors.Callable) ([]*Candidate, error) {
	var result []*Candidate
	for _, receiverArg := range receiverArgs {
		for _, desc := range descs {
			thisObject, ok, err := r.impliedThis(desc)
			if err != nil {
				return nil, err
			}

			if !ok {
				r.logger.Debug("no implicit this for candidate", "descriptor", descriptors.QualifiedName(desc))
				continue
			}

			c := NewCandidate(desc)
			c.ThisObject = thisObject
			c.ReceiverArgument = receiverArg
			result = append(result, c)
		}
	}

	return result, nil
}

// impliedThis picks the innermost implicit receiver compatible with the
// descriptor's expected this, falling back to the singleton object that
// declares it.
func (r *resolution) impliedThis(desc descriptors.Callable) (receivers.Receiver, bool, error) {
	expected := desc.ExpectedThis()
	if expected == nil {
		return receivers.None, true, nil
	}

	for _, implicit := range r.scope.ImplicitReceivers() {
		if r.config.Subtyping.IsSubtypeOf(implicit.Type(), expected) {
			return implicit, true, nil
		}
	}

	object, err := singletonContainer(desc)
	if err != nil {
		return nil, false, err
	}

	if object == nil {
		return nil, false, nil
	}

	return receivers.NewClass(object), true, nil
}

// singletonContainer returns the object declaring desc, or nil. The class of
// a constructor is skipped so that constructors of classes nested in an
// object resolve against the object.
func singletonContainer(desc descriptors.Callable) (*descriptors.Class, error) {
	container := desc.Container()
	if desc.Kind() == kinds.Constructor {
		if container == nil {
			return nil, fmt.Errorf("constructor %s has no containing class: %w", desc.Name(), ErrMalformedDescriptor)
		}

		container = container.Container()
	}

	class, ok := container.(*descriptors.Class)
	if !ok || !class.Kind().IsSingleton() {
		return nil, nil
	}

	return class, nil
}
