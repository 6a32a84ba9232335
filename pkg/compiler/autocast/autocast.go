package autocast

import (
	"github.com/rhino1998/calls/pkg/compiler/receivers"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

// Service expands a receiver into the types it may be treated as at a call
// site. Variants is only called for receivers that exist; the result starts
// with the receiver itself.
type Service interface {
	Variants(r receivers.Receiver) []receivers.Receiver
}

type ServiceFunc func(r receivers.Receiver) []receivers.Receiver

func (f ServiceFunc) Variants(r receivers.Receiver) []receivers.Receiver {
	return f(r)
}

// None performs no narrowing.
var None Service = ServiceFunc(func(r receivers.Receiver) []receivers.Receiver {
	return []receivers.Receiver{r}
})

// DataFlowInfo records the types expressions were narrowed to by earlier
// checks, keyed by expression text.
type DataFlowInfo struct {
	narrowed map[string][]types.Type
}

func NewDataFlowInfo() *DataFlowInfo {
	return &DataFlowInfo{
		narrowed: make(map[string][]types.Type),
	}
}

// Narrow records that expr is known to have type typ. Types are kept in the
// order they were recorded, and recording the same type twice is a no-op.
func (d *DataFlowInfo) Narrow(expr string, typ types.Type) *DataFlowInfo {
	for _, existing := range d.narrowed[expr] {
		if types.Equal(existing, typ) {
			return d
		}
	}

	d.narrowed[expr] = append(d.narrowed[expr], typ)

	return d
}

func (d *DataFlowInfo) Narrowed(expr string) []types.Type {
	return d.narrowed[expr]
}

func (d *DataFlowInfo) Variants(r receivers.Receiver) []receivers.Receiver {
	variants := []receivers.Receiver{r}

	expr, ok := r.(*receivers.Expression)
	if !ok {
		return variants
	}

	for _, typ := range d.narrowed[expr.Expression().String()] {
		variants = append(variants, receivers.NewExpression(expr.Expression(), typ))
	}

	return variants
}
