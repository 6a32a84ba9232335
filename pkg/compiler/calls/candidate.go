package calls

import (
	"fmt"

	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/receivers"
)

// Candidate binds a callable to the receivers it would be invoked with. One
// declaration may produce several candidates, one per receiver binding.
type Candidate struct {
	Descriptor       descriptors.Callable
	ThisObject       receivers.Receiver
	ReceiverArgument receivers.Receiver
}

func NewCandidate(desc descriptors.Callable) *Candidate {
	return &Candidate{
		Descriptor:       desc,
		ThisObject:       receivers.None,
		ReceiverArgument: receivers.None,
	}
}

func (c *Candidate) String() string {
	return fmt.Sprintf("%s [this=%s, receiver=%s]", descriptors.QualifiedName(c.Descriptor), c.ThisObject, c.ReceiverArgument)
}

// withReceiverPairs binds every descriptor to every combination of this
// object and receiver argument.
func withReceiverPairs(descs []descriptors.Callable, thisObjects, receiverArgs []receivers.Receiver) []*Candidate {
	var result []*Candidate
	for _, thisObject := range thisObjects {
		for _, receiverArg := range receiverArgs {
			for _, desc := range descs {
				c := NewCandidate(desc)
				c.ThisObject = thisObject
				c.ReceiverArgument = receiverArg
				result = append(result, c)
			}
		}
	}

	return result
}
