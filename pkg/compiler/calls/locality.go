package calls

import "github.com/rhino1998/calls/pkg/compiler/descriptors"

// PartitionByLocality splits candidates into those declared in the locality
// of container and all others, keeping their order.
func PartitionByLocality(candidates []*Candidate, container descriptors.Declaration, check LocalityCheck) (local, nonlocal []*Candidate) {
	for _, c := range candidates {
		if check.IsLocal(container, c.Descriptor) {
			local = append(local, c)
		} else {
			nonlocal = append(nonlocal, c)
		}
	}

	return local, nonlocal
}
