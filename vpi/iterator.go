package vpi

import "github.com/sarchlab/gogpi/gpi"

// moduleRelationships is the static per-kind iteration table for a
// Verilog module (spec.md §4.D): nets, regs, memories, parameters,
// ports, internal scopes (which surface named events and
// gen-scope-arrays), then sub-modules.
var moduleRelationships = []gpi.Relationship{
	{Name: "nets", Fetch: fetchRel(RelNet)},
	{Name: "regs", Fetch: fetchRel(RelReg)},
	{Name: "memories", Fetch: fetchRel(RelMemory)},
	{Name: "parameters", Fetch: fetchRel(RelParameter)},
	{Name: "ports", Fetch: fetchRel(RelPort)},
	{Name: "internal_scopes", Fetch: fetchRel(RelInternal)},
	{Name: "modules", Fetch: fetchRel(RelModule)},
}

func fetchRel(rel VpiRelation) func(parent gpi.Object) []gpi.RawHandle {
	return func(parent gpi.Object) []gpi.RawHandle {
		po, ok := parent.(*Object)
		if !ok {
			return nil
		}
		iter, ok := po.backend.native.Iterate(po.raw, rel)
		if !ok {
			return nil
		}
		var items []gpi.RawHandle
		for {
			item, ok := po.backend.native.Scan(iter)
			if !ok {
				break
			}
			items = append(items, item)
		}
		return items
	}
}

// genArrayRelationships is followed when iterating a GENARRAY
// pseudo-region: only the sub-region relationship, filtered to items
// whose base name matches the pseudo-region's label (spec.md §4.D Edge
// cases).
func genArrayRelationships(label string) []gpi.Relationship {
	return []gpi.Relationship{
		{
			Name: "sub_regions",
			Fetch: func(parent gpi.Object) []gpi.RawHandle {
				all := fetchRel(RelInternal)(parent)
				filtered := all[:0]
				po := parent.(*Object)
				for _, raw := range all {
					if baseLabelMatches(po.backend.native.GetName(raw), label) {
						filtered = append(filtered, raw)
					}
				}
				return filtered
			},
		},
	}
}

func baseLabelMatches(scanned, label string) bool {
	// Ignore a trailing "[n]" index suffix when comparing against the
	// pseudo-region's base label.
	for i := 0; i < len(scanned); i++ {
		if scanned[i] == '[' {
			return scanned[:i] == label
		}
	}
	return scanned == label
}

func newModuleIterator(b *Backend, parent *Object) *gpi.RelationshipIterator {
	rels := moduleRelationships
	if parent.KindValue == gpi.KindGenArray {
		rels = genArrayRelationships(parent.LeafName)
	}
	return gpi.NewRelationshipIterator(parent, b, rels, func(raw gpi.RawHandle) (gpi.StepStatus, gpi.Object, string) {
		vt := b.native.GetType(raw)
		switch vt {
		case VpiModule, VpiNet, VpiReg, VpiMemory, VpiParameter, VpiPort, VpiGenScopeArray, VpiGenScope:
			return gpi.StepNative, b.wrap(raw, parent), ""
		case VpiNamedEvent:
			return gpi.StepNativeNoName, nil, ""
		default:
			name := b.native.GetName(raw)
			if name == "" {
				return gpi.StepNotNativeNoName, nil, ""
			}
			return gpi.StepNotNative, nil, name
		}
	})
}
