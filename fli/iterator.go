package fli

import "github.com/sarchlab/gogpi/gpi"

// regionRelationships is the static per-kind iteration table for an FLI
// region (spec.md §4.D "for FLI regions: constants/generics, signals,
// sub-regions"). There is no drivers/loads relationship on this
// backend.
var regionRelationships = []gpi.Relationship{
	{Name: "consts_generics", Fetch: fetchRel(RelConstsGenerics)},
	{Name: "signals", Fetch: fetchRel(RelSignals)},
	{Name: "sub_regions", Fetch: fetchRel(RelSubRegions)},
}

func fetchRel(rel Relation) func(parent gpi.Object) []gpi.RawHandle {
	return func(parent gpi.Object) []gpi.RawHandle {
		po, ok := parent.(*Object)
		if !ok {
			return nil
		}
		return po.backend.native.IterateRegion(po.raw, rel)
	}
}

func genArraySubRegions(label string) []gpi.Relationship {
	return []gpi.Relationship{
		{
			Name: "generate_instances",
			Fetch: func(parent gpi.Object) []gpi.RawHandle {
				all := fetchRel(RelSubRegions)(parent)
				po := parent.(*Object)
				var filtered []gpi.RawHandle
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
	for i := 0; i < len(scanned); i++ {
		if scanned[i] == '(' {
			return scanned[:i] == label
		}
	}
	return scanned == label
}

func baseLabel(scanned string) string {
	for i := 0; i < len(scanned); i++ {
		if scanned[i] == '(' {
			return scanned[:i]
		}
	}
	return scanned
}

// newRegionIterator mirrors the generate-fold policy applied by the
// VHPI backend: a for-generate sub-region folds into one fabricated
// GENARRAY pseudo-region per distinct base label (spec.md §4.D Edge
// cases), aliasing the parent's own native pointer.
func newRegionIterator(b *Backend, parent *Object) *gpi.RelationshipIterator {
	if parent.KindValue == gpi.KindGenArray {
		return gpi.NewRelationshipIterator(parent, b, genArraySubRegions(parent.LeafName),
			func(raw gpi.RawHandle) (gpi.StepStatus, gpi.Object, string) {
				return gpi.StepNative, b.wrap(raw, parent), ""
			})
	}

	seenLabels := make(map[string]bool)
	return gpi.NewRelationshipIterator(parent, b, regionRelationships, func(raw gpi.RawHandle) (gpi.StepStatus, gpi.Object, string) {
		if b.native.GetFamily(raw) == FamilyRegion && b.native.GetAccType(raw) == AccForGenerate {
			label := baseLabel(b.native.GetName(raw))
			if seenLabels[label] {
				return gpi.StepNativeNoName, nil, ""
			}
			seenLabels[label] = true
			pseudo := &Object{backend: b, raw: parent.raw, family: FamilyRegion}
			pseudo.BackendRef = b
			pseudo.KindValue = gpi.KindGenArray
			pseudo.ConstFlag = true
			pseudo.IndexableFlag = true
			pseudo.LeafName = label
			pseudo.FullPath = parent.FullPath + "/" + label
			return gpi.StepNative, pseudo, ""
		}

		name := b.native.GetName(raw)
		if name == "" {
			return gpi.StepNotNativeNoName, nil, ""
		}
		return gpi.StepNative, b.wrap(raw, parent), name
	})
}
