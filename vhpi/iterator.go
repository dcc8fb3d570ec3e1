package vhpi

import "github.com/sarchlab/gogpi/gpi"

// regionRelationships is the static per-kind iteration table for a VHDL
// region (spec.md §4.D): internal regions, signal decls, variable
// decls, port decls, generic decls, constant decls, instantiation
// statements, block statements.
var regionRelationships = []gpi.Relationship{
	{Name: "internal_regions", Fetch: fetchRel(RelInternalRegions)},
	{Name: "sig_decls", Fetch: fetchRel(RelSigDecls)},
	{Name: "var_decls", Fetch: fetchRel(RelVarDecls)},
	{Name: "port_decls", Fetch: fetchRel(RelPortDecls)},
	{Name: "generic_decls", Fetch: fetchRel(RelGenericDecls)},
	{Name: "const_decls", Fetch: fetchRel(RelConstDecls)},
	{Name: "comp_inst_stmts", Fetch: fetchRel(RelCompInstStmts)},
	{Name: "block_stmts", Fetch: fetchRel(RelBlockStmts)},
}

func fetchRel(rel VhpiRelation) func(parent gpi.Object) []gpi.RawHandle {
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

func genArraySubRegions(label string) []gpi.Relationship {
	return []gpi.Relationship{
		{
			Name: "generate_instances",
			Fetch: func(parent gpi.Object) []gpi.RawHandle {
				all := fetchRel(RelCompInstStmts)(parent)
				all = append(all, fetchRel(RelBlockStmts)(parent)...)
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

// newRegionIterator builds the iterator for parent. When parent is a
// fabricated GENARRAY pseudo-region, only the generate-instance
// relationship is followed. Otherwise, a for-generate child encountered
// during the normal traversal is folded into one fabricated pseudo-
// region per distinct base label (spec.md §4.D Edge cases): the first
// instance of a label yields the pseudo-region; later instances of the
// same label are silently skipped.
func newRegionIterator(b *Backend, parent *Object) *gpi.RelationshipIterator {
	if parent.KindValue == gpi.KindGenArray {
		return gpi.NewRelationshipIterator(parent, b, genArraySubRegions(parent.LeafName),
			func(raw gpi.RawHandle) (gpi.StepStatus, gpi.Object, string) {
				return gpi.StepNative, b.wrap(raw, parent), ""
			})
	}

	seenLabels := make(map[string]bool)
	return gpi.NewRelationshipIterator(parent, b, regionRelationships, func(raw gpi.RawHandle) (gpi.StepStatus, gpi.Object, string) {
		class := b.native.GetClass(raw)
		if class == ClassForGenerate {
			label := baseLabel(b.native.GetName(raw))
			if seenLabels[label] {
				return gpi.StepNativeNoName, nil, ""
			}
			seenLabels[label] = true
			pseudo := &Object{backend: b, raw: parent.raw}
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

func baseLabel(scanned string) string {
	for i := 0; i < len(scanned); i++ {
		if scanned[i] == '(' {
			return scanned[:i]
		}
	}
	return scanned
}
