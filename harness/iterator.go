package harness

import "github.com/sarchlab/gogpi/gpi"

// sliceIterator walks an already-materialized list of children. The
// harness backend never needs StepNotNative (there is only one backend
// registered), so every item is StepNative.
type sliceIterator struct {
	parent gpi.Object
	owner  gpi.Backend
	items  []*Object
	cursor int
}

func newSliceIterator(parent gpi.Object, owner gpi.Backend, items []*Object) *sliceIterator {
	return &sliceIterator{parent: parent, owner: owner, items: items}
}

func (it *sliceIterator) Parent() gpi.Object { return it.parent }
func (it *sliceIterator) Owner() gpi.Backend { return it.owner }

func (it *sliceIterator) Next() (gpi.StepStatus, gpi.Object, string, gpi.RawHandle) {
	if it.cursor >= len(it.items) {
		return gpi.StepEnd, nil, "", nil
	}
	obj := it.items[it.cursor]
	it.cursor++
	return gpi.StepNative, obj, "", nil
}
