package vhpi_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/vhpi"
)

var _ = Describe("Backend", func() {
	var (
		native  *fakeNative
		top     *fakeHandle
		sigClk  *fakeHandle
		sigVec  *fakeHandle
		genBlk0 *fakeHandle
		genBlk1 *fakeHandle
		backend *vhpi.Backend
	)

	BeforeEach(func() {
		sigClk = &fakeHandle{name: "clk", full: "top/clk", class: vhpi.ClassSigDecl, literals: []string{"U", "X", "0", "1", "Z", "W", "L", "H", "-"}, binstr: "0", size: 1}
		sigVec = &fakeHandle{name: "data", full: "top/data", class: vhpi.ClassSigDecl, literals: []string{"U", "X", "0", "1", "Z", "W", "L", "H", "-"}, binstr: "00000000", size: 8, left: 7, right: 0, hasRange: true}
		genBlk0 = &fakeHandle{name: "gen_blk(0)", class: vhpi.ClassForGenerate}
		genBlk1 = &fakeHandle{name: "gen_blk(1)", class: vhpi.ClassForGenerate}
		top = &fakeHandle{
			name: "top", full: "top", class: vhpi.ClassRootInst,
			children: map[vhpi.VhpiRelation][]*fakeHandle{
				vhpi.RelSigDecls:      {sigClk, sigVec},
				vhpi.RelBlockStmts:    {genBlk0, genBlk1},
			},
		}
		native = &fakeNative{roots: []*fakeHandle{top}, product: "questa", version: "2024.1"}
		backend = vhpi.New(native)
	})

	It("recognizes a 9-valued logic scalar", func() {
		root, _ := backend.GetRootHandle("")
		obj, ok := root.ChildByName("clk")
		Expect(ok).To(BeTrue())
		Expect(obj.Kind()).To(Equal(gpi.KindLogic))
	})

	It("recognizes a logic vector and reports its declared range", func() {
		root, _ := backend.GetRootHandle("")
		obj, ok := root.ChildByName("data")
		Expect(ok).To(BeTrue())
		Expect(obj.Kind()).To(Equal(gpi.KindArray))
		Expect(obj.RangeLeft()).To(Equal(int64(7)))
		Expect(obj.RangeDirection()).To(Equal(gpi.DirDownto))
	})

	It("forces a logic scalar using the VHDL literal construction", func() {
		root, _ := backend.GetRootHandle("")
		obj, _ := root.ChildByName("clk")
		Expect(obj.SetBinstr("1", gpi.ActionForce)).To(Succeed())
		Expect(native.lastLiteral).To(Equal("2#1#"))
	})

	It("tolerates an unconstrained-array sentinel and falls back to size", func() {
		unconstrained := &fakeHandle{
			name: "buf", class: vhpi.ClassSigDecl,
			literals: []string{"U", "X", "0", "1", "Z", "W", "L", "H", "-"},
			binstr:   "0000", size: 4, left: vhpi.UnconstrainedSentinel, right: 0, hasRange: true,
		}
		top.children[vhpi.RelSigDecls] = append(top.children[vhpi.RelSigDecls], unconstrained)

		root, _ := backend.GetRootHandle("")
		obj, ok := root.ChildByName("buf")
		Expect(ok).To(BeTrue())
		Expect(obj.Indexable()).To(BeTrue())
		Expect(obj.RangeLeft()).To(Equal(int64(0)))
		Expect(obj.RangeRight()).To(Equal(int64(3)))
	})

	It("folds repeated for-generate instances into one pseudo-region", func() {
		root, _ := backend.GetRootHandle("")
		it, ok := root.Iterate(gpi.SelObjects)
		Expect(ok).To(BeTrue())

		reg := gpi.NewRegistry(false)
		var genArrays int
		for {
			obj, ok := reg.Next(it)
			if !ok {
				break
			}
			if obj.Kind() == gpi.KindGenArray {
				genArrays++
			}
		}
		Expect(genArrays).To(Equal(1))
	})
})
