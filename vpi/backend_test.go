package vpi_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/vpi"
)

var _ = Describe("Backend", func() {
	var (
		native *fakeNative
		top    *fakeHandle
		clk    *fakeHandle
		backend *vpi.Backend
	)

	BeforeEach(func() {
		clk = &fakeHandle{name: "clk", full: "top.clk", vtype: vpi.VpiNet, binstr: "0", size: 1}
		top = &fakeHandle{
			name: "top", full: "top", vtype: vpi.VpiModule,
			children: map[vpi.VpiRelation][]*fakeHandle{
				vpi.RelNet: {clk},
			},
		}
		native = &fakeNative{roots: []*fakeHandle{top}, product: "icarus", version: "12.0"}
		backend = vpi.New(native, false)
	})

	It("reports product name and version, cached after first fetch", func() {
		Expect(backend.ProductName()).To(Equal("icarus"))
		native.product = "changed"
		Expect(backend.ProductName()).To(Equal("icarus"))
	})

	It("finds the root module by name", func() {
		obj, ok := backend.GetRootHandle("top")
		Expect(ok).To(BeTrue())
		Expect(obj.Name()).To(Equal("top"))
		Expect(obj.Kind()).To(Equal(gpi.KindModule))
	})

	It("resolves a net under the root by name", func() {
		root, _ := backend.GetRootHandle("")
		obj, ok := root.ChildByName("clk")
		Expect(ok).To(BeTrue())
		Expect(obj.Kind()).To(Equal(gpi.KindNet))
	})

	It("reads and writes a net's binstr value", func() {
		root, _ := backend.GetRootHandle("")
		obj, _ := root.ChildByName("clk")

		s, err := obj.GetBinstr()
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("0"))

		Expect(obj.SetBinstr("1", gpi.ActionDeposit)).To(Succeed())
		Expect(native.lastPutFlag).To(Equal(vpi.PutInertialDelay))
	})

	It("fires a value-change callback only on the matching edge", func() {
		root, _ := backend.GetRootHandle("")
		obj, _ := root.ChildByName("clk")

		var fired int
		cb, err := obj.RegisterValueChangeCB(gpi.EdgeRising, func(any) { fired++ }, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cb.Arm()).To(Succeed())

		clk.binstr = "0"
		cb.Fire()
		Expect(fired).To(Equal(0))

		clk.binstr = "1"
		cb.Fire()
		Expect(fired).To(Equal(1))
		Expect(cb.State()).To(Equal(gpi.CallbackPrimed))
	})

	It("falls back to the internal-scope scan for the Icarus workaround", func() {
		genLoop := &fakeHandle{name: "gen_blk[0]", vtype: vpi.VpiGenScope}
		top.children[vpi.RelInternal] = []*fakeHandle{genLoop}
		icarusBackend := vpi.New(native, true)

		obj, ok := icarusBackend.CheckCreateByName("gen_blk", mustWrap(icarusBackend, "top"))
		Expect(ok).To(BeTrue())
		Expect(obj.Name()).To(Equal("gen_blk[0]"))
	})

	It("ends the simulation via ControlFinish", func() {
		backend.SimEnd()
		Expect(native.finished).To(BeTrue())
	})
})

func mustWrap(b *vpi.Backend, name string) gpi.Object {
	obj, ok := b.GetRootHandle(name)
	if !ok {
		panic("root not found")
	}
	return obj
}
