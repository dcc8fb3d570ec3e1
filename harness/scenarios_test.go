package harness_test

import (
	"github.com/sarchlab/akita/v4/sim"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/harness"
)

type fakeRuntime struct {
	cleanupCnt int
	events     []string
}

func (r *fakeRuntime) EmbedInitRuntime(argv []string) error { return nil }
func (r *fakeRuntime) EmbedSimEvent(kind gpi.EventKind, message string) {
	r.events = append(r.events, kind.String()+":"+message)
}
func (r *fakeRuntime) EmbedSimCleanup() { r.cleanupCnt++ }

func newSim() (*harness.Simulator, *fakeRuntime) {
	rt := &fakeRuntime{}
	s := harness.NewSimulator(sim.NewSerialEngine(), 1*sim.GHz, rt)
	return s, rt
}

var _ = Describe("Simulator end-to-end scenarios", func() {
	var s *harness.Simulator

	BeforeEach(func() {
		s, _ = newSim()
	})

	It("fires a value-change callback when clk flips (scenario 1)", func() {
		top, ok := s.GetRootHandle("")
		Expect(ok).To(BeTrue())
		clk, ok := top.ChildByName("clk")
		Expect(ok).To(BeTrue())

		var fired int
		cb, err := clk.RegisterValueChangeCB(gpi.EdgeRising, func(data any) {
			fired++
		}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cb.Arm()).To(Succeed())

		Expect(clk.SetBinstr("1", gpi.ActionDeposit)).To(Succeed())
		Expect(fired).To(Equal(1))

		Expect(clk.SetBinstr("0", gpi.ActionDeposit)).To(Succeed())
		Expect(fired).To(Equal(1), "a falling edge must not fire a rising-edge callback")
	})

	It("reads a live bit-view of a vector signal (scenario 2)", func() {
		top, _ := s.GetRootHandle("")
		bus, ok := top.ChildByName("bus")
		Expect(ok).To(BeTrue())

		Expect(bus.SetBinstr("10100000", gpi.ActionDeposit)).To(Succeed())

		bit5, ok := bus.ChildByIndex(5)
		Expect(ok).To(BeTrue())
		v, err := bit5.GetBinstr()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("1"))

		Expect(bus.SetBinstr("00000001", gpi.ActionDeposit)).To(Succeed())
		v, err = bit5.GetBinstr()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("0"), "a bit-view must track its parent's live value, not a snapshot")
	})

	It("fires a timer callback at its exact delay (scenario 3)", func() {
		var fired int
		cb := s.RegisterTimed(100, func(data any) {
			fired++
		}, nil)
		Expect(cb.Arm()).To(Succeed())

		s.AdvancePS(60)
		Expect(fired).To(Equal(0))

		s.AdvancePS(40)
		Expect(fired).To(Equal(1))
	})

	It("exposes a generate loop with exactly 4 indexed children (scenario 4)", func() {
		top, _ := s.GetRootHandle("")
		gen, ok := top.ChildByName("gen")
		Expect(ok).To(BeTrue())
		Expect(gen.Kind()).To(Equal(gpi.KindGenArray))

		scope2, ok := gen.ChildByIndex(2)
		Expect(ok).To(BeTrue())
		Expect(scope2.Kind()).To(Equal(gpi.KindModule))

		it, ok := gen.Iterate(gpi.SelObjects)
		Expect(ok).To(BeTrue())
		count := 0
		for {
			status, _, _, _ := it.Next()
			if status == gpi.StepEnd {
				break
			}
			count++
		}
		Expect(count).To(Equal(4))
	})

	It("runs the shutdown callback exactly once when sim_end fires mid read-write (scenario 6)", func() {
		var shutdownFired int
		sc := gpi.NewShutdownCallback(s, func(data any) { shutdownFired++ }, nil)
		Expect(sc.Arm()).To(Succeed())
		s.SetShutdownCallback(sc)

		var rwFired int
		rw := s.RegisterReadWrite(func(data any) {
			rwFired++
			s.SimEnd()
		}, nil)
		Expect(rw.Arm()).To(Succeed())

		s.AdvancePS(1)
		Expect(rwFired).To(Equal(1))
		Expect(shutdownFired).To(Equal(1))

		s.SimEnd()
		Expect(shutdownFired).To(Equal(1), "a second sim_end must not refire the shutdown callback")
	})
})
