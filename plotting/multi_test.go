package plotting

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/notargets/eulerfv/model_problems/Euler1D"
)

var _ = Describe("Multi", func() {
	var (
		mockCtrl *gomock.Controller
		a, b     *MockVisualizer
		m        Multi
		snap     *Euler1D.Snapshot
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		a = NewMockVisualizer(mockCtrl)
		b = NewMockVisualizer(mockCtrl)
		m = Multi{a, b}
		snap = &Euler1D.Snapshot{Step: 3}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should hand snapshots to every visualizer", func() {
		a.EXPECT().AddSnapshot(snap).Return(nil)
		b.EXPECT().AddSnapshot(snap).Return(nil)
		Expect(m.AddSnapshot(snap)).To(Succeed())
	})

	It("should stop at the first failure", func() {
		a.EXPECT().AddSnapshot(snap).Return(os.ErrClosed)
		Expect(m.AddSnapshot(snap)).To(MatchError(os.ErrClosed))
	})

	It("should finish every visualizer", func() {
		a.EXPECT().Finish().Return(os.ErrPermission)
		b.EXPECT().Finish().Return(nil)
		Expect(m.Finish()).To(MatchError(os.ErrPermission))
	})
})
