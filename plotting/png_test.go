package plotting

import (
	"bytes"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/notargets/eulerfv/sod_shock_tube"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

var _ = Describe("PNGPlotter", func() {
	var (
		dir string
		pp  *PNGPlotter
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		pp = NewPNGPlotter(dir, "sod", sod_shock_tube.NewSod())
	})

	It("should write density and pressure figures", func() {
		shortSod(pp)
		rho, p := pp.Files()
		for _, file := range []string{rho, p} {
			data, err := os.ReadFile(file)
			Expect(err).ToNot(HaveOccurred())
			Expect(bytes.HasPrefix(data, pngMagic)).To(BeTrue())
		}
	})

	It("should create the output directory", func() {
		pp.Dir = dir + "/figures/sod"
		pp.Exact = nil
		shortSod(pp)
		rho, _ := pp.Files()
		Expect(rho).To(BeAnExistingFile())
	})

	It("should write nothing without snapshots", func() {
		Expect(pp.Finish()).To(Succeed())
		rho, _ := pp.Files()
		Expect(rho).ToNot(BeAnExistingFile())
	})
})

var _ = Describe("Polyline", func() {
	It("should join neighbouring points", func() {
		line := Polyline([]float64{0, 1, 2}, []float64{1, 0.5, 0.25})
		Expect(line).To(Equal([]float32{0, 1, 1, 0.5, 1, 0.5, 2, 0.25}))
	})

	It("should be empty for a single point", func() {
		Expect(Polyline([]float64{0}, []float64{1})).To(BeEmpty())
	})
})
