package render_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/vcfctl/internal/models"
	"github.com/kubev2v/vcfctl/internal/render"
)

var _ = Describe("Write", func() {
	var (
		buf   *bytes.Buffer
		items []models.VirtualCenter
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		items = []models.VirtualCenter{
			{ID: "vc-1", Name: "alpha", FQDN: "vc1.example.local"},
			{Name: "beta"},
		}
	})

	It("should parse the known formats", func() {
		for _, s := range []string{"table", "json", "yaml"} {
			f, err := render.ParseFormat(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(f)).To(Equal(s))
		}

		_, err := render.ParseFormat("xml")
		Expect(err).To(MatchError(ContainSubstring("unknown output format")))
	})

	It("should write json without absent fields", func() {
		Expect(render.Write(buf, render.FormatJSON, items)).To(Succeed())

		Expect(buf.String()).To(MatchJSON(`{"items":[{"id":"vc-1","name":"alpha","fqdn":"vc1.example.local"},{"name":"beta"}]}`))
	})

	It("should write yaml", func() {
		Expect(render.Write(buf, render.FormatYAML, items)).To(Succeed())

		Expect(buf.String()).To(MatchYAML(`
items:
  - id: vc-1
    name: alpha
    fqdn: vc1.example.local
  - name: beta
`))
	})

	It("should write an empty items list rather than null", func() {
		Expect(render.Write(buf, render.FormatJSON, nil)).To(Succeed())
		Expect(buf.String()).To(MatchJSON(`{"items":[]}`))

		buf.Reset()
		Expect(render.Write(buf, render.FormatYAML, nil)).To(Succeed())
		Expect(buf.String()).To(MatchYAML(`items: []`))
	})

	It("should fall back to the table", func() {
		Expect(render.Write(buf, render.FormatTable, nil)).To(Succeed())
		Expect(buf.String()).To(Equal(render.NoDataMessage + "\n"))
	})
})
