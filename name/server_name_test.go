package name_test

import (
	"crypto/tls"

	"github.com/icecave/ytproxy/name"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("ServerName", func() {
	DescribeTable(
		"Parse",
		func(input, unicode, punycode string) {
			n, err := name.Parse(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Unicode).To(Equal(unicode))
			Expect(n.Punycode).To(Equal(punycode))
		},
		Entry("ascii", "www.example.com", "www.example.com", "www.example.com"),
		Entry("upper case", "WWW.Example.COM", "www.example.com", "www.example.com"),
		Entry("trailing dot", "example.com.", "example.com", "example.com"),
		Entry("unicode", "bücher.example", "bücher.example", "xn--bcher-kva.example"),
		Entry("punycode", "xn--bcher-kva.example", "bücher.example", "xn--bcher-kva.example"),
	)

	DescribeTable(
		"Parse rejects invalid names",
		func(input string) {
			_, err := name.Parse(input)
			Expect(err).To(HaveOccurred())
		},
		Entry("empty", ""),
		Entry("space", "exa mple.com"),
		Entry("empty label", "example..com"),
	)

	It("panics in MustParse when the name is invalid", func() {
		Expect(func() { name.MustParse("") }).To(Panic())
	})

	It("parses the name from a TLS handshake", func() {
		n, err := name.FromTLS(&tls.ClientHelloInfo{ServerName: "Example.com"})
		Expect(err).NotTo(HaveOccurred())
		Expect(n.Unicode).To(Equal("example.com"))
	})

	Describe("Parent", func() {
		It("removes the leftmost label", func() {
			p, ok := name.MustParse("a.bücher.example").Parent()
			Expect(ok).To(BeTrue())
			Expect(p).To(Equal(name.ServerName{
				Unicode:  "bücher.example",
				Punycode: "xn--bcher-kva.example",
			}))
		})

		It("reports false for a single label", func() {
			_, ok := name.MustParse("localhost").Parent()
			Expect(ok).To(BeFalse())
		})
	})
})
