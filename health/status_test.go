package health_test

import (
	"github.com/icecave/ytproxy/health"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status", func() {
	DescribeTable(
		"String",
		func(isHealthy bool, expected string) {
			subject := health.Status{IsHealthy: isHealthy, Message: "ok"}
			Expect(subject.String()).To(Equal(expected))
		},
		Entry("passed", true, "Health-check passed: ok"),
		Entry("failed", false, "Health-check failed: ok"),
	)
})
