package frontend_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/icecave/ytproxy/frontend"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("OriginGate", func() {
	var (
		called  bool
		subject *frontend.OriginGate
	)

	serve := func(method, origin string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, "/api/yt/search?q=cats", nil)
		if origin != "" {
			request.Header.Set("Origin", origin)
		}
		writer := httptest.NewRecorder()
		subject.ServeHTTP(writer, request)
		return writer
	}

	BeforeEach(func() {
		called = false
		subject = &frontend.OriginGate{
			AllowedOrigin: "https://app.example",
			Next: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}),
		}
	})

	Context("when no origin is configured", func() {
		BeforeEach(func() {
			subject.AllowedOrigin = ""
		})

		It("passes every request through without CORS headers", func() {
			writer := serve(http.MethodGet, "https://evil.example")

			Expect(called).To(BeTrue())
			Expect(writer.Code).To(Equal(http.StatusOK))
			Expect(writer.Header().Get("Vary")).To(BeEmpty())
			Expect(writer.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})
	})

	It("passes requests without an Origin header", func() {
		writer := serve(http.MethodGet, "")

		Expect(called).To(BeTrue())
		Expect(writer.Header().Get("Vary")).To(Equal("Origin"))
		Expect(writer.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})

	It("adds CORS headers for the allowed origin", func() {
		writer := serve(http.MethodGet, "https://app.example")

		Expect(called).To(BeTrue())
		Expect(writer.Code).To(Equal(http.StatusOK))
		Expect(writer.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://app.example"))
		Expect(writer.Header().Get("Access-Control-Allow-Methods")).To(Equal("GET,OPTIONS"))
		Expect(writer.Header().Get("Access-Control-Allow-Headers")).To(Equal("Content-Type, Authorization"))
		Expect(writer.Header().Get("Vary")).To(Equal("Origin"))
	})

	It("answers preflight requests from the allowed origin with 204", func() {
		writer := serve(http.MethodOptions, "https://app.example")

		Expect(called).To(BeFalse())
		Expect(writer.Code).To(Equal(http.StatusNoContent))
		Expect(writer.Body.Len()).To(BeZero())
		Expect(writer.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://app.example"))
	})

	It("refuses requests from any other origin", func() {
		writer := serve(http.MethodGet, "https://evil.example")

		Expect(called).To(BeFalse())
		Expect(writer.Code).To(Equal(http.StatusForbidden))
		Expect(writer.Body.String()).To(MatchJSON(`{"error":"Origin not allowed"}`))
		Expect(writer.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})

	It("does not duplicate an existing Vary token", func() {
		subject.Next = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		writer := httptest.NewRecorder()
		writer.Header().Add("Vary", "Accept-Encoding, origin")
		subject.ServeHTTP(writer, request)

		Expect(writer.Header().Values("Vary")).To(Equal([]string{"Accept-Encoding, origin"}))
	})
})
