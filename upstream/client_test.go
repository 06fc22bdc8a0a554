package upstream_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/icecave/ytproxy/upstream"
	"github.com/icecave/ytproxy/youtube"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		received *http.Request
		status   int
		body     string
		subject  *upstream.Client
		params   youtube.Params
	)

	BeforeEach(func() {
		received = nil
		status = http.StatusOK
		body = `{"kind": "youtube#searchListResponse", "items": []}`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r
			w.WriteHeader(status)
			io.WriteString(w, body)
		}))

		base, err := url.Parse(server.URL + "/youtube/v3")
		Expect(err).NotTo(HaveOccurred())

		subject = &upstream.Client{
			BaseURL:    base,
			HTTPClient: server.Client(),
			UserAgent:  "ytproxy/test",
		}

		params = youtube.Params{{Name: "q", Value: "cats"}, {Name: "part", Value: "snippet"}}.WithKey("<secret>")
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("URL", func() {
		It("targets the YouTube Data API by default", func() {
			u := (&upstream.Client{}).URL(youtube.Search, params)
			Expect(u.String()).To(Equal(
				"https://www.googleapis.com/youtube/v3/search?q=cats&part=snippet&key=%3Csecret%3E",
			))
		})

		It("appends the resource to the base path", func() {
			u := subject.URL(youtube.Playlists, youtube.Params{{Name: "id", Value: "x"}})
			Expect(u.Path).To(Equal("/youtube/v3/playlists"))
			Expect(u.RawQuery).To(Equal("id=x"))
		})

		It("does not modify the base URL", func() {
			subject.URL(youtube.Videos, params)
			Expect(subject.BaseURL.Path).To(Equal("/youtube/v3"))
			Expect(subject.BaseURL.RawQuery).To(Equal(""))
		})
	})

	Describe("Forward", func() {
		It("sends a GET request with the forwarded parameters", func() {
			_, err := subject.Forward(context.Background(), youtube.Search, params)
			Expect(err).NotTo(HaveOccurred())

			Expect(received.Method).To(Equal(http.MethodGet))
			Expect(received.URL.Path).To(Equal("/youtube/v3/search"))
			Expect(received.URL.RawQuery).To(Equal("q=cats&part=snippet&key=%3Csecret%3E"))
			Expect(received.Header.Get("Accept")).To(Equal("application/json"))
			Expect(received.Header.Get("User-Agent")).To(Equal("ytproxy/test"))
		})

		It("returns the upstream status and compacted JSON body", func() {
			res, err := subject.Forward(context.Background(), youtube.Search, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.StatusCode).To(Equal(http.StatusOK))
			Expect(string(res.Body)).To(Equal(`{"kind":"youtube#searchListResponse","items":[]}`))
		})

		It("relays non-2xx responses that have a JSON body", func() {
			status = http.StatusForbidden
			body = `{"error":{"code":403,"message":"quotaExceeded"}}`

			res, err := subject.Forward(context.Background(), youtube.Search, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.StatusCode).To(Equal(http.StatusForbidden))
			Expect(res.Body).To(MatchJSON(body))
		})

		It("returns a parse error if the body is not JSON", func() {
			status = http.StatusBadGateway
			body = "<html>Bad Gateway</html>"

			res, err := subject.Forward(context.Background(), youtube.Search, params)
			Expect(res).To(BeNil())

			var parseErr *upstream.ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
			Expect(parseErr.StatusCode).To(Equal(http.StatusBadGateway))
		})

		It("returns a parse error if the body is empty", func() {
			body = ""

			_, err := subject.Forward(context.Background(), youtube.Search, params)

			var parseErr *upstream.ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
		})

		It("returns a transport error if the upstream can not be reached", func() {
			server.Close()

			res, err := subject.Forward(context.Background(), youtube.Search, params)
			Expect(res).To(BeNil())

			var transportErr *upstream.TransportError
			Expect(errors.As(err, &transportErr)).To(BeTrue())
		})

		It("does not include the API key in transport errors", func() {
			server.Close()

			_, err := subject.Forward(context.Background(), youtube.Search, params)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).NotTo(ContainSubstring("secret"))
		})

		It("abandons the request when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := subject.Forward(ctx, youtube.Search, params)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		})
	})
})
