package console_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/vcfctl/internal/console"
	"github.com/kubev2v/vcfctl/internal/fakeapi"
	"github.com/kubev2v/vcfctl/internal/models"
	"github.com/kubev2v/vcfctl/internal/render"
	"github.com/kubev2v/vcfctl/pkg/apiclient"
)

// handlerTransport serves requests with an in-process handler.
// Once down is set every request fails as if the backend were unreachable.
type handlerTransport struct {
	handler http.Handler
	down    atomic.Bool
}

func (t *handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer func() { _ = req.Body.Close() }()
	}
	if t.down.Load() {
		return nil, errors.New("connection refused")
	}

	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, req)

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// expiringClient expires every session right after the first successful fetch.
type expiringClient struct {
	*apiclient.Client
	fake    *fakeapi.Server
	fetched bool
}

func (e *expiringClient) FetchVirtualCenters(ctx context.Context) (*models.VirtualCenterList, error) {
	list, err := e.Client.FetchVirtualCenters(ctx)
	if err == nil && !e.fetched {
		e.fetched = true
		e.fake.Sessions().ExpireAll()
	}
	return list, err
}

var _ = Describe("Console", func() {
	var (
		ctx     context.Context
		fake    *fakeapi.Server
		backend *handlerTransport
		client  *apiclient.Client
		out     *bytes.Buffer
	)

	run := func(c console.Client, input string, opts ...console.Option) *console.Console {
		c2 := console.New(c, strings.NewReader(input), out, opts...)
		Expect(c2.Run(ctx)).To(Succeed())
		return c2
	}

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}

		fake = fakeapi.New(fakeapi.Config{
			Username: "admin",
			Password: "secret",
			Items: []map[string]any{
				{"id": "vc-1", "name": "alpha", "status": "ACTIVE", "version": "8.0", "fqdn": "vc1.example.local"},
			},
		})
		backend = &handlerTransport{handler: fake.Handler()}

		var err error
		client, err = apiclient.NewClient("http://vcf-backend.test", apiclient.WithTransport(backend))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should show the list after a valid login", func() {
		c := run(client, "\nadmin\nsecret\nq\n")

		Expect(c.Router().Current().Page).To(Equal(models.PageVirtualCenters))
		Expect(c.Router().Depth()).To(Equal(1))
		Expect(out.String()).To(ContainSubstring("vc1.example.local"))
		Expect(fake.Hits(fakeapi.RouteVirtualCenters)).To(Equal(1))
	})

	It("should stay on the login page with the message on wrong credentials", func() {
		c := run(client, "\nadmin\nwrong\n")

		Expect(c.Router().Current().Page).To(Equal(models.PageLogin))
		Expect(out.String()).To(ContainSubstring("아이디 또는 비밀번호가 올바르지 않습니다."))
		Expect(fake.Hits(fakeapi.RouteVirtualCenters)).To(BeZero())
	})

	It("should allow a new attempt after a failed login", func() {
		c := run(client, "\nadmin\nwrong\n\nadmin\nsecret\nq\n")

		Expect(c.Router().Current().Page).To(Equal(models.PageVirtualCenters))
		Expect(fake.Hits(fakeapi.RouteLogin)).To(Equal(2))
	})

	It("should ask again for an empty username", func() {
		run(client, "\n\nadmin\nsecret\nq\n")

		Expect(fake.Hits(fakeapi.RouteLogin)).To(Equal(1))
	})

	It("should send the default vcf url when the prompt is left blank", func() {
		run(client, "\nadmin\nsecret\nq\n", console.WithDefaultVCFURL("https://vcf.example.local"))

		Expect(out.String()).To(ContainSubstring("URL [https://vcf.example.local]"))
	})

	It("should render the no data placeholder for an empty list", func() {
		fake.SetItems(nil)

		run(client, "\nadmin\nsecret\nq\n")

		Expect(out.String()).To(ContainSubstring(render.NoDataMessage))
		Expect(out.String()).NotTo(ContainSubstring("FQDN"))
	})

	It("should reload on request", func() {
		run(client, "\nadmin\nsecret\nr\nq\n")

		Expect(fake.Hits(fakeapi.RouteVirtualCenters)).To(Equal(2))
	})

	It("should show upstream failures in place without redirecting", func() {
		fake.SetFailure(fakeapi.RouteVirtualCenters, fakeapi.Failure{
			Status: 502, Code: string(models.ErrorCodeVCFFetchFailed), Message: "Failed to fetch virtual centers from VCF",
		})

		c := run(client, "\nadmin\nsecret\nq\n")

		Expect(c.Router().Current().Page).To(Equal(models.PageVirtualCenters))
		Expect(out.String()).To(ContainSubstring("가상센터 목록을 가져오지 못했습니다."))
	})

	It("should redirect to login with the reason when the session expired", func() {
		e := &expiringClient{Client: client, fake: fake}

		c := run(e, "\nadmin\nsecret\nr\n")

		Expect(c.Router().Current()).To(Equal(console.Location{
			Page:   models.PageLogin,
			Reason: "세션이 만료되었습니다. 다시 로그인해주세요.",
		}))
		Expect(strings.Count(out.String(), "세션이 만료되었습니다. 다시 로그인해주세요.")).To(Equal(1))
		Expect(client.HasSession()).To(BeFalse())
	})

	It("should drop the session and go back to login on logout", func() {
		c := run(client, "\nadmin\nsecret\nl\n")

		Expect(c.Router().Current()).To(Equal(console.Location{Page: models.PageLogin}))
		Expect(client.HasSession()).To(BeFalse())
	})

	It("should show a generic message when the backend is unreachable", func() {
		backend.down.Store(true)

		c := run(client, "\nadmin\nsecret\n")

		Expect(c.Router().Current().Page).To(Equal(models.PageLogin))
		Expect(out.String()).To(ContainSubstring(models.GenericErrorMessage))
	})

	It("should start on the list page when the router says so", func() {
		router := console.NewRouter(models.PageVirtualCenters)

		c := run(client, "", console.WithRouter(router))

		Expect(c.Router().Current().Page).To(Equal(models.PageLogin))
		Expect(out.String()).To(ContainSubstring("로그인이 필요합니다."))
	})
})
