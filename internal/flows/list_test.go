package flows_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/vcfctl/internal/flows"
	"github.com/kubev2v/vcfctl/internal/models"
)

var _ = Describe("ListFlow", func() {
	var (
		ctx    context.Context
		client *MockClient
		flow   *flows.ListFlow
		items  []models.VirtualCenter
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = NewMockClient()
		flow = flows.NewListFlow(client)
		items = []models.VirtualCenter{
			{ID: "vc-1", Name: "alpha", Status: "ACTIVE", Version: "8.0", FQDN: "vc1.example.local"},
			{Name: "beta"},
		}
	})

	It("should start idle", func() {
		status := flow.Status()
		Expect(status.State).To(Equal(models.ListStateIdle))
		Expect(status.Items).To(BeEmpty())
		Expect(flow.CanReload()).To(BeTrue())
	})

	It("should store the items in server order when the fetch succeeds", func() {
		client.SetList(&models.VirtualCenterList{Items: items}, nil)

		nav, err := flow.Load(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(nav).To(BeNil())
		Expect(flow.Status().State).To(Equal(models.ListStateReady))
		Expect(flow.Items()).To(Equal(items))
		Expect(flow.Empty()).To(BeFalse())
	})

	It("should default to an empty list when items are absent", func() {
		client.SetList(&models.VirtualCenterList{}, nil)

		_, err := flow.Load(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(flow.Items()).NotTo(BeNil())
		Expect(flow.Items()).To(BeEmpty())
		Expect(flow.Empty()).To(BeTrue())
	})

	It("should treat a response without content as an empty list", func() {
		client.SetList(nil, nil)

		_, err := flow.Load(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(flow.Status().State).To(Equal(models.ListStateReady))
		Expect(flow.Empty()).To(BeTrue())
	})

	It("should redirect to login with the message as reason on 401", func() {
		client.SetList(nil, &models.APIError{
			Status:  401,
			Code:    models.ErrorCodeInvalidSession,
			Message: "세션이 만료되었습니다. 다시 로그인해주세요.",
		})

		nav, err := flow.Load(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(nav).To(Equal(&models.Navigation{
			Page:    models.PageLogin,
			Replace: true,
			Reason:  "세션이 만료되었습니다. 다시 로그인해주세요.",
		}))

		status := flow.Status()
		Expect(status.State).To(Equal(models.ListStateRedirecting))
		Expect(status.Error).To(BeEmpty())
		Expect(client.Resets()).To(Equal(1))
	})

	It("should redirect on 401 whatever the code", func() {
		client.SetList(nil, &models.APIError{Status: 401, Code: models.ErrorCodeVCFTokenExpired, Message: "VCF token expired or invalid"})

		nav, err := flow.Load(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(nav).NotTo(BeNil())
		Expect(nav.Reason).To(Equal("VCF token expired or invalid"))
	})

	DescribeTable("staying on the page for other failures",
		func(apiErr *models.APIError) {
			client.SetList(&models.VirtualCenterList{Items: items}, nil)
			_, _ = flow.Load(ctx)

			client.SetList(nil, apiErr)
			nav, err := flow.Load(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(nav).To(BeNil())

			status := flow.Status()
			Expect(status.State).To(Equal(models.ListStateError))
			Expect(status.Error).To(Equal(apiErr.Message))
			Expect(status.Items).To(BeEmpty())
			Expect(client.Resets()).To(BeZero())
		},
		Entry("transport failure", &models.APIError{Status: 0, Message: models.GenericErrorMessage}),
		Entry("upstream failure", &models.APIError{Status: 502, Code: models.ErrorCodeVCFFetchFailed, Message: "가상센터 목록을 가져오지 못했습니다."}),
		Entry("forbidden", &models.APIError{Status: 403, Message: "forbidden"}),
	)

	It("should clear the error when reloading", func() {
		client.SetList(nil, &models.APIError{Status: 500, Message: "boom"})
		_, _ = flow.Load(ctx)
		Expect(flow.Status().Error).To(Equal("boom"))

		client.SetList(&models.VirtualCenterList{Items: items}, nil)
		client.Block()

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			_, _ = flow.Load(ctx)
		}()

		Eventually(client.started).Should(HaveLen(2))
		status := flow.Status()
		Expect(status.State).To(Equal(models.ListStateLoading))
		Expect(status.Error).To(BeEmpty())
		Expect(flow.CanReload()).To(BeFalse())

		client.Release()
		Eventually(done).Should(BeClosed())
		Expect(flow.Status().State).To(Equal(models.ListStateReady))
	})

	It("should ignore a reload while loading and keep the first response", func() {
		client.SetList(&models.VirtualCenterList{Items: items[:1]}, nil)
		client.Block()

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			_, _ = flow.Load(ctx)
		}()
		Eventually(client.started).Should(Receive())

		client.SetList(&models.VirtualCenterList{Items: items}, nil)
		nav, err := flow.Load(ctx)
		Expect(err).To(MatchError(flows.ErrRequestInProgress))
		Expect(nav).To(BeNil())

		client.Release()
		Eventually(done).Should(BeClosed())

		Expect(client.ListCalls()).To(Equal(1))
		Expect(flow.Items()).To(Equal(items[:1]))
	})

	It("should yield identical items for identical data on reload", func() {
		client.SetList(&models.VirtualCenterList{Items: items}, nil)

		_, err := flow.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		first := flow.Items()

		_, err = flow.Load(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(flow.Items()).To(Equal(first))
		Expect(client.ListCalls()).To(Equal(2))
	})

	It("should not expose its internal slice", func() {
		client.SetList(&models.VirtualCenterList{Items: items}, nil)
		_, _ = flow.Load(ctx)

		got := flow.Items()
		got[0].Name = "changed"

		Expect(flow.Items()[0].Name).To(Equal("alpha"))
	})
})
