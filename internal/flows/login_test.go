package flows_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/vcfctl/internal/flows"
	"github.com/kubev2v/vcfctl/internal/models"
)

var _ = Describe("LoginFlow", func() {
	var (
		ctx    context.Context
		client *MockClient
		flow   *flows.LoginFlow
		creds  models.Credentials
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = NewMockClient()
		flow = flows.NewLoginFlow(client)
		creds = models.Credentials{Username: "admin", Password: "secret"}
	})

	It("should start idle with the submit control enabled", func() {
		Expect(flow.Status()).To(Equal(models.LoginStatus{State: models.LoginStateIdle}))
		Expect(flow.CanSubmit()).To(BeTrue())
	})

	It("should navigate to the virtual centers page replacing history on success", func() {
		nav, err := flow.Submit(ctx, creds)

		Expect(err).NotTo(HaveOccurred())
		Expect(nav).To(Equal(&models.Navigation{Page: models.PageVirtualCenters, Replace: true}))
		Expect(flow.Status().State).To(Equal(models.LoginStateSuccess))
	})

	It("should stay on the form with the message verbatim on failure", func() {
		client.SetLoginError(&models.APIError{
			Status:  401,
			Code:    models.ErrorCodeInvalidCredentials,
			Message: "아이디 또는 비밀번호가 올바르지 않습니다.",
		})

		nav, err := flow.Submit(ctx, creds)

		Expect(err).NotTo(HaveOccurred())
		Expect(nav).To(BeNil())
		Expect(flow.Status()).To(Equal(models.LoginStatus{
			State: models.LoginStateFailed,
			Error: "아이디 또는 비밀번호가 올바르지 않습니다.",
		}))
		Expect(flow.CanSubmit()).To(BeTrue())
	})

	It("should use the generic message for errors that are not api errors", func() {
		client.SetLoginError(errors.New("unexpected"))

		nav, err := flow.Submit(ctx, creds)

		Expect(err).NotTo(HaveOccurred())
		Expect(nav).To(BeNil())
		Expect(flow.Status().Error).To(Equal(models.GenericErrorMessage))
	})

	It("should clear the previous error as soon as a new submission starts", func() {
		client.SetLoginError(&models.APIError{Status: 401, Message: "bad"})
		_, _ = flow.Submit(ctx, creds)
		Expect(flow.Status().Error).To(Equal("bad"))

		client.SetLoginError(nil)
		client.Block()

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			_, _ = flow.Submit(ctx, creds)
		}()

		Eventually(client.started).Should(HaveLen(2))
		Expect(flow.Status()).To(Equal(models.LoginStatus{State: models.LoginStateSubmitting}))
		Expect(flow.CanSubmit()).To(BeFalse())

		client.Release()
		Eventually(done).Should(BeClosed())
		Expect(flow.Status().State).To(Equal(models.LoginStateSuccess))
	})

	It("should reject a second submission while the first is in flight", func() {
		client.Block()

		var firstNav *models.Navigation
		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			firstNav, _ = flow.Submit(ctx, creds)
		}()
		Eventually(client.started).Should(Receive())

		nav, err := flow.Submit(ctx, models.Credentials{Username: "other", Password: "x"})
		Expect(err).To(MatchError(flows.ErrRequestInProgress))
		Expect(nav).To(BeNil())

		client.Release()
		Eventually(done).Should(BeClosed())

		Expect(client.LoginCalls()).To(Equal(1))
		Expect(firstNav).NotTo(BeNil())
		Expect(flow.Status().State).To(Equal(models.LoginStateSuccess))
	})
})
