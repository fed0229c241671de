package webhook_test

import (
	"errors"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/githubclient"
	"github.com/inkwell-press/dewey/githubclient/githubclientfakes"
	"github.com/inkwell-press/dewey/metrics"
	"github.com/inkwell-press/dewey/tokens/tokensfakes"
	"github.com/inkwell-press/dewey/webhook"
	"github.com/inkwell-press/dewey/webhook/webhookfakes"
)

var _ = Describe("Registrar", func() {
	var (
		logger *lagertest.TestLogger

		resolver      *tokensfakes.FakeResolver
		githubClient  *githubclientfakes.FakeClient
		clientFactory *webhookfakes.FakeClientFactory

		project db.Project

		registrar webhook.Registrar
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("registrar")

		resolver = &tokensfakes.FakeResolver{}
		resolver.ResolveReturns("some-token", true)

		githubClient = &githubclientfakes.FakeClient{}
		clientFactory = &webhookfakes.FakeClientFactory{}
		clientFactory.ForTokenReturns(githubClient)

		project = db.Project{
			Slug:    "fieldnotes",
			RepoURL: "https://github.com/margaret/fieldnotes",
		}

		registrar = webhook.NewRegistrar(
			"inkwell.example.com",
			"hook-secret",
			resolver,
			clientFactory,
			metrics.BuildEmitter("", "test"),
		)
	})

	It("creates a push hook on the project's repository", func() {
		outcome := registrar.Setup(logger, project)
		Expect(outcome).To(Equal(webhook.OutcomeCreated))

		Expect(clientFactory.ForTokenCallCount()).To(Equal(1))
		Expect(clientFactory.ForTokenArgsForCall(0)).To(Equal("some-token"))

		Expect(githubClient.CreateRepositoryHookCallCount()).To(Equal(1))
		_, owner, name, hookURL, secret := githubClient.CreateRepositoryHookArgsForCall(0)
		Expect(owner).To(Equal("margaret"))
		Expect(name).To(Equal("fieldnotes"))
		Expect(hookURL).To(Equal("https://inkwell.example.com/github?project=fieldnotes"))
		Expect(secret).To(Equal("hook-secret"))
	})

	It("resolves the token locally", func() {
		registrar.Setup(logger, project)

		Expect(resolver.ResolveCallCount()).To(Equal(1))
		_, resolvedProject, forceLocal := resolver.ResolveArgsForCall(0)
		Expect(resolvedProject.Slug).To(Equal("fieldnotes"))
		Expect(forceLocal).To(BeTrue())
	})

	Context("when the provider rejects the hook", func() {
		BeforeEach(func() {
			githubClient.CreateRepositoryHookReturns(&githubclient.HookRejectedError{
				StatusCode: 422,
				Message:    "Hook already exists on this repository",
			})
		})

		It("reports the rejection", func() {
			outcome := registrar.Setup(logger, project)
			Expect(outcome).To(Equal(webhook.OutcomeRejected))
		})
	})

	Context("when the request fails in transit", func() {
		BeforeEach(func() {
			githubClient.CreateRepositoryHookReturns(errors.New("disaster"))
		})

		It("reports an error", func() {
			outcome := registrar.Setup(logger, project)
			Expect(outcome).To(Equal(webhook.OutcomeErrored))
		})
	})

	Context("when no token can be resolved", func() {
		BeforeEach(func() {
			resolver.ResolveReturns("", false)
		})

		It("reports an error without calling the provider", func() {
			outcome := registrar.Setup(logger, project)
			Expect(outcome).To(Equal(webhook.OutcomeErrored))

			Expect(githubClient.CreateRepositoryHookCallCount()).To(BeZero())
			Expect(logger).To(gbytes.Say("no-token"))
		})
	})

	Context("when the repository URL is not a github URL", func() {
		BeforeEach(func() {
			project.RepoURL = "https://example.com/margaret/fieldnotes"
		})

		It("reports an error without resolving a token", func() {
			outcome := registrar.Setup(logger, project)
			Expect(outcome).To(Equal(webhook.OutcomeErrored))

			Expect(resolver.ResolveCallCount()).To(BeZero())
			Expect(logger).To(gbytes.Say("failed-to-parse-repo-url"))
		})
	})
})
