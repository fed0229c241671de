package githubclient_test

import (
	"fmt"
	"net/http"
	"net/url"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/google/go-github/v55/github"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/ghttp"

	"github.com/inkwell-press/dewey/githubclient"
)

var _ = Describe("Client", func() {
	var (
		logger *lagertest.TestLogger
		server *ghttp.Server
		client githubclient.Client
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("githubclient")
		server = ghttp.NewServer()

		ghClient := github.NewClient(nil)
		baseURL, err := url.Parse(server.URL() + "/")
		Expect(err).NotTo(HaveOccurred())
		ghClient.BaseURL = baseURL

		client = githubclient.NewClient(ghClient)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("UserRepositories", func() {
		Context("when the repositories span multiple pages", func() {
			BeforeEach(func() {
				nextLink := fmt.Sprintf(`<%s/user/repos?page=2&per_page=100>; rel="next"`, server.URL())

				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/user/repos", "per_page=100"),
						ghttp.RespondWith(http.StatusOK, `[
							{
								"name": "field-notes",
								"full_name": "margaret/field-notes",
								"description": "a repository of field notes",
								"owner": {"login": "margaret", "type": "User", "avatar_url": "https://avatars.example.com/u/1"},
								"ssh_url": "git@github.com:margaret/field-notes.git",
								"html_url": "https://github.com/margaret/field-notes",
								"clone_url": "https://github.com/margaret/field-notes.git",
								"private": false,
								"permissions": {"admin": true, "push": true, "pull": true}
							}
						]`, http.Header{"Link": []string{nextLink}}),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/user/repos", "page=2&per_page=100"),
						ghttp.RespondWith(http.StatusOK, `[
							{
								"name": "handbook",
								"full_name": "inkwell/handbook",
								"owner": {"login": "inkwell", "type": "Organization", "avatar_url": "https://avatars.example.com/o/1"},
								"ssh_url": "git@github.com:inkwell/handbook.git",
								"html_url": "https://github.com/inkwell/handbook",
								"clone_url": "https://github.com/inkwell/handbook.git",
								"private": true,
								"permissions": {"admin": false, "push": true, "pull": true}
							}
						]`),
					),
				)
			})

			It("concatenates every page in order", func() {
				repos, err := client.UserRepositories(logger)
				Expect(err).NotTo(HaveOccurred())

				Expect(server.ReceivedRequests()).To(HaveLen(2))

				Expect(repos).To(HaveLen(2))
				Expect(repos[0].FullName).To(Equal("margaret/field-notes"))
				Expect(repos[1].FullName).To(Equal("inkwell/handbook"))
			})

			It("projects the repository fields", func() {
				repos, err := client.UserRepositories(logger)
				Expect(err).NotTo(HaveOccurred())

				Expect(repos[0].Owner).To(Equal("margaret"))
				Expect(repos[0].Name).To(Equal("field-notes"))
				Expect(repos[0].Description).To(Equal("a repository of field notes"))
				Expect(repos[0].SSHURL).To(Equal("git@github.com:margaret/field-notes.git"))
				Expect(repos[0].CloneURL).To(Equal("https://github.com/margaret/field-notes.git"))
				Expect(repos[0].AvatarURL).To(Equal("https://avatars.example.com/u/1"))
				Expect(repos[0].Private).To(BeFalse())
				Expect(repos[0].Admin).To(BeTrue())
				Expect(repos[0].OrganizationLogin).To(BeEmpty())
				Expect(repos[0].RawJSON).NotTo(BeEmpty())
			})

			It("notes the owning organization when the owner is one", func() {
				repos, err := client.UserRepositories(logger)
				Expect(err).NotTo(HaveOccurred())

				Expect(repos[1].OrganizationLogin).To(Equal("inkwell"))
				Expect(repos[1].Admin).To(BeFalse())
			})
		})

		Context("when the API responds with an error", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusUnauthorized, `{"message": "Bad credentials"}`),
				)
			})

			It("returns and logs the error", func() {
				_, err := client.UserRepositories(logger)
				Expect(err).To(HaveOccurred())
				Expect(logger).To(gbytes.Say("user-repositories.failed"))
			})
		})
	})

	Describe("UserOrganizations", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/user/orgs", "per_page=100"),
					ghttp.RespondWith(http.StatusOK, `[
						{"login": "inkwell", "avatar_url": "https://avatars.example.com/o/1"},
						{"login": "letterpress", "avatar_url": "https://avatars.example.com/o/2"}
					]`),
				),
			)
		})

		It("returns the organization summaries", func() {
			organizations, err := client.UserOrganizations(logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(organizations).To(HaveLen(2))
			Expect(organizations[0].Login).To(Equal("inkwell"))
			Expect(organizations[0].AvatarURL).To(Equal("https://avatars.example.com/o/1"))
			Expect(organizations[1].Login).To(Equal("letterpress"))
		})
	})

	Describe("Organization", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/orgs/inkwell"),
					ghttp.RespondWith(http.StatusOK, `{
						"login": "inkwell",
						"name": "Inkwell Press",
						"email": "hello@inkwell.example.com",
						"avatar_url": "https://avatars.example.com/o/1",
						"html_url": "https://github.com/inkwell"
					}`),
				),
			)
		})

		It("returns the full organization record", func() {
			organization, err := client.Organization(logger, "inkwell")
			Expect(err).NotTo(HaveOccurred())

			Expect(organization.Login).To(Equal("inkwell"))
			Expect(organization.Name).To(Equal("Inkwell Press"))
			Expect(organization.Email).To(Equal("hello@inkwell.example.com"))
			Expect(organization.HTMLURL).To(Equal("https://github.com/inkwell"))
			Expect(organization.RawJSON).NotTo(BeEmpty())
		})
	})

	Describe("OrganizationRepositories", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/orgs/inkwell/repos", "per_page=100"),
					ghttp.RespondWith(http.StatusOK, `[
						{
							"name": "handbook",
							"full_name": "inkwell/handbook",
							"owner": {"login": "inkwell", "type": "Organization", "avatar_url": "https://avatars.example.com/o/1"},
							"private": true,
							"ssh_url": "git@github.com:inkwell/handbook.git",
							"clone_url": "https://github.com/inkwell/handbook.git"
						}
					]`),
				),
			)
		})

		It("returns the organization's repositories", func() {
			repos, err := client.OrganizationRepositories(logger, "inkwell")
			Expect(err).NotTo(HaveOccurred())

			Expect(repos).To(HaveLen(1))
			Expect(repos[0].FullName).To(Equal("inkwell/handbook"))
			Expect(repos[0].OrganizationLogin).To(Equal("inkwell"))
		})
	})

	Describe("CreateRepositoryHook", func() {
		Context("when the hook is created", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/repos/margaret/field-notes/hooks"),
						ghttp.VerifyJSON(`{
							"name": "web",
							"active": true,
							"events": ["push"],
							"config": {
								"url": "https://docs.example.com/github",
								"content_type": "json",
								"secret": "hook-secret"
							}
						}`),
						ghttp.RespondWith(http.StatusCreated, `{"id": 1}`),
					),
				)
			})

			It("returns no error", func() {
				err := client.CreateRepositoryHook(logger, "margaret", "field-notes", "https://docs.example.com/github", "hook-secret")
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Context("when the API rejects the hook", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusUnprocessableEntity, `{"message": "Hook already exists on this repository"}`),
				)
			})

			It("returns a rejection error with the API's reason", func() {
				err := client.CreateRepositoryHook(logger, "margaret", "field-notes", "https://docs.example.com/github", "hook-secret")

				rejected, ok := err.(*githubclient.HookRejectedError)
				Expect(ok).To(BeTrue())
				Expect(rejected.StatusCode).To(Equal(http.StatusUnprocessableEntity))
				Expect(rejected.Message).To(ContainSubstring("already exists"))
			})
		})

		Context("when the request cannot be made at all", func() {
			BeforeEach(func() {
				server.Close()
			})

			It("returns the transport error untyped", func() {
				err := client.CreateRepositoryHook(logger, "margaret", "field-notes", "https://docs.example.com/github", "hook-secret")

				Expect(err).To(HaveOccurred())
				_, ok := err.(*githubclient.HookRejectedError)
				Expect(ok).To(BeFalse())
			})
		})
	})
})
