package apiclient_test

import (
	"net/http"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/inkwell-press/dewey/apiclient"
)

var _ = Describe("Client", func() {
	var (
		logger *lagertest.TestLogger
		server *ghttp.Server

		authToken string
		client    apiclient.Client
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("apiclient")
		server = ghttp.NewServer()
		authToken = ""
	})

	JustBeforeEach(func() {
		client = apiclient.NewClient(server.URL(), authToken)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("ProjectToken", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/api/v1/projects/fieldnotes/token"),
					ghttp.RespondWith(http.StatusOK, `{"token": "some-token"}`),
				),
			)
		})

		It("fetches the project's token", func() {
			token, err := client.ProjectToken(logger, "fieldnotes")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("some-token"))
		})

		Context("when the project has no token", func() {
			BeforeEach(func() {
				server.SetHandler(0, ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/api/v1/projects/fieldnotes/token"),
					ghttp.RespondWith(http.StatusNotFound, `{"error": "no token for project"}`),
				))
			})

			It("returns an error", func() {
				_, err := client.ProjectToken(logger, "fieldnotes")
				Expect(err).To(MatchError(ContainSubstring("bad response")))
			})
		})

		Context("when an auth token is configured", func() {
			BeforeEach(func() {
				authToken = "shhh"

				server.SetHandler(0, ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/api/v1/projects/fieldnotes/token"),
					ghttp.VerifyHeaderKV("Authorization", "Bearer shhh"),
					ghttp.RespondWith(http.StatusOK, `{"token": "some-token"}`),
				))
			})

			It("sends it as a bearer token", func() {
				_, err := client.ProjectToken(logger, "fieldnotes")
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("SyncUser", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/api/v1/users/margaret/sync"),
					ghttp.RespondWith(http.StatusOK, `{"user": "margaret", "synced": true}`),
				),
			)
		})

		It("triggers a sync for the user", func() {
			result, err := client.SyncUser(logger, "margaret")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User).To(Equal("margaret"))
			Expect(result.Synced).To(BeTrue())
		})

		Context("when the sync fails upstream", func() {
			BeforeEach(func() {
				server.SetHandler(0, ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/api/v1/users/margaret/sync"),
					ghttp.RespondWith(http.StatusBadGateway, `{"error": "could not sync"}`),
				))
			})

			It("returns an error", func() {
				_, err := client.SyncUser(logger, "margaret")
				Expect(err).To(MatchError(ContainSubstring("bad response")))
			})
		})
	})

	Describe("UserRepositories", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/api/v1/users/margaret/repositories"),
					ghttp.RespondWith(http.StatusOK, `[
						{
							"full_name": "inkwell/handbook",
							"name": "handbook",
							"clone_url": "git@github.com:inkwell/handbook.git",
							"private": true,
							"admin": true,
							"organization": "inkwell"
						}
					]`),
				),
			)
		})

		It("lists the user's repositories", func() {
			repositories, err := client.UserRepositories(logger, "margaret")
			Expect(err).NotTo(HaveOccurred())

			Expect(repositories).To(HaveLen(1))
			Expect(repositories[0].FullName).To(Equal("inkwell/handbook"))
			Expect(repositories[0].Private).To(BeTrue())
			Expect(repositories[0].Organization).To(Equal("inkwell"))
		})
	})

	Describe("SetupWebhook", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/api/v1/projects/fieldnotes/webhook"),
					ghttp.RespondWith(http.StatusCreated, `{"outcome": "created"}`),
				),
			)
		})

		It("reports the outcome", func() {
			outcome, err := client.SetupWebhook(logger, "fieldnotes")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal("created"))
		})

		Context("when the hook already exists", func() {
			BeforeEach(func() {
				server.SetHandler(0, ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/api/v1/projects/fieldnotes/webhook"),
					ghttp.RespondWith(http.StatusConflict, `{"outcome": "rejected"}`),
				))
			})

			It("reports the rejection without erroring", func() {
				outcome, err := client.SetupWebhook(logger, "fieldnotes")
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal("rejected"))
			})
		})

		Context("when the hook could not be created", func() {
			BeforeEach(func() {
				server.SetHandler(0, ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/api/v1/projects/fieldnotes/webhook"),
					ghttp.RespondWith(http.StatusBadGateway, `{"outcome": "errored"}`),
				))
			})

			It("returns an error", func() {
				_, err := client.SetupWebhook(logger, "fieldnotes")
				Expect(err).To(MatchError(ContainSubstring("bad response")))
			})
		})
	})

	Describe("UserOrganizations", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/api/v1/users/margaret/organizations"),
					ghttp.RespondWith(http.StatusOK, `[
						{"slug": "inkwell", "name": "Inkwell Press"}
					]`),
				),
			)
		})

		It("lists the user's organizations", func() {
			organizations, err := client.UserOrganizations(logger, "margaret")
			Expect(err).NotTo(HaveOccurred())

			Expect(organizations).To(HaveLen(1))
			Expect(organizations[0].Slug).To(Equal("inkwell"))
			Expect(organizations[0].Name).To(Equal("Inkwell Press"))
		})
	})
})
