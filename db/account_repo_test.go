package db_test

import (
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/inkwell-press/dewey/db"
)

var _ = Describe("AccountRepo", func() {
	var (
		logger   *lagertest.TestLogger
		database *gorm.DB
		repo     db.AccountRepository

		user    db.User
		account db.Account
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("account-repo")
		database = dbRunner.GormDB()
		repo = db.NewAccountRepository(database)

		user = db.User{Username: "margaret"}
		Expect(database.Create(&user).Error).NotTo(HaveOccurred())

		account = db.Account{Provider: db.ProviderGitHub, Login: "margaret", Token: "some-token", UserID: user.ID}
		Expect(database.Create(&account).Error).NotTo(HaveOccurred())
	})

	Describe("ForUser", func() {
		BeforeEach(func() {
			other := db.Account{Provider: "bitbucket", Login: "margaret", UserID: user.ID}
			Expect(database.Create(&other).Error).NotTo(HaveOccurred())
		})

		It("returns only the accounts for the provider", func() {
			accounts, err := repo.ForUser(logger, user.ID, db.ProviderGitHub)
			Expect(err).NotTo(HaveOccurred())

			Expect(accounts).To(HaveLen(1))
			Expect(accounts[0].Login).To(Equal("margaret"))
			Expect(accounts[0].Token).To(Equal("some-token"))
		})
	})

	Describe("ForProvider", func() {
		BeforeEach(func() {
			otherUser := db.User{Username: "silas"}
			Expect(database.Create(&otherUser).Error).NotTo(HaveOccurred())

			otherAccount := db.Account{Provider: db.ProviderGitHub, Login: "silas", UserID: otherUser.ID}
			Expect(database.Create(&otherAccount).Error).NotTo(HaveOccurred())
		})

		It("returns every account for the provider with its user", func() {
			accounts, err := repo.ForProvider(logger, db.ProviderGitHub)
			Expect(err).NotTo(HaveOccurred())

			Expect(accounts).To(HaveLen(2))
			Expect(accounts[0].Login).To(Equal("margaret"))
			Expect(accounts[0].User.Username).To(Equal("margaret"))
			Expect(accounts[1].Login).To(Equal("silas"))
			Expect(accounts[1].User.Username).To(Equal("silas"))
		})
	})

	Describe("ForRepository", func() {
		BeforeEach(func() {
			repository := db.RemoteRepository{FullName: "inkwell/handbook", AccountID: account.ID}
			Expect(database.Create(&repository).Error).NotTo(HaveOccurred())
		})

		It("returns the accounts that have synced the repository", func() {
			accounts, err := repo.ForRepository(logger, db.ProviderGitHub, "inkwell/handbook")
			Expect(err).NotTo(HaveOccurred())

			Expect(accounts).To(HaveLen(1))
			Expect(accounts[0].Login).To(Equal("margaret"))
			Expect(accounts[0].User.Username).To(Equal("margaret"))
		})

		It("returns nothing for an unknown repository", func() {
			accounts, err := repo.ForRepository(logger, db.ProviderGitHub, "inkwell/unknown")
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(BeEmpty())
		})
	})

	Describe("FindByLogin", func() {
		It("finds the account", func() {
			found, ok, err := repo.FindByLogin(logger, db.ProviderGitHub, "margaret")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(found.ID).To(Equal(account.ID))
			Expect(found.User.Username).To(Equal("margaret"))
		})

		It("reports a missing account without an error", func() {
			_, ok, err := repo.FindByLogin(logger, db.ProviderGitHub, "nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})
})
