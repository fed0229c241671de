package db_test

import (
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/inkwell-press/dewey/db"
)

var _ = Describe("ProjectRepo", func() {
	var (
		logger   *lagertest.TestLogger
		database *gorm.DB
		repo     db.ProjectRepository
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("project-repo")
		database = dbRunner.GormDB()
		repo = db.NewProjectRepository(database)

		user := db.User{Username: "margaret"}
		Expect(database.Create(&user).Error).NotTo(HaveOccurred())

		project := db.Project{
			Slug:    "field-notes",
			RepoURL: "https://github.com/margaret/field-notes",
			Users:   []db.User{user},
		}
		Expect(database.Create(&project).Error).NotTo(HaveOccurred())
	})

	Describe("FindBySlug", func() {
		It("finds the project with its users", func() {
			project, ok, err := repo.FindBySlug(logger, "field-notes")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			Expect(project.RepoURL).To(Equal("https://github.com/margaret/field-notes"))
			Expect(project.Users).To(HaveLen(1))
			Expect(project.Users[0].Username).To(Equal("margaret"))
		})

		It("reports a missing project without an error", func() {
			_, ok, err := repo.FindBySlug(logger, "missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})
})
