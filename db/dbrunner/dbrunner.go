package dbrunner

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	. "github.com/onsi/gomega"

	"github.com/inkwell-press/dewey/db"
)

// Runner opens an isolated in-memory database for a test suite. The
// production schema is managed by the migrations package; tests build an
// equivalent schema from the models so specs can run without a MySQL server.
type Runner struct {
	gormDB *gorm.DB
}

func (runner *Runner) Setup() {
	database, err := gorm.Open("sqlite3", ":memory:")
	Expect(err).NotTo(HaveOccurred())

	database.DB().SetMaxOpenConns(1)
	database.LogMode(false)

	err = database.AutoMigrate(
		&db.User{},
		&db.Account{},
		&db.RemoteRepository{},
		&db.RemoteOrganization{},
		&db.Project{},
	).Error
	Expect(err).NotTo(HaveOccurred())

	runner.gormDB = database
}

func (runner *Runner) Teardown() {
	Expect(runner.gormDB.Close()).To(Succeed())
}

func (runner *Runner) GormDB() *gorm.DB {
	return runner.gormDB
}

func (runner *Runner) Truncate() {
	tables := []string{
		"remote_repository_users",
		"remote_organization_users",
		"project_users",
		"remote_repositories",
		"remote_organizations",
		"projects",
		"accounts",
		"users",
	}

	for _, table := range tables {
		Expect(runner.gormDB.Exec("DELETE FROM " + table).Error).NotTo(HaveOccurred())
	}
}
