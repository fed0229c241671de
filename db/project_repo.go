package db

import (
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
)

//go:generate counterfeiter . ProjectRepository

type ProjectRepository interface {
	FindBySlug(logger lager.Logger, slug string) (Project, bool, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindBySlug(logger lager.Logger, slug string) (Project, bool, error) {
	logger = logger.Session("find-project-by-slug", lager.Data{
		"slug": slug,
	})

	var project Project
	err := r.db.Preload("Users").Where(Project{Slug: slug}).First(&project).Error
	if gorm.IsRecordNotFoundError(err) {
		return Project{}, false, nil
	}
	if err != nil {
		logger.Error("failed", err)
		return Project{}, false, err
	}

	return project, true, nil
}
