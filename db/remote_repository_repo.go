package db

import (
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
)

//go:generate counterfeiter . RemoteRepositoryRepository

type RemoteRepositoryRepository interface {
	Upsert(logger lager.Logger, user User, repository *RemoteRepository) (UpsertOutcome, error)
	ForUser(logger lager.Logger, userID uint) ([]RemoteRepository, error)
}

type remoteRepositoryRepository struct {
	db *gorm.DB
}

func NewRemoteRepositoryRepository(db *gorm.DB) *remoteRepositoryRepository {
	return &remoteRepositoryRepository{db: db}
}

func (r *remoteRepositoryRepository) Upsert(logger lager.Logger, user User, repository *RemoteRepository) (UpsertOutcome, error) {
	logger = logger.Session("upsert-remote-repository", lager.Data{
		"full-name": repository.FullName,
		"account":   repository.AccountID,
		"user":      user.ID,
	})
	logger.Debug("starting")

	tx := r.db.Begin()
	if tx.Error != nil {
		logger.Error("failed-to-begin-transaction", tx.Error)
		return UpsertSkipped, tx.Error
	}
	defer tx.Rollback()

	var existing RemoteRepository
	err := tx.Joins(
		"JOIN remote_repository_users ON remote_repository_users.remote_repository_id = remote_repositories.id",
	).Where(
		"remote_repositories.full_name = ? AND remote_repositories.account_id = ? AND remote_repository_users.user_id = ?",
		repository.FullName, repository.AccountID, user.ID,
	).First(&existing).Error

	if gorm.IsRecordNotFoundError(err) {
		return r.create(logger, tx, user, repository)
	}

	if err != nil {
		logger.Error("failed-to-find-existing", err)
		return UpsertSkipped, err
	}

	if organizationConflict(existing.OrganizationID, repository.OrganizationID) {
		logger.Info("organization-conflict", lager.Data{
			"existing-organization": *existing.OrganizationID,
		})
		return UpsertSkipped, nil
	}

	err = tx.Model(&existing).Updates(map[string]interface{}{
		"name":            repository.Name,
		"description":     repository.Description,
		"ssh_url":         repository.SSHURL,
		"html_url":        repository.HTMLURL,
		"clone_url":       repository.CloneURL,
		"avatar_url":      repository.AvatarURL,
		"private":         repository.Private,
		"admin":           repository.Admin,
		"vcs":             repository.VCS,
		"raw_json":        repository.RawJSON,
		"organization_id": repository.OrganizationID,
	}).Error
	if err != nil {
		logger.Error("failed-to-update", err)
		return UpsertSkipped, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("failed-to-commit", err)
		return UpsertSkipped, err
	}

	repository.ID = existing.ID
	repository.CreatedAt = existing.CreatedAt

	logger.Debug("done")
	return UpsertUpdated, nil
}

func (r *remoteRepositoryRepository) create(logger lager.Logger, tx *gorm.DB, user User, repository *RemoteRepository) (UpsertOutcome, error) {
	err := tx.Set("gorm:save_associations", false).Create(repository).Error
	if err != nil {
		logger.Error("failed-to-create", err)
		return UpsertSkipped, err
	}

	err = tx.Model(repository).Association("Users").Append(user).Error
	if err != nil {
		logger.Error("failed-to-attach-user", err)
		return UpsertSkipped, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("failed-to-commit", err)
		return UpsertSkipped, err
	}

	logger.Debug("done")
	return UpsertCreated, nil
}

func (r *remoteRepositoryRepository) ForUser(logger lager.Logger, userID uint) ([]RemoteRepository, error) {
	logger = logger.Session("remote-repositories-for-user", lager.Data{
		"user": userID,
	})

	var repositories []RemoteRepository
	err := r.db.Preload("Organization").Joins(
		"JOIN remote_repository_users ON remote_repository_users.remote_repository_id = remote_repositories.id",
	).Where(
		"remote_repository_users.user_id = ?", userID,
	).Order("remote_repositories.full_name").Find(&repositories).Error
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	return repositories, nil
}

func organizationConflict(existing, incoming *uint) bool {
	if existing == nil {
		return false
	}

	return incoming == nil || *incoming != *existing
}
