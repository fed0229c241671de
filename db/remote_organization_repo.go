package db

import (
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
)

//go:generate counterfeiter . RemoteOrganizationRepository

type RemoteOrganizationRepository interface {
	Upsert(logger lager.Logger, user User, organization *RemoteOrganization) (UpsertOutcome, error)
	ForUser(logger lager.Logger, userID uint) ([]RemoteOrganization, error)
}

type remoteOrganizationRepository struct {
	db *gorm.DB
}

func NewRemoteOrganizationRepository(db *gorm.DB) *remoteOrganizationRepository {
	return &remoteOrganizationRepository{db: db}
}

func (r *remoteOrganizationRepository) Upsert(logger lager.Logger, user User, organization *RemoteOrganization) (UpsertOutcome, error) {
	logger = logger.Session("upsert-remote-organization", lager.Data{
		"slug":    organization.Slug,
		"account": organization.AccountID,
		"user":    user.ID,
	})
	logger.Debug("starting")

	tx := r.db.Begin()
	if tx.Error != nil {
		logger.Error("failed-to-begin-transaction", tx.Error)
		return UpsertSkipped, tx.Error
	}
	defer tx.Rollback()

	var existing RemoteOrganization
	err := tx.Joins(
		"JOIN remote_organization_users ON remote_organization_users.remote_organization_id = remote_organizations.id",
	).Where(
		"remote_organizations.slug = ? AND remote_organizations.account_id = ? AND remote_organization_users.user_id = ?",
		organization.Slug, organization.AccountID, user.ID,
	).First(&existing).Error

	if gorm.IsRecordNotFoundError(err) {
		return r.create(logger, tx, user, organization)
	}

	if err != nil {
		logger.Error("failed-to-find-existing", err)
		return UpsertSkipped, err
	}

	err = tx.Model(&existing).Updates(map[string]interface{}{
		"name":       organization.Name,
		"email":      organization.Email,
		"avatar_url": organization.AvatarURL,
		"html_url":   organization.HTMLURL,
		"raw_json":   organization.RawJSON,
	}).Error
	if err != nil {
		logger.Error("failed-to-update", err)
		return UpsertSkipped, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("failed-to-commit", err)
		return UpsertSkipped, err
	}

	organization.ID = existing.ID
	organization.CreatedAt = existing.CreatedAt

	logger.Debug("done")
	return UpsertUpdated, nil
}

func (r *remoteOrganizationRepository) create(logger lager.Logger, tx *gorm.DB, user User, organization *RemoteOrganization) (UpsertOutcome, error) {
	err := tx.Set("gorm:save_associations", false).Create(organization).Error
	if err != nil {
		logger.Error("failed-to-create", err)
		return UpsertSkipped, err
	}

	err = tx.Model(organization).Association("Users").Append(user).Error
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

func (r *remoteOrganizationRepository) ForUser(logger lager.Logger, userID uint) ([]RemoteOrganization, error) {
	logger = logger.Session("remote-organizations-for-user", lager.Data{
		"user": userID,
	})

	var organizations []RemoteOrganization
	err := r.db.Joins(
		"JOIN remote_organization_users ON remote_organization_users.remote_organization_id = remote_organizations.id",
	).Where(
		"remote_organization_users.user_id = ?", userID,
	).Order("remote_organizations.slug").Find(&organizations).Error
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	return organizations, nil
}
