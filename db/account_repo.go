package db

import (
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
)

//go:generate counterfeiter . AccountRepository

type AccountRepository interface {
	ForUser(logger lager.Logger, userID uint, provider string) ([]Account, error)
	ForProvider(logger lager.Logger, provider string) ([]Account, error)
	ForRepository(logger lager.Logger, provider, fullName string) ([]Account, error)
	FindByLogin(logger lager.Logger, provider, login string) (Account, bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) ForUser(logger lager.Logger, userID uint, provider string) ([]Account, error) {
	logger = logger.Session("accounts-for-user", lager.Data{
		"user":     userID,
		"provider": provider,
	})

	var accounts []Account
	err := r.db.Preload("User").Where(Account{UserID: userID, Provider: provider}).Find(&accounts).Error
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	return accounts, nil
}

func (r *accountRepository) ForProvider(logger lager.Logger, provider string) ([]Account, error) {
	logger = logger.Session("accounts-for-provider", lager.Data{
		"provider": provider,
	})

	var accounts []Account
	err := r.db.Preload("User").Where(Account{Provider: provider}).Order("login").Find(&accounts).Error
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	return accounts, nil
}

func (r *accountRepository) ForRepository(logger lager.Logger, provider, fullName string) ([]Account, error) {
	logger = logger.Session("accounts-for-repository", lager.Data{
		"provider":  provider,
		"full-name": fullName,
	})

	var accounts []Account
	err := r.db.Preload("User").Joins(
		"JOIN remote_repositories ON remote_repositories.account_id = accounts.id",
	).Where(
		"accounts.provider = ? AND remote_repositories.full_name = ?", provider, fullName,
	).Group("accounts.id").Find(&accounts).Error
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	return accounts, nil
}

func (r *accountRepository) FindByLogin(logger lager.Logger, provider, login string) (Account, bool, error) {
	logger = logger.Session("find-account-by-login", lager.Data{
		"provider": provider,
		"login":    login,
	})

	var account Account
	err := r.db.Preload("User").Where(Account{Provider: provider, Login: login}).First(&account).Error
	if gorm.IsRecordNotFoundError(err) {
		return Account{}, false, nil
	}
	if err != nil {
		logger.Error("failed", err)
		return Account{}, false, err
	}

	return account, true, nil
}
