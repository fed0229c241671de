package db

import (
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
)

//go:generate counterfeiter . UserRepository

type UserRepository interface {
	FindByUsername(logger lager.Logger, username string) (User, bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(logger lager.Logger, username string) (User, bool, error) {
	logger = logger.Session("find-user-by-username", lager.Data{
		"username": username,
	})

	var user User
	err := r.db.Where(User{Username: username}).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		return User{}, false, nil
	}
	if err != nil {
		logger.Error("failed", err)
		return User{}, false, err
	}

	return user, true, nil
}
