package repositories

import (
	"fmt"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IUserRepository interface {
	FindByID(userID int64) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	Create(user *entities.User) error
	Update(user *entities.User) error
	Delete(userID int64) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// FindByID retrieves a user by primary key
func (r *UserRepository) FindByID(userID int64) (*entities.User, error) {
	var user entities.User
	if err := r.db.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername retrieves a user by username, nil when no account exists
func (r *UserRepository) FindByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, "username = ?", username).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by email, nil when no account exists
func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, "email = ?", email).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(user *entities.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(user *entities.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) Delete(userID int64) error {
	return r.db.Delete(&entities.User{}, "user_id = ?", userID).Error
}
