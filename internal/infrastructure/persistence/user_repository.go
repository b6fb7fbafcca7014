package persistence

import (
	"context"

	"github.com/campaign/backend/internal/domain/identity"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const userNotFound = "user not found"

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, userNotFound)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", identity.NormalizeEmail(email)).First(&model).Error; err != nil {
		return nil, notFound(err, userNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll lists users
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	var rows []models.UserModel
	query := r.db.WithContext(ctx).Model(&models.UserModel{})
	if err := applyFilter(query, filter, userSort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]identity.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].ToDomain())
	}
	return users, nil
}

// ExistsByEmail checks whether the email is taken
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", identity.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a user. The unique index on email decides races.
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	if err := r.db.WithContext(ctx).Create(models.UserModelFromDomain(user)).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainError(shared.CodeAlreadyExists, "e-mail already exists")
		}
		return err
	}
	return nil
}

// Save updates an existing user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).Model(model).
		Select("email", "password_hash", "updated_at").
		Updates(model)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return shared.NewDomainError(shared.CodeAlreadyExists, "e-mail already exists")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(userNotFound)
	}
	return nil
}

// Delete deletes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(userNotFound)
	}
	return nil
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
