package users

import (
	"fmt"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/repository"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository interface {
	GetUserByEmail(email string) (*models.User, error)
	GetActiveUserByEmail(email string) (*models.User, error)
	PersistUser(email, passwordHash, role string) error
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := r.repository.GoquDBWrapper.
		Select("id", "email", "password_hash", "role", "is_active", "created_at").
		From("users").
		Where(goqu.Ex{"email": email})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &user, nil
}

func (r *userRepositoryImpl) GetActiveUserByEmail(email string) (*models.User, error) {
	user, err := r.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}

	return user, nil
}

func (r *userRepositoryImpl) PersistUser(email, passwordHash, role string) error {
	query := r.repository.GoquDBWrapper.Insert("users").
		Rows(goqu.Record{
			"email":         email,
			"password_hash": passwordHash,
			"role":          role,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
