package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/luiisca/cal.com/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	Email               string    `gorm:"column:email;uniqueIndex"`
	PasswordHash        string    `gorm:"column:password_hash"`
	Username            string    `gorm:"column:username;uniqueIndex"`
	Name                string    `gorm:"column:name"`
	Bio                 string    `gorm:"column:bio;type:text"`
	AvatarURL           string    `gorm:"column:avatar_url"`
	BrandColor          string    `gorm:"column:brand_color"`
	DarkBrandColor      string    `gorm:"column:dark_brand_color"`
	CompletedOnboarding bool      `gorm:"column:completed_onboarding"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                  m.ID,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		Username:            m.Username,
		Name:                m.Name,
		Bio:                 m.Bio,
		AvatarURL:           m.AvatarURL,
		BrandColor:          m.BrandColor,
		DarkBrandColor:      m.DarkBrandColor,
		CompletedOnboarding: m.CompletedOnboarding,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                  u.ID,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Username:            u.Username,
		Name:                u.Name,
		Bio:                 u.Bio,
		AvatarURL:           u.AvatarURL,
		BrandColor:          u.BrandColor,
		DarkBrandColor:      u.DarkBrandColor,
		CompletedOnboarding: u.CompletedOnboarding,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, "email = ?", email)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, "username = ?", username)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// ProfileUpdate is a partial profile mutation; nil fields are left untouched.
type ProfileUpdate struct {
	Bio                 *string
	AvatarURL           *string
	CompletedOnboarding *bool
}

func (u ProfileUpdate) Empty() bool {
	return u.Bio == nil && u.AvatarURL == nil && u.CompletedOnboarding == nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*domain.User, error) {
	fields := map[string]any{"updated_at": time.Now()}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}
	if upd.AvatarURL != nil {
		fields["avatar_url"] = *upd.AvatarURL
	}
	if upd.CompletedOnboarding != nil {
		fields["completed_onboarding"] = *upd.CompletedOnboarding
	}

	tx := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", userID).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, userID)
}
