package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/luiisca/cal.com/internal/domain"
)

type AvatarRepository struct {
	db *gorm.DB
}

func NewAvatarRepository(db *gorm.DB) *AvatarRepository {
	return &AvatarRepository{db: db}
}

type avatarModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Path      string    `gorm:"column:path"`
	URL       string    `gorm:"column:url"`
	MimeType  string    `gorm:"column:mime_type"`
	SizeBytes int64     `gorm:"column:size_bytes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (avatarModel) TableName() string { return "avatars" }

func (r *AvatarRepository) Create(ctx context.Context, a *domain.Avatar) error {
	m := avatarModel{
		UserID:    a.UserID,
		Path:      a.Path,
		URL:       a.URL,
		MimeType:  a.MimeType,
		SizeBytes: a.SizeBytes,
		CreatedAt: a.CreatedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	a.ID = m.ID
	return nil
}
