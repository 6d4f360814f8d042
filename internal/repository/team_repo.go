package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/luiisca/cal.com/internal/domain"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type teamModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
	Slug string `gorm:"column:slug;uniqueIndex"`
}

func (teamModel) TableName() string { return "teams" }

func toDomainTeam(m teamModel) *domain.Team {
	return &domain.Team{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

func (r *TeamRepository) Create(ctx context.Context, t *domain.Team) error {
	m := teamModel{ID: t.ID, Name: t.Name, Slug: t.Slug}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTeam(m)
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	var m teamModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainTeam(m), nil
}
