package dao

import (
	"context"
	"fmt"

	"Bazaar/models"

	"gorm.io/gorm"
)

type Profile struct {
	Repo[models.Profile]
}

func NewProfile(db *gorm.DB) *Profile {
	return &Profile{Repo: NewRepo[models.Profile](db)}
}

// GetOrCreate 按外部身份 ID 取档案，没有就建一条。
// 并发重试下靠主键和 email 唯一索引兜底，不会出现两条档案。
func (p *Profile) GetOrCreate(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	err := p.Db.WithContext(ctx).
		Where("id = ?", profile.ID).
		FirstOrCreate(profile).Error
	return profile, err
}

// Update 部分更新，只动传入的列
func (p *Profile) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := p.Db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("dao.Profile.Update error: %w", err)
	}

	return nil
}
