package dao

import (
	"context"

	"Bazaar/models"
	"Bazaar/types"

	"gorm.io/gorm"
)

type VendorApplication struct {
	Repo[models.VendorApplication]
}

func NewVendorApplication(db *gorm.DB) *VendorApplication {
	return &VendorApplication{Repo: NewRepo[models.VendorApplication](db)}
}

type applicationRow struct {
	models.VendorApplication
	ReviewerName string `gorm:"column:reviewer_name"`
}

func (v *VendorApplication) ListDetailed(ctx context.Context) ([]types.Application, error) {
	var rows []applicationRow
	err := v.Db.WithContext(ctx).Table("vendor_applications").
		Select("vendor_applications.*, reviewer.name AS reviewer_name").
		Joins("LEFT JOIN profiles AS reviewer ON reviewer.id = vendor_applications.reviewed_by").
		Order("vendor_applications.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]types.Application, len(rows))
	for i, row := range rows {
		views[i] = types.Application{
			VendorApplication: row.VendorApplication,
			ReviewerName:      row.ReviewerName,
		}
	}
	return views, nil
}

func (v *VendorApplication) HasPending(ctx context.Context, userID string) (bool, error) {
	return v.Repo.IsExist(ctx, "user_id = ? AND status = ?", userID, models.ApplicationPending)
}

// Review 审核结论和角色晋升同一事务写入。
// 晋升失败整个事务回滚，不会留下 approved 但 role 还是 customer 的中间态。
func (v *VendorApplication) Review(ctx context.Context, app *models.VendorApplication, promote bool) error {
	return v.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.VendorApplication{}).
			Where("id = ?", app.ID).
			Updates(map[string]any{
				"status":      app.Status,
				"notes":       app.Notes,
				"reviewed_by": app.ReviewedBy,
				"reviewed_at": app.ReviewedAt,
			}).Error
		if err != nil {
			return err
		}

		if promote {
			err = tx.Model(&models.Profile{}).
				Where("id = ?", app.UserID).
				Update("role", models.RoleVendor).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
