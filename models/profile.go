package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// CanManageProducts 能否发布和管理自己的商品
func (r Role) CanManageProducts() bool {
	return r == RoleVendor || r == RoleAdmin
}

// CanModerate 能否审核入驻申请、编辑任意商品、管理订单状态
func (r Role) CanModerate() bool {
	return r == RoleAdmin
}

// Profile 本地用户档案，主键是外部身份系统下发的用户 ID
type Profile struct {
	ID        string    `gorm:"primaryKey;size:255;column:id" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_profiles_email;column:email" json:"email"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Role      Role      `gorm:"type:enum('customer','vendor','admin');default:'customer';column:role" json:"role"`
	Status    string    `gorm:"size:50;default:'active';column:status" json:"status"`
	AvatarUrl string    `gorm:"type:text;column:avatar_url" json:"avatar_url"`
	Phone     string    `gorm:"size:50;column:phone" json:"phone"`
	Address   string    `gorm:"type:text;column:address" json:"address"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
