package types

import "Bazaar/models"

// ExternalIdentity 外部身份系统（Clerk 形状）同步过来的用户信息
type ExternalIdentity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarUrl string `json:"avatar_url"`
	Phone     string `json:"phone"`
}

type SyncResponse struct {
	Profile     *models.Profile `json:"profile"`
	AccessToken string          `json:"access_token"`
}

// UpdateProfileRequest 部分更新，nil 字段不动
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarUrl *string `json:"avatar_url"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}
