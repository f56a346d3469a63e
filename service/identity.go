package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Bazaar/config"
	"Bazaar/models"
	"Bazaar/pkg/jwt"
	"Bazaar/types"

	"gorm.io/gorm"
)

// ProfileStore 档案持久化边界，唯一的落地实现是 dao.Profile
type ProfileStore interface {
	GetOrCreate(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	FindById(ctx context.Context, id any) (*models.Profile, error)
	Update(ctx context.Context, id string, updates map[string]any) error
}

type IdentityService struct {
	Config   *config.Config
	Profiles ProfileStore
}

var _ IIdentityService = (*IdentityService)(nil)

type IIdentityService interface {
	Resolve(ctx context.Context, identity types.ExternalIdentity) (*models.Profile, error)
	Get(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, req types.UpdateProfileRequest) (*models.Profile, error)
	IssueToken(profile *models.Profile) (string, error)
}

// Resolve 外部身份换本地档案，首次见到就建档（role=customer, status=active）。
// 重复解析同一个身份永远拿到同一条档案。
func (s *IdentityService) Resolve(ctx context.Context, identity types.ExternalIdentity) (*models.Profile, error) {
	if identity.ID == "" {
		return nil, fmt.Errorf("%w: identity id is required", ErrValidation)
	}

	name := identity.Name
	if name == "" {
		name = "User"
	}

	profile := &models.Profile{
		ID:        identity.ID,
		Email:     identity.Email,
		Name:      name,
		Role:      models.RoleCustomer,
		Status:    "active",
		AvatarUrl: identity.AvatarUrl,
		Phone:     identity.Phone,
	}

	profile, err := s.Profiles.GetOrCreate(ctx, profile)
	if err != nil {
		// 档案拿不到就视为未登录，由调用方处理，不算致命错误
		return nil, fmt.Errorf("%w: resolve profile: %v", ErrPersistence, err)
	}
	return profile, nil
}

func (s *IdentityService) Get(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.Profiles.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find profile: %v", ErrPersistence, err)
	}
	return profile, nil
}

// UpdateProfile 只合并传入的字段，不整行替换
func (s *IdentityService) UpdateProfile(ctx context.Context, id string, req types.UpdateProfileRequest) (*models.Profile, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.AvatarUrl != nil {
		updates["avatar_url"] = *req.AvatarUrl
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if err := s.Profiles.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%w: update profile: %v", ErrPersistence, err)
	}
	return s.Get(ctx, id)
}

func (s *IdentityService) IssueToken(profile *models.Profile) (string, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresIn) * time.Second
	if expire <= 0 {
		expire = time.Hour
	}
	return jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		profile.ID,
		string(profile.Role),
		"access",
		expire,
	)
}
