package handler

import (
	"Bazaar/config"
	"Bazaar/middleware"
	"Bazaar/pkg/context"
	"Bazaar/pkg/response"
	"Bazaar/service"
	"Bazaar/types"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

type Auth struct {
	Config          *config.Config
	IdentityService service.IIdentityService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/sync", context.Wrap(a.Sync))

	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	me := r.Group("/v1/me")
	me.Use(authorize)
	me.GET("", context.Wrap(a.Me))
	me.PATCH("", context.Wrap(a.UpdateMe))
}

// Sync 接收身份提供方的原始用户载荷，落一条本地档案并换发自己的访问令牌。
// 同一个外部 id 重复同步永远命中同一条档案。
func (a *Auth) Sync(c *gin.Context) error {
	body, err := c.GetRawData()
	if err != nil {
		return response.NewValidationError("请求体读取失败")
	}
	payload := gjson.ParseBytes(body)

	name := payload.Get("full_name").String()
	if name == "" {
		name = payload.Get("first_name").String()
	}
	identity := types.ExternalIdentity{
		ID:        payload.Get("id").String(),
		Email:     payload.Get("email_addresses.0.email_address").String(),
		Name:      name,
		AvatarUrl: payload.Get("image_url").String(),
		Phone:     payload.Get("phone_numbers.0.phone_number").String(),
	}

	profile, err := a.IdentityService.Resolve(c.Request.Context(), identity)
	if err != nil {
		return asBizError(err)
	}
	token, err := a.IdentityService.IssueToken(profile)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, types.SyncResponse{
		Profile:     profile,
		AccessToken: token,
	})
	return nil
}

func (a *Auth) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	profile, err := a.IdentityService.Get(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, profile)
	return nil
}

func (a *Auth) UpdateMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	profile, err := a.IdentityService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, profile)
	return nil
}
