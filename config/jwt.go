package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpiresIn 访问令牌有效期（秒）
	ExpiresIn int `json:"expires_in" yaml:"expires_in"`
}
