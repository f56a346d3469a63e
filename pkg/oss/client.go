package oss

import (
	"Bazaar/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

func GetOssClient(conf *config.Config) *oss.Client {
	var provider credentials.CredentialsProvider
	if conf.Oss.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.Oss.AccessKeyID, conf.Oss.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}
	cfg := oss.LoadDefaultConfig().WithCredentialsProvider(provider).
		WithEndpoint(conf.Oss.Endpoint).WithRegion(conf.Oss.Region)
	return oss.NewClient(cfg)
}
