package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"Bazaar/config"
	"Bazaar/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
)

// UploadService 商品图片上传到对象存储，返回可直接入库的公网 URL
type UploadService struct {
	Client *oss.Client
	Config *config.OssConfig
}

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	UploadImage(ctx context.Context, vendorID string, header *multipart.FileHeader) (*types.UploadImageResponse, error)
}

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func (s *UploadService) UploadImage(ctx context.Context, vendorID string, header *multipart.FileHeader) (*types.UploadImageResponse, error) {
	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("%w: missing image", ErrValidation)
	}
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("%w: image size invalid", ErrValidation)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open upload: %v", ErrValidation, err)
	}
	defer f.Close()

	// 读头嗅探 MIME，之后要回绕重新上传同一份流
	head := make([]byte, 512)
	n, _ := f.Read(head)
	contentType := http.DetectContentType(head[:n])
	ext, ok := imageExt[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image type %s", ErrValidation, contentType)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: rewind upload: %v", ErrValidation, err)
	}

	key := fmt.Sprintf("products/%s/%s%s", vendorID, uuid.NewString(), ext)
	_, err = s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.Config.Bucket),
		Key:         oss.Ptr(key),
		Body:        f,
		ContentType: oss.Ptr(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upload image: %v", ErrPersistence, err)
	}

	return &types.UploadImageResponse{
		Url: fmt.Sprintf("https://%s.%s/%s", s.Config.Bucket, s.Config.Endpoint, key),
		Key: key,
	}, nil
}
