package utils

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrUploadDisabled = errors.New("image uploads are not configured")

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, file any, publicID string) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// UploadImage stores a square 200x200 thumbnail.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, file any, publicID string) (string, error) {
	overwrite := true
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         u.folder,
		Overwrite:      &overwrite,
		Transformation: "c_thumb,w_200,h_200",
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// DisabledUploader rejects every upload.
type DisabledUploader struct{}

func (DisabledUploader) UploadImage(context.Context, any, string) (string, error) {
	return "", ErrUploadDisabled
}
