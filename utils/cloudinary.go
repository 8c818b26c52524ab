package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"devpath/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// CloudinaryClient uploads files to Cloudinary's unauthenticated preset
// endpoint and returns the permanent URL Cloudinary assigns.
type CloudinaryClient struct {
	client       *resty.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

func NewCloudinaryClient(cfg *config.Config) *CloudinaryClient {
	return &CloudinaryClient{
		client:       resty.New(),
		baseURL:      fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", cfg.CloudinaryCloudName),
		cloudName:    cfg.CloudinaryCloudName,
		uploadPreset: cfg.CloudinaryUploadPreset,
	}
}

// progressReader reports the fraction of size read so far on every Read.
type progressReader struct {
	r        io.Reader
	size     int64
	read     int64
	progress func(float64)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	pr.read += int64(n)
	if pr.progress != nil && pr.size > 0 {
		frac := float64(pr.read) / float64(pr.size)
		if frac > 1 {
			frac = 1
		}
		pr.progress(frac)
	}
	return n, err
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload streams file to Cloudinary and returns the secure URL. kind selects
// the resource type: thumbnails go through image processing, documents use
// auto detection. progress receives fractions in (0, 1].
func (cl *CloudinaryClient) Upload(ctx context.Context, file io.Reader, size int64, filename, kind string, progress func(float64)) (string, error) {
	resourceType := "auto"
	if kind == "thumbnail" {
		resourceType = "image"
	}

	reader := &progressReader{r: file, size: size, progress: progress}

	resp, err := cl.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"upload_preset": cl.uploadPreset,
			"cloud_name":    cl.cloudName,
			"public_id":     uuid.NewString(),
		}).
		SetMultipartField("file", filename, "", reader).
		Post(fmt.Sprintf("%s/%s/upload", cl.baseURL, resourceType))
	if err != nil {
		return "", err
	}

	var body uploadResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("unexpected upload response: %w", err)
	}

	if resp.IsError() || body.SecureURL == "" {
		msg := StripVendorPrefix(body.Error.Message)
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("upload failed: %s", msg)
	}

	return body.SecureURL, nil
}
