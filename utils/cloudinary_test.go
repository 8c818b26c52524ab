package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *CloudinaryClient {
	return &CloudinaryClient{
		client:       resty.New(),
		baseURL:      baseURL,
		cloudName:    "test-cloud",
		uploadPreset: "test-preset",
	}
}

func TestCloudinaryUploadSuccess(t *testing.T) {
	var gotPath, gotPreset, gotCloud string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotPreset = r.FormValue("upload_preset")
		gotCloud = r.FormValue("cloud_name")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/test-cloud/image/upload/a.png",
		})
	}))
	defer srv.Close()

	cl := newTestClient(srv.URL)

	payload := []byte(strings.Repeat("x", 1024))
	var fracs []float64
	url, err := cl.Upload(context.Background(), bytes.NewReader(payload), int64(len(payload)), "a.png", "thumbnail", func(frac float64) {
		fracs = append(fracs, frac)
	})
	require.NoError(t, err)

	assert.Equal(t, "https://res.cloudinary.com/test-cloud/image/upload/a.png", url)
	assert.Equal(t, "/image/upload", gotPath)
	assert.Equal(t, "test-preset", gotPreset)
	assert.Equal(t, "test-cloud", gotCloud)

	require.NotEmpty(t, fracs)
	assert.InDelta(t, 1.0, fracs[len(fracs)-1], 0.001)
	for i := 1; i < len(fracs); i++ {
		assert.GreaterOrEqual(t, fracs[i], fracs[i-1])
	}
}

func TestCloudinaryUploadDocumentUsesAutoResource(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/test-cloud/raw/upload/n.pdf",
		})
	}))
	defer srv.Close()

	cl := newTestClient(srv.URL)

	payload := []byte("%PDF-1.4")
	_, err := cl.Upload(context.Background(), bytes.NewReader(payload), int64(len(payload)), "n.pdf", "document", nil)
	require.NoError(t, err)
	assert.Equal(t, "/auto/upload", gotPath)
}

func TestCloudinaryUploadErrorStripsVendorPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Cloudinary: Upload preset not found"},
		})
	}))
	defer srv.Close()

	cl := newTestClient(srv.URL)

	payload := []byte("data")
	_, err := cl.Upload(context.Background(), bytes.NewReader(payload), int64(len(payload)), "a.png", "thumbnail", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
	assert.NotContains(t, err.Error(), "Cloudinary: ")
}

func TestProgressReaderCapsAtOne(t *testing.T) {
	payload := []byte(strings.Repeat("y", 100))
	var last float64
	pr := &progressReader{
		r:        bytes.NewReader(payload),
		size:     50, // deliberately smaller than the payload
		progress: func(frac float64) { last = frac },
	}

	buf := make([]byte, 16)
	for {
		if _, err := pr.Read(buf); err != nil {
			break
		}
	}
	assert.InDelta(t, 1.0, last, 0.001)
}

func TestStripVendorPrefix(t *testing.T) {
	assert.Equal(t, "Upload failed", StripVendorPrefix("Cloudinary: Upload failed"))
	assert.Equal(t, "Upload failed", StripVendorPrefix("cloudinary: Upload failed"))
	assert.Equal(t, "plain message", StripVendorPrefix("plain message"))
}
