package uploadController_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	uploadController "devpath/controllers/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 64)...)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fakeUploader struct {
	calls int
	kind  string
	size  int64
	url   string
	err   error
	fracs []float64
}

func (f *fakeUploader) Upload(_ context.Context, file io.Reader, size int64, _, kind string, progress func(float64)) (string, error) {
	f.calls++
	f.kind = kind
	f.size = size
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	if progress != nil {
		progress(1)
		f.fracs = append(f.fracs, 1)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func setupTest(t *testing.T, fake *fakeUploader) *fiber.App {
	t.Helper()

	app := fiber.New()
	ctl := uploadController.New(fake)
	app.Post("/admin/upload/:kind", ctl.Upload)
	return app
}

func multipartRequest(t *testing.T, path, filename string, fileBytes []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(fileBytes)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func doUpload(t *testing.T, app *fiber.App, path, filename string, fileBytes []byte) (*http.Response, envelope) {
	t.Helper()

	resp, err := app.Test(multipartRequest(t, path, filename, fileBytes), -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestUploadThumbnail(t *testing.T) {
	fake := &fakeUploader{url: "https://res.cloudinary.com/demo/image/upload/a.png"}
	app := setupTest(t, fake)

	resp, env := doUpload(t, app, "/admin/upload/thumbnail", "a.png", pngBytes)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, fake.url, data.URL)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "thumbnail", fake.kind)
	assert.EqualValues(t, len(pngBytes), fake.size)
}

func TestUploadDocumentPDF(t *testing.T) {
	fake := &fakeUploader{url: "https://res.cloudinary.com/demo/raw/upload/n.pdf"}
	app := setupTest(t, fake)

	resp, _ := doUpload(t, app, "/admin/upload/document", "n.pdf", pdfBytes)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "document", fake.kind)
}

func TestUploadRejectsWrongMimeBeforeNetwork(t *testing.T) {
	fake := &fakeUploader{url: "https://example.com/should-not-happen"}
	app := setupTest(t, fake)

	// A PNG posted to the PDF-only field must be rejected locally.
	resp, env := doUpload(t, app, "/admin/upload/document", "sneaky.pdf", pngBytes)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Message, "not allowed")
	assert.Zero(t, fake.calls)
}

func TestUploadRejectsPDFAsThumbnail(t *testing.T) {
	fake := &fakeUploader{}
	app := setupTest(t, fake)

	resp, _ := doUpload(t, app, "/admin/upload/thumbnail", "doc.png", pdfBytes)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, fake.calls)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	fake := &fakeUploader{}
	app := setupTest(t, fake)

	big := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 5<<20)...)
	resp, env := doUpload(t, app, "/admin/upload/thumbnail", "big.png", big)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Message, "too large")
	assert.Zero(t, fake.calls)
}

func TestUploadUnknownKind(t *testing.T) {
	fake := &fakeUploader{}
	app := setupTest(t, fake)

	resp, _ := doUpload(t, app, "/admin/upload/banner", "a.png", pngBytes)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, fake.calls)
}

func TestUploadGatewayFailureStripsVendorPrefix(t *testing.T) {
	fake := &fakeUploader{err: errors.New("Cloudinary: Upload preset not found")}
	app := setupTest(t, fake)

	resp, env := doUpload(t, app, "/admin/upload/thumbnail", "a.png", pngBytes)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Upload preset not found", env.Message)
}
