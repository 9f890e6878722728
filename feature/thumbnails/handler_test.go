package thumbnails_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitinventory/core/storage/mocks"
	"kitinventory/feature/thumbnails"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleGetThumbnail(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "thumbnails", "31300.png", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("png-bytes"))), nil)

	feat := thumbnails.NewFeature(mockClient, "thumbnails", "http://catalog.example.test", zap.NewNop())
	require.True(t, feat.IsEnabled())

	app := fiber.New()
	require.NoError(t, feat.Load(app))

	req := httptest.NewRequest(http.MethodGet, "/thumbnail/31300.png", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestHandleGetThumbnail_NotFound(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "thumbnails", "nope.png", mock.Anything).
		Return(nil, fmt.Errorf("object not found"))

	feat := thumbnails.NewFeature(mockClient, "thumbnails", "http://127.0.0.1:1", zap.NewNop())
	app := fiber.New()
	require.NoError(t, feat.Load(app))

	req := httptest.NewRequest(http.MethodGet, "/thumbnail/nope.png", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleGetThumbnail_RejectsTraversal(t *testing.T) {
	mockClient := new(mocks.Client)
	feat := thumbnails.NewFeature(mockClient, "thumbnails", "", zap.NewNop())
	app := fiber.New()
	require.NoError(t, feat.Load(app))

	req := httptest.NewRequest(http.MethodGet, "/thumbnail/..%2Fsecrets", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFeature_DisabledWithoutStorage(t *testing.T) {
	feat := thumbnails.NewFeature(nil, "thumbnails", "", zap.NewNop())
	assert.False(t, feat.IsEnabled())
}
