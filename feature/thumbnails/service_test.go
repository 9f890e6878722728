package thumbnails

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitinventory/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Get_FromStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "thumbnails", "31300.png", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("png-bytes"))), nil)

	svc := NewService(mockClient, "thumbnails", "http://catalog.example.test", zap.NewNop())

	data, err := svc.Get(context.Background(), "31300.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	mockClient.AssertExpectations(t)
}

func TestService_Get_MirrorsOnMiss(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/thumbnail/31300.png", r.URL.Path)
		fmt.Fprint(w, "origin-bytes")
	}))
	t.Cleanup(origin.Close)

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "thumbnails", "31300.png", mock.Anything).
		Return(nil, fmt.Errorf("object not found"))
	mockClient.On("PutObject", mock.Anything, "thumbnails", "31300.png", mock.Anything, int64(len("origin-bytes")), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(mockClient, "thumbnails", origin.URL, zap.NewNop())

	data, err := svc.Get(context.Background(), "31300.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("origin-bytes"), data)
	mockClient.AssertExpectations(t)
}

func TestService_Get_OriginMissing(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(origin.Close)

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "thumbnails", "missing.png", mock.Anything).
		Return(nil, fmt.Errorf("object not found"))

	svc := NewService(mockClient, "thumbnails", origin.URL, zap.NewNop())

	_, err := svc.Get(context.Background(), "missing.png")
	assert.Error(t, err)
}

func TestService_Get_MirrorFailureStillServes(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "origin-bytes")
	}))
	t.Cleanup(origin.Close)

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "thumbnails", "31300.png", mock.Anything).
		Return(nil, fmt.Errorf("object not found"))
	mockClient.On("PutObject", mock.Anything, "thumbnails", "31300.png", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, fmt.Errorf("bucket read-only"))

	svc := NewService(mockClient, "thumbnails", origin.URL, zap.NewNop())

	data, err := svc.Get(context.Background(), "31300.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("origin-bytes"), data)
}

func TestService_EnsureBucket(t *testing.T) {
	t.Run("AlreadyExists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "thumbnails").Return(true, nil)

		svc := NewService(mockClient, "thumbnails", "", zap.NewNop())
		assert.NoError(t, svc.EnsureBucket(context.Background()))
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "thumbnails").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "thumbnails", mock.Anything).Return(nil)

		svc := NewService(mockClient, "thumbnails", "", zap.NewNop())
		assert.NoError(t, svc.EnsureBucket(context.Background()))
		mockClient.AssertExpectations(t)
	})
}
