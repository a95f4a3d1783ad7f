package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	mockSvc "carebridge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDestinationFor(t *testing.T) {
	tests := []struct {
		name        string
		kind        entity.ActionKind
		media       *entity.MediaAttachment
		folder      string
		ext         string
		contentType string
	}{
		{"voice cheer", entity.ActionKindVoiceCheer, &entity.MediaAttachment{URI: "file:///rec/a.caf"}, "voice", "m4a", "audio/m4a"},
		{"photo jpg", entity.ActionKindPhoto, &entity.MediaAttachment{URI: "file:///img/IMG_1.JPG"}, "photos", "jpg", "image/jpeg"},
		{"photo png with query", entity.ActionKindPhoto, &entity.MediaAttachment{URI: "https://cdn.example.com/a/b.png?token=x#frag"}, "photos", "png", "image/png"},
		{"photo blob uri", entity.ActionKindPhoto, &entity.MediaAttachment{URI: "blob:https://app.example.com/1d2c"}, "photos", "jpg", "image/jpeg"},
		{"photo without suffix", entity.ActionKindPhoto, &entity.MediaAttachment{URI: "content://media/external/123"}, "photos", "jpg", "image/jpeg"},
		{"video mov", entity.ActionKindVideo, &entity.MediaAttachment{URI: "file:///v/clip.MOV"}, "videos", "mov", "video/mov"},
		{"video data uri", entity.ActionKindVideo, &entity.MediaAttachment{URI: "data:video/mp4;base64,AAAA"}, "videos", "mp4", "video/mp4"},
		{"message with photo", entity.ActionKindMessage, &entity.MediaAttachment{URI: "file:///p.webp", Hint: entity.ActionKindPhoto}, "photos", "webp", "image/webp"},
		{"message without hint", entity.ActionKindMessage, &entity.MediaAttachment{URI: "file:///p.webp"}, "voice", "m4a", "audio/m4a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := destinationFor(tt.kind, tt.media)
			assert.Equal(t, tt.folder, dest.Folder)
			assert.Equal(t, tt.ext, dest.Ext)
			assert.Equal(t, tt.contentType, dest.ContentType)
		})
	}
}

func TestMediaUploader_VoiceCheerFromNativeFile(t *testing.T) {
	root := t.TempDir()
	recording := []byte("fake-m4a-bytes")
	require.NoError(t, os.WriteFile(filepath.Join(root, "cheer.m4a"), recording, 0o600))

	storage := mockSvc.NewMockMediaStorage(t)
	metrics := mockSvc.NewMockCoordinatorMetrics(t)
	now := time.UnixMilli(1760000000123)
	userID := uuid.New()

	uploader := NewMediaUploader(
		MediaSourceSelector{Runtime: constants.MediaRuntimeNative, LocalRoot: root, MaxBytes: 1 << 20},
		storage,
		metrics,
		func() time.Time { return now },
		newTestLogger(),
	)

	key := fmt.Sprintf("voice/%s-1760000000123.m4a", userID)
	storage.EXPECT().Put(context.Background(), key, recording, "audio/m4a").Return(nil).Once()
	storage.EXPECT().PublicURL(key).Return("https://media.example.com/" + key).Once()
	metrics.EXPECT().MediaUploaded(entity.ActionKindVoiceCheer, true).Return().Once()

	mediaURL, err := uploader.Upload(context.Background(), userID, entity.ActionKindVoiceCheer, &entity.MediaAttachment{
		URI: "file://" + filepath.Join(root, "cheer.m4a"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/"+key, mediaURL)
}

func TestMediaUploader_StoreFailure(t *testing.T) {
	storage := mockSvc.NewMockMediaStorage(t)
	metrics := mockSvc.NewMockCoordinatorMetrics(t)
	uploader := NewMediaUploader(MediaSourceSelector{}, storage, metrics, nil, newTestLogger())

	payload := base64.StdEncoding.EncodeToString([]byte("\xff\xd8\xff\xe0jpeg"))
	storage.EXPECT().Put(context.Background(), mock.AnythingOfType("string"), []byte("\xff\xd8\xff\xe0jpeg"), "image/jpeg").Return(errors.New("bucket unavailable")).Once()
	metrics.EXPECT().MediaUploaded(entity.ActionKindPhoto, false).Return().Once()

	_, err := uploader.Upload(context.Background(), uuid.New(), entity.ActionKindPhoto, &entity.MediaAttachment{
		URI:    "file:///DCIM/IMG_2.jpg",
		Base64: payload,
	})
	require.Error(t, err)

	var uploadErr *domainerrors.MediaUploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "store", uploadErr.Step())
}

func TestMediaUploader_MissingMedia(t *testing.T) {
	uploader := NewMediaUploader(MediaSourceSelector{}, mockSvc.NewMockMediaStorage(t), mockSvc.NewMockCoordinatorMetrics(t), nil, newTestLogger())

	_, err := uploader.Upload(context.Background(), uuid.New(), entity.ActionKindPhoto, nil)

	var uploadErr *domainerrors.MediaUploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "read", uploadErr.Step())
}

func TestMediaSourceSelector_Priority(t *testing.T) {
	native := MediaSourceSelector{Runtime: constants.MediaRuntimeNative, LocalRoot: "/data"}
	browser := MediaSourceSelector{Runtime: constants.MediaRuntimeBrowser}

	assert.IsType(t, FetchedBlobSource{}, browser.Select(entity.ActionKindVoiceCheer, &entity.MediaAttachment{URI: "blob:x", Base64: "AA=="}))
	assert.IsType(t, Base64Source{}, native.Select(entity.ActionKindVoiceCheer, &entity.MediaAttachment{URI: "file:///a.m4a", Base64: "AA=="}))
	assert.IsType(t, NativeFileSource{}, native.Select(entity.ActionKindVoiceCheer, &entity.MediaAttachment{URI: "file:///a.m4a"}))
	assert.IsType(t, FetchedBlobSource{}, native.Select(entity.ActionKindPhoto, &entity.MediaAttachment{URI: "https://a/b.jpg"}))
}

func TestNativeFileSource_RejectsEscapes(t *testing.T) {
	root := t.TempDir()

	_, _, err := NativeFileSource{Root: root, URI: "../../etc/passwd"}.ToBytes(context.Background())
	assert.Error(t, err)

	_, _, err = NativeFileSource{Root: root, URI: "file:///etc/passwd"}.ToBytes(context.Background())
	assert.Error(t, err)

	_, _, err = NativeFileSource{URI: "file:///etc/passwd"}.ToBytes(context.Background())
	assert.Error(t, err)
}

func TestNativeFileSource_EnforcesMaxBytes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.m4a"), make([]byte, 64), 0o600))

	_, _, err := NativeFileSource{Root: root, URI: "big.m4a", MaxBytes: 16}.ToBytes(context.Background())
	assert.ErrorContains(t, err, "exceeds")
}

func TestMediaSourceSelector_EnforcesMaxBytesOnInlinePayloads(t *testing.T) {
	big := make([]byte, 1000)
	encoded := base64.StdEncoding.EncodeToString(big)
	native := MediaSourceSelector{Runtime: constants.MediaRuntimeNative, MaxBytes: 8}
	browser := MediaSourceSelector{Runtime: constants.MediaRuntimeBrowser, MaxBytes: 8}

	tests := []struct {
		name     string
		selector MediaSourceSelector
		media    *entity.MediaAttachment
	}{
		{"base64 payload", native, &entity.MediaAttachment{Base64: encoded}},
		{"base64 with data uri prefix", native, &entity.MediaAttachment{Base64: "data:image/png;base64," + encoded}},
		{"wrapped base64 payload", native, &entity.MediaAttachment{Base64: encoded[:76] + "\n" + encoded[76:]}},
		{"base64 data uri", browser, &entity.MediaAttachment{URI: "data:image/png;base64," + encoded}},
		{"percent-encoded data uri", browser, &entity.MediaAttachment{URI: "data:text/plain," + string(make([]byte, 9))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _, err := tt.selector.Select(entity.ActionKindPhoto, tt.media).ToBytes(context.Background())
			assert.ErrorContains(t, err, "exceeds")
			assert.Nil(t, data)
		})
	}

	t.Run("payload at the limit", func(t *testing.T) {
		exact := base64.StdEncoding.EncodeToString([]byte("12345678"))

		data, _, err := native.Select(entity.ActionKindPhoto, &entity.MediaAttachment{Base64: exact}).ToBytes(context.Background())
		require.NoError(t, err)
		assert.Len(t, data, 8)

		data, _, err = browser.Select(entity.ActionKindPhoto, &entity.MediaAttachment{URI: "data:image/png;base64," + exact}).ToBytes(context.Background())
		require.NoError(t, err)
		assert.Len(t, data, 8)
	})
}

func TestBase64Source_StripsDataURIPrefix(t *testing.T) {
	data, _, err := Base64Source{Encoded: "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hi"))}.ToBytes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), data)

	_, _, err = Base64Source{Encoded: "%%%"}.ToBytes(context.Background())
	assert.Error(t, err)
}

func TestFetchedBlobSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)

			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)
	allowed := []string{serverURL.Hostname()}

	t.Run("allowed host", func(t *testing.T) {
		data, contentType, err := FetchedBlobSource{Client: server.Client(), URI: server.URL + "/a.png", AllowedHosts: allowed}.ToBytes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("error status", func(t *testing.T) {
		_, _, err := FetchedBlobSource{Client: server.Client(), URI: server.URL + "/missing.jpg", AllowedHosts: allowed}.ToBytes(context.Background())
		assert.ErrorContains(t, err, "404")
	})

	t.Run("host not allowed", func(t *testing.T) {
		_, _, err := FetchedBlobSource{Client: server.Client(), URI: server.URL + "/a.png"}.ToBytes(context.Background())
		assert.ErrorContains(t, err, "not allowed")
	})

	t.Run("data uri", func(t *testing.T) {
		data, contentType, err := FetchedBlobSource{URI: "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("gif"))}.ToBytes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("gif"), data)
		assert.Equal(t, "image/gif", contentType)
	})

	t.Run("blob uri", func(t *testing.T) {
		_, _, err := FetchedBlobSource{URI: "blob:https://app.example.com/abc"}.ToBytes(context.Background())
		assert.Error(t, err)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		_, _, err := FetchedBlobSource{URI: "ftp://example.com/a.png", AllowedHosts: []string{"example.com"}}.ToBytes(context.Background())
		assert.ErrorContains(t, err, "unsupported")
	})
}
