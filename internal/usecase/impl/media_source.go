package impl

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/entity"
	"carebridge/internal/util"

	"github.com/pkg/errors"
)

// MediaSource turns one input representation into raw bytes.
// The returned content type is what the source itself reports or sniffs.
type MediaSource interface {
	ToBytes(ctx context.Context) ([]byte, string, error)
}

// Base64Source decodes a payload the client already encoded.
type Base64Source struct {
	Encoded  string
	MaxBytes int64
}

func (s Base64Source) ToBytes(_ context.Context) ([]byte, string, error) {
	encoded := s.Encoded
	// Some clients send the data URI prefix along with the payload
	if _, payload, ok := strings.Cut(encoded, ";base64,"); ok && strings.HasPrefix(encoded, "data:") {
		encoded = payload
	}

	data, err := decodeBase64Limited(strings.TrimSpace(encoded), s.MaxBytes)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to decode base64 payload")
	}

	return data, http.DetectContentType(data), nil
}

// NativeFileSource reads a file recorded on the native runtime from a confined root.
type NativeFileSource struct {
	Root     string
	URI      string
	MaxBytes int64
}

func (s NativeFileSource) ToBytes(_ context.Context) ([]byte, string, error) {
	if s.Root == "" {
		return nil, "", errors.New("native file sources are disabled")
	}

	name := strings.TrimPrefix(s.URI, "file://")
	if filepath.IsAbs(name) {
		absRoot, err := filepath.Abs(s.Root)
		if err != nil {
			return nil, "", errors.WithStack(err)
		}
		// os.Root rejects a relative path that escapes the root
		if name, err = filepath.Rel(absRoot, name); err != nil {
			return nil, "", errors.Wrap(err, "media file is outside the media root")
		}
	}

	root, err := os.OpenRoot(s.Root)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open media root")
	}
	defer root.Close()

	file, err := root.Open(name)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open %s", name)
	}
	defer file.Close()

	data, err := readLimited(file, s.MaxBytes)
	if err != nil {
		return nil, "", err
	}

	return data, http.DetectContentType(data), nil
}

// FetchedBlobSource resolves data: URIs in place and fetches remote URIs.
type FetchedBlobSource struct {
	Client       *http.Client
	URI          string
	AllowedHosts []string
	MaxBytes     int64
}

func (s FetchedBlobSource) ToBytes(ctx context.Context) ([]byte, string, error) {
	switch {
	case strings.HasPrefix(s.URI, "data:"):
		return decodeDataURI(s.URI, s.MaxBytes)
	case strings.HasPrefix(s.URI, "blob:"):
		return nil, "", errors.New("blob URIs only resolve inside the browser that created them, send a data URI instead")
	}

	target, err := url.Parse(s.URI)
	if err != nil {
		return nil, "", errors.Wrap(err, "invalid media URI")
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, "", errors.Errorf("unsupported media URI scheme %q", target.Scheme)
	}
	if !slices.Contains(s.AllowedHosts, target.Hostname()) {
		return nil, "", errors.Errorf("fetching media from %q is not allowed", target.Hostname())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to fetch media")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", errors.Errorf("media fetch returned status %d", resp.StatusCode)
	}

	data, err := readLimited(resp.Body, s.MaxBytes)
	if err != nil {
		return nil, "", err
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func decodeDataURI(uri string, maxBytes int64) ([]byte, string, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, "", errors.New("malformed data URI")
	}

	mediaType, isBase64 := strings.CutSuffix(header, ";base64")
	if isBase64 {
		data, err := decodeBase64Limited(payload, maxBytes)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to decode data URI")
		}

		return data, mediaType, nil
	}

	// Unescaping never grows the payload, so the raw length bounds the result
	if maxBytes > 0 && int64(len(payload)) > maxBytes*3 {
		return nil, "", exceedsLimit(maxBytes)
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to unescape data URI")
	}
	if maxBytes > 0 && int64(len(decoded)) > maxBytes {
		return nil, "", exceedsLimit(maxBytes)
	}

	return []byte(decoded), mediaType, nil
}

// decodeBase64Limited rejects oversized payloads before allocating the decoded
// buffer. Wrapped payloads skip the early check since line breaks inflate the length.
func decodeBase64Limited(encoded string, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 && !strings.ContainsAny(encoded, "\r\n") &&
		int64(base64.StdEncoding.DecodedLen(len(encoded))) > maxBytes+2 {
		return nil, exceedsLimit(maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, exceedsLimit(maxBytes)
	}

	return data, nil
}

func exceedsLimit(maxBytes int64) error {
	return errors.Errorf("media exceeds %s", util.FormatBytes(maxBytes))
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		data, err := io.ReadAll(r)

		return data, errors.WithStack(err)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if int64(len(data)) > maxBytes {
		return nil, exceedsLimit(maxBytes)
	}

	return data, nil
}

// MediaSourceSelector picks the source strategy once per upload.
type MediaSourceSelector struct {
	Runtime      string
	LocalRoot    string
	Client       *http.Client
	AllowedHosts []string
	MaxBytes     int64
}

// Select applies the runtime and kind rules in priority order: browser
// runtimes always fetch, then a pre-encoded payload wins, then voice cheers
// are read from local storage, and everything else is fetched.
func (s MediaSourceSelector) Select(kind entity.ActionKind, media *entity.MediaAttachment) MediaSource {
	fetched := FetchedBlobSource{
		Client:       s.Client,
		URI:          media.URI,
		AllowedHosts: s.AllowedHosts,
		MaxBytes:     s.MaxBytes,
	}

	switch {
	case s.Runtime == constants.MediaRuntimeBrowser:
		return fetched
	case media.Base64 != "":
		return Base64Source{Encoded: media.Base64, MaxBytes: s.MaxBytes}
	case kind == entity.ActionKindVoiceCheer:
		return NativeFileSource{Root: s.LocalRoot, URI: media.URI, MaxBytes: s.MaxBytes}
	default:
		return fetched
	}
}
