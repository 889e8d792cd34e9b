package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"technogroop/internal/models"
	"technogroop/internal/storage"
)

// maxImageBytes caps a single fetched image.
const maxImageBytes = 20 << 20

// LocalMediaPrefix is the URL prefix under which the local media directory
// is served when no object storage is configured.
const LocalMediaPrefix = "/media"

// Importer turns seed image sources into media records. With object
// storage configured, images are copied into the bucket; without it,
// remote URLs are referenced directly and local files are served from the
// media directory.
type Importer struct {
	storage    *storage.Client
	mediaDir   string
	httpClient *http.Client
}

// NewImporter creates an Importer. storage may be nil.
func NewImporter(storageClient *storage.Client, mediaDir string) *Importer {
	return &Importer{
		storage:    storageClient,
		mediaDir:   mediaDir,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// contentTypeFor guesses an image type from the file extension.
func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(name))); strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "image/jpeg"
}

// localPath resolves a "/..." source inside the media directory.
func (im *Importer) localPath(src string) (string, error) {
	if im.mediaDir == "" {
		return "", fmt.Errorf("local image %s: media directory not configured", src)
	}
	clean := path.Clean("/" + src)
	return filepath.Join(im.mediaDir, filepath.FromSlash(clean)), nil
}

// Import resolves src into a media record. The record is not persisted.
// uploaded reports whether a new object was written to storage.
func (im *Importer) Import(ctx context.Context, src, filename, alt string) (m models.Media, uploaded bool, err error) {
	m = models.Media{
		Filename:    filename,
		ContentType: contentTypeFor(filename),
		AltText:     alt,
	}

	if im.storage == nil {
		if isRemote(src) {
			m.URL = src
			return m, false, nil
		}
		p, err := im.localPath(src)
		if err != nil {
			return m, false, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return m, false, fmt.Errorf("local image %s: %w", src, err)
		}
		m.SizeBytes = info.Size()
		m.URL = LocalMediaPrefix + path.Clean("/"+src)
		return m, false, nil
	}

	data, contentType, err := im.read(ctx, src)
	if err != nil {
		return m, false, err
	}
	if contentType != "" {
		m.ContentType = contentType
	}

	key := storage.MediaKey(uuid.New(), filename)
	if err := im.storage.Upload(ctx, key, m.ContentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return m, false, err
	}
	m.Bucket = im.storage.Bucket()
	m.S3Key = key
	m.URL = im.storage.FileURL(key)
	m.SizeBytes = int64(len(data))
	return m, true, nil
}

// read loads src from the network or the media directory.
func (im *Importer) read(ctx context.Context, src string) ([]byte, string, error) {
	if !isRemote(src) {
		p, err := im.localPath(src)
		if err != nil {
			return nil, "", err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, "", fmt.Errorf("read local image %s: %w", src, err)
		}
		return data, "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build image request: %w", err)
	}
	resp, err := im.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image %s: status %d", src, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image %s: %w", src, err)
	}
	if len(data) > maxImageBytes {
		return nil, "", fmt.Errorf("image %s exceeds %d bytes", src, maxImageBytes)
	}

	ct := resp.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err == nil && strings.HasPrefix(mt, "image/") {
		return data, mt, nil
	}
	return data, "", nil
}

// Discard deletes the stored objects behind items. A failed delete does
// not stop the sweep.
func (im *Importer) Discard(ctx context.Context, items []models.Media) error {
	if im.storage == nil {
		return nil
	}
	var errs []error
	for _, m := range items {
		if !m.Stored() || m.Bucket != im.storage.Bucket() {
			continue
		}
		if err := im.storage.Delete(ctx, m.S3Key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
