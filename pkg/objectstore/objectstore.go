// Package objectstore uploads image blobs to a Supabase storage bucket and
// exposes them through public URLs. Keys are generated, never caller-chosen;
// deletion works backwards from the stored public URL.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ainthinai/booking-api/config"
	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// Store is the object-storage gateway used by the catalog services.
type Store interface {
	Upload(ctx context.Context, prefix string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, urls ...string) error
}

type SupabaseStore struct {
	client  *storage_go.Client
	baseURL string
	bucket  string
}

func NewSupabaseStore(cfg *config.StorageConfig) *SupabaseStore {
	baseURL := strings.TrimSuffix(cfg.URL, "/")
	client := storage_go.NewClient(baseURL+"/storage/v1", cfg.ServiceKey, nil)
	return &SupabaseStore{
		client:  client,
		baseURL: baseURL,
		bucket:  cfg.Bucket,
	}
}

// Upload stores data under a generated "<prefix>-<millis>-<uuid>" key and
// returns the public URL.
func (s *SupabaseStore) Upload(_ context.Context, prefix string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString())

	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return PublicURL(s.baseURL, s.bucket, key), nil
}

// Delete removes the blobs behind the given public URLs. URLs that do not
// belong to this bucket (or are empty) are skipped, matching the original
// catalog cleanup behavior where stale references are not errors.
func (s *SupabaseStore) Delete(_ context.Context, urls ...string) error {
	keys := KeysFromURLs(s.bucket, urls)
	if len(keys) == 0 {
		return nil
	}

	if _, err := s.client.RemoveFile(s.bucket, keys); err != nil {
		return fmt.Errorf("failed to remove objects: %w", err)
	}
	return nil
}

// PublicURL assembles the public object URL the way Supabase serves it.
func PublicURL(baseURL, bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", baseURL, bucket, key)
}

// KeyFromURL extracts the object key from a public URL, or "" when the URL
// does not reference the bucket.
func KeyFromURL(bucket, url string) string {
	marker := "/" + bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	return url[idx+len(marker):]
}

// KeysFromURLs maps URLs to keys, dropping blanks.
func KeysFromURLs(bucket string, urls []string) []string {
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		if key := KeyFromURL(bucket, u); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
