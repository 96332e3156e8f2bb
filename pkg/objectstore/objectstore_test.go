package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const bucket = "AINTHINAI"

func TestPublicURL(t *testing.T) {
	url := PublicURL("https://proj.supabase.co", bucket, "tour-123-abc")
	assert.Equal(t, "https://proj.supabase.co/storage/v1/object/public/AINTHINAI/tour-123-abc", url)
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "public url",
			url:  "https://proj.supabase.co/storage/v1/object/public/AINTHINAI/tour-123-abc",
			want: "tour-123-abc",
		},
		{
			name: "key with prefix path",
			url:  "https://proj.supabase.co/storage/v1/object/public/AINTHINAI/category-9-x.png",
			want: "category-9-x.png",
		},
		{name: "foreign bucket", url: "https://proj.supabase.co/storage/v1/object/public/OTHER/key", want: ""},
		{name: "empty url", url: "", want: ""},
		{name: "not a url", url: "garbage", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromURL(bucket, tt.url))
		})
	}
}

func TestKeysFromURLs(t *testing.T) {
	urls := []string{
		"https://proj.supabase.co/storage/v1/object/public/AINTHINAI/a",
		"",
		"https://proj.supabase.co/storage/v1/object/public/OTHER/b",
		"https://proj.supabase.co/storage/v1/object/public/AINTHINAI/c",
	}

	assert.Equal(t, []string{"a", "c"}, KeysFromURLs(bucket, urls))
}

func TestPublicURLRoundTrip(t *testing.T) {
	url := PublicURL("https://proj.supabase.co", bucket, "feature-42-zz")
	assert.Equal(t, "feature-42-zz", KeyFromURL(bucket, url))
}
