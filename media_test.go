package ogscrape_test

import (
	"testing"

	"github.com/fwojciec/ogscrape"
	"github.com/stretchr/testify/assert"
)

func TestGroupMedia(t *testing.T) {
	t.Parallel()

	t.Run("drops sub-properties before the first url", func(t *testing.T) {
		t.Parallel()

		got := ogscrape.GroupMedia([]ogscrape.RawValue{
			{Role: ogscrape.RoleWidth, Text: "100"},
			{Role: ogscrape.RoleURL, Text: "x.gif"},
		})

		assert.Equal(t, []ogscrape.Media{{URL: "x.gif", Type: "gif"}}, got)
	})

	t.Run("later sub-properties overwrite earlier ones", func(t *testing.T) {
		t.Parallel()

		got := ogscrape.GroupMedia([]ogscrape.RawValue{
			{Role: ogscrape.RoleURL, Text: "movie.mp4"},
			{Role: ogscrape.RoleHeight, Text: "480"},
			{Role: ogscrape.RoleHeight, Text: "720"},
			{Role: ogscrape.RoleType, Text: "video/mp4"},
		})

		assert.Equal(t, []ogscrape.Media{{URL: "movie.mp4", Type: "video/mp4", Height: 720}}, got)
	})

	t.Run("ignores non-numeric dimensions", func(t *testing.T) {
		t.Parallel()

		got := ogscrape.GroupMedia([]ogscrape.RawValue{
			{Role: ogscrape.RoleURL, Text: "a.png"},
			{Role: ogscrape.RoleWidth, Text: "wide"},
		})

		assert.Equal(t, []ogscrape.Media{{URL: "a.png", Type: "png"}}, got)
	})

	t.Run("returns nil for no values", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ogscrape.GroupMedia(nil))
	})
}

func TestTypeFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{url: "test.png", want: "png"},
		{url: "https://example.com/a/b/photo.JPEG", want: "jpeg"},
		{url: "https://example.com/img.webp?width=200#top", want: "webp"},
		{url: "https://example.com/archive.tar.gz", want: "gz"},
		{url: "https://example.com/song.MP3", want: "mp3"},
		{url: "https://example.com/image", want: ""},
		{url: "https://cdn.example.com/image", want: ""},
		{url: "https://example.com/", want: ""},
		{url: "https://example.com", want: ""},
		{url: "https://example.com/a.b/photo", want: ""},
		{url: "//cdn.example.com/pic.gif", want: "gif"},
		{url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ogscrape.TypeFromURL(tt.url))
		})
	}
}

func TestIsImageTypeValid(t *testing.T) {
	t.Parallel()

	assert.True(t, ogscrape.IsImageTypeValid("png"))
	assert.True(t, ogscrape.IsImageTypeValid("JPG"))
	assert.True(t, ogscrape.IsImageTypeValid("avif"))
	assert.False(t, ogscrape.IsImageTypeValid("mp4"))
	assert.False(t, ogscrape.IsImageTypeValid(""))
}
