package ogscrape_test

import (
	"testing"

	"github.com/fwojciec/ogscrape"
	"github.com/fwojciec/ogscrape/goquery"
	"github.com/fwojciec/ogscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, html string) ogscrape.Document {
	t.Helper()
	doc, err := goquery.NewDocument(html)
	require.NoError(t, err)
	return doc
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("returns empty result for document without metadata", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head></head><body><p>plain</p></body></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, 0, result.Len())
	})

	t.Run("prefers open graph over fallbacks regardless of order", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<title>html title</title>
			<meta name="twitter:title" content="twitter title">
			<meta property="og:title" content="og title">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		title, _ := result.String(ogscrape.FieldOGTitle)
		assert.Equal(t, "og title", title)
	})

	t.Run("prefers twitter over title for og title", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<title>html title</title>
			<meta name="twitter:title" content="twitter title">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		title, _ := result.String(ogscrape.FieldOGTitle)
		assert.Equal(t, "twitter title", title)
		twitterTitle, _ := result.String("twitterTitle")
		assert.Equal(t, "twitter title", twitterTitle)
	})

	t.Run("keeps first single value", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:type" content="article">
			<meta property="og:type" content="website">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		ogType, _ := result.String("ogType")
		assert.Equal(t, "article", ogType)
	})

	t.Run("matches property and name case-insensitively", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="OG:Title" content="loud">
			<meta name=" Description " content="described">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		title, _ := result.String(ogscrape.FieldOGTitle)
		assert.Equal(t, "loud", title)
		description, _ := result.String(ogscrape.FieldOGDescription)
		assert.Equal(t, "described", description)
	})

	t.Run("skips blank content and uses next source", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:title" content="   ">
			<title>fallback title</title>
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		title, _ := result.String(ogscrape.FieldOGTitle)
		assert.Equal(t, "fallback title", title)
	})

	t.Run("groups image sub-properties in document order", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:image:width" content="10">
			<meta property="og:image" content="a.JPG">
			<meta property="og:image:width" content="300">
			<meta property="og:image:height" content="abc">
			<meta property="og:image:type" content="image/jpeg">
			<meta property="og:image" content="b.png">
			<meta property="og:image:alt" content="B">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		assert.Equal(t, []ogscrape.Media{
			{URL: "a.JPG", Type: "image/jpeg", Width: 300},
			{URL: "b.png", Type: "png", Alt: "B"},
		}, result.Media(ogscrape.FieldOGImage))
	})

	t.Run("opens a record for every url alias", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:image" content="http://x/a.png">
			<meta property="og:image:url" content="http://x/a.png">
			<meta property="og:image:secure_url" content="https://x/a.png">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		assert.Len(t, result.Media(ogscrape.FieldOGImage), 3)
	})

	t.Run("falls back to twitter image", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta name="twitter:image" content="card.webp">
			<meta name="twitter:image:alt" content="card">
		</head><body><img src="inline.png"></body></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		want := []ogscrape.Media{{URL: "card.webp", Type: "webp", Alt: "card"}}
		assert.Equal(t, want, result.Media(ogscrape.FieldOGImage))
		assert.Equal(t, want, result.Media(ogscrape.FieldTwitterImage))
	})

	t.Run("falls back when open graph has only sub-properties", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:image:width" content="300">
			<meta name="twitter:image" content="t.png">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		want := []ogscrape.Media{{URL: "t.png", Type: "png"}}
		assert.Equal(t, want, result.Media(ogscrape.FieldOGImage))
		assert.Equal(t, want, result.Media(ogscrape.FieldTwitterImage))
	})

	t.Run("falls back to img elements past orphan sub-properties", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:image:alt" content="lost">
		</head><body><img src="inline.png"></body></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		assert.Equal(t, []ogscrape.Media{{URL: "inline.png", Type: "png"}}, result.Media(ogscrape.FieldOGImage))
	})

	t.Run("falls back to img elements with image types", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body>
			<img src="photo.jpg">
			<img src="tracker.php">
			<img src="logo.SVG?v=2">
		</body></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		assert.Equal(t, []ogscrape.Media{
			{URL: "photo.jpg", Type: "jpg"},
			{URL: "logo.SVG?v=2", Type: "svg"},
		}, result.Media(ogscrape.FieldOGImage))
	})

	t.Run("ignores img elements when open graph images exist", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:image" content="og.png">
		</head><body><img src="inline.png"></body></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		assert.Equal(t, []ogscrape.Media{{URL: "og.png", Type: "png"}}, result.Media(ogscrape.FieldOGImage))
	})

	t.Run("keeps native twitter fields with only open graph info", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html lang="en"><head>
			<meta name="twitter:image" content="card.png">
			<meta name="twitter:card" content="summary">
			<link rel="icon" href="/favicon.ico">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{OnlyGetOpenGraphInfo: true})

		require.NoError(t, err)
		assert.False(t, result.Has(ogscrape.FieldOGImage))
		assert.False(t, result.Has("ogLocale"))
		assert.False(t, result.Has(ogscrape.FieldFavicon))
		assert.Equal(t, []ogscrape.Media{{URL: "card.png", Type: "png"}}, result.Media(ogscrape.FieldTwitterImage))
		card, _ := result.String("twitterCard")
		assert.Equal(t, "summary", card)
	})

	t.Run("coerces typed fields", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:ttl" content="3600">
			<meta property="og:rich_attachment" content="TRUE">
			<meta property="music:duration" content="long">
			<meta name="al:web:should_fallback" content="yes">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		ttl, ok := result.Int("ogTtl")
		assert.True(t, ok)
		assert.Equal(t, 3600, ttl)
		rich, ok := result.Bool("ogRichAttachment")
		assert.True(t, ok)
		assert.True(t, rich)
		assert.False(t, result.Has("musicDuration"))
		assert.False(t, result.Has("alWebShouldFallback"))
	})

	t.Run("collects multi-valued text fields", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="article:tag" content="go">
			<meta property="article:tag" content="">
			<meta property="article:tag" content="html">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		assert.Equal(t, []string{"go", "html"}, result.Strings("articleTag"))
	})

	t.Run("reads html fallbacks", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html lang="de"><head>
			<link rel="canonical" href="https://example.com/page">
			<link rel="shortcut icon" href="/favicon.ico">
			<meta name="application-name" content="Example">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{})

		require.NoError(t, err)
		url, _ := result.String(ogscrape.FieldOGURL)
		assert.Equal(t, "https://example.com/page", url)
		favicon, _ := result.String(ogscrape.FieldFavicon)
		assert.Equal(t, "/favicon.ico", favicon)
		locale, _ := result.String("ogLocale")
		assert.Equal(t, "de", locale)
		siteName, _ := result.String("ogSiteName")
		assert.Equal(t, "Example", siteName)
	})

	t.Run("reads charset from content type", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta http-equiv="Content-Type" content="text/html; charset=windows-1251">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{Charset: "utf-8"})

		require.NoError(t, err)
		charset, _ := result.String(ogscrape.FieldCharset)
		assert.Equal(t, "windows-1251", charset)
	})

	t.Run("uses charset hint when document declares none", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head><title>x</title></head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{Charset: "ISO-8859-1"})

		require.NoError(t, err)
		charset, _ := result.String(ogscrape.FieldCharset)
		assert.Equal(t, "ISO-8859-1", charset)
	})

	t.Run("collects multiple custom tags", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta name="hashtag" content="one">
			<meta name="hashtag" content="two">
			<meta name="rating" content="5">
			<meta name="rating" content="4">
		</head></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{
			CustomMetaTags: []ogscrape.CustomMetaTag{
				{Property: "hashtag", FieldName: "hashtags", Multiple: true},
				{Property: "rating", FieldName: "rating"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"hashtags": []string{"one", "two"},
			"rating":   "5",
		}, result.CustomMetaTags())
	})

	t.Run("rejects invalid custom tags", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html></html>`)

		result, err := ogscrape.Extract(doc, ogscrape.Options{
			CustomMetaTags: []ogscrape.CustomMetaTag{{FieldName: "x"}},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ogscrape.ErrInvalidCustomMetaTags)
	})

	t.Run("returns equal results for repeated calls", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:title" content="t">
			<meta property="og:image" content="a.png">
			<meta property="og:image:width" content="1">
			<meta name="x" content="y">
		</head></html>`)
		opts := ogscrape.Options{CustomMetaTags: []ogscrape.CustomMetaTag{{Property: "x", FieldName: "x"}}}

		first, err := ogscrape.Extract(doc, opts)
		require.NoError(t, err)
		second, err := ogscrape.Extract(doc, opts)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestExtractField(t *testing.T) {
	t.Parallel()

	t.Run("skips fallback tier once values are collected", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:image" content="a.png">
			<meta name="twitter:image" content="b.png">
		</head></html>`)
		rule, ok := ogscrape.NewRuleTable(false).Lookup(ogscrape.FieldOGImage)
		require.True(t, ok)

		values := ogscrape.ExtractField(doc, rule)

		assert.Equal(t, []ogscrape.RawValue{{Role: ogscrape.RoleURL, Text: "a.png"}}, values)
	})

	t.Run("reads fallback tier when collected values have no url", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta property="og:image:width" content="300">
			<meta name="twitter:image" content="b.png">
		</head></html>`)
		rule, ok := ogscrape.NewRuleTable(false).Lookup(ogscrape.FieldOGImage)
		require.True(t, ok)

		values := ogscrape.ExtractField(doc, rule)

		require.NotEmpty(t, values)
		assert.Equal(t, ogscrape.RawValue{Role: ogscrape.RoleWidth, Text: "300"}, values[0])
		assert.Contains(t, values, ogscrape.RawValue{Role: ogscrape.RoleURL, Text: "b.png"})
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html></html>`)
		rule, ok := ogscrape.NewRuleTable(false).Lookup(ogscrape.FieldOGTitle)
		require.True(t, ok)

		assert.Nil(t, ogscrape.ExtractField(doc, rule))
	})

	t.Run("concatenates primary selectors by priority", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><head>
			<meta name="b" content="2">
			<meta name="a" content="1">
		</head></html>`)
		rule := ogscrape.FieldRule{
			Name: "letters",
			Selectors: []ogscrape.Selector{
				{Kind: ogscrape.SelectMeta, Key: "a", Vocabulary: ogscrape.VocabularyHTML},
				{Kind: ogscrape.SelectElement, Key: "meta[name=b]", Attr: "content", Vocabulary: ogscrape.VocabularyHTML},
			},
			Cardinality: ogscrape.Multi,
		}

		values := ogscrape.ExtractField(doc, rule)

		assert.Equal(t, []ogscrape.RawValue{{Text: "1"}, {Text: "2"}}, values)
	})
}

func TestExtract_MetaKeys(t *testing.T) {
	t.Parallel()

	metas := []ogscrape.Node{
		mock.Node{Attrs: map[string]string{"property": "og:title"}},
		mock.Node{Attrs: map[string]string{"property": " ", "name": "og:title", "content": "from name"}},
		mock.Node{Attrs: map[string]string{"content": "orphan"}},
		mock.Node{Attrs: map[string]string{"property": "og:type", "content": "website"}},
	}
	doc := &mock.Document{
		FindFn: func(selector string) []ogscrape.Node {
			if selector == "meta" {
				return metas
			}
			return nil
		},
	}

	result, err := ogscrape.Extract(doc, ogscrape.Options{})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"ogTitle": "from name",
		"ogType":  "website",
	}, result.Fields)
}
