package ogscrape

// Field names referenced outside the catalogue.
const (
	FieldOGTitle        = "ogTitle"
	FieldOGDescription  = "ogDescription"
	FieldOGURL          = "ogUrl"
	FieldOGImage        = "ogImage"
	FieldOGVideo        = "ogVideo"
	FieldOGAudio        = "ogAudio"
	FieldTwitterImage   = "twitterImage"
	FieldTwitterPlayer  = "twitterPlayer"
	FieldFavicon        = "favicon"
	FieldCharset        = "charset"
	FieldCustomMetaTags = "customMetaTags"
	FieldSuccess        = "success"
)

// builtinRules returns a fresh copy of the built-in catalogue in
// evaluation order.
func builtinRules() []FieldRule {
	return []FieldRule{
		// Open Graph basic and optional metadata.
		single(FieldOGTitle, TypeString, og("og:title"), fallback(twitter("twitter:title")), fallback(title())),
		single("ogType", TypeString, og("og:type")),
		single(FieldOGURL, TypeURL, og("og:url"), fallback(twitter("twitter:url")), fallback(link("canonical"))),
		single(FieldOGDescription, TypeString, og("og:description"), fallback(twitter("twitter:description")), fallback(meta("description"))),
		single("ogSiteName", TypeString, og("og:site_name"), fallback(meta("application-name"))),
		single("ogLocale", TypeString, og("og:locale"), fallback(element("html", "lang"))),
		multi("ogLocaleAlternate", TypeString, og("og:locale:alternate")),
		single("ogDeterminer", TypeString, og("og:determiner")),
		single("ogTtl", TypeInteger, og("og:ttl")),
		single("ogUpdatedTime", TypeString, og("og:updated_time")),
		multi("ogSeeAlso", TypeURL, og("og:see_also")),
		single("ogRichAttachment", TypeBoolean, og("og:rich_attachment")),
		single("ogLogo", TypeURL, og("og:logo")),
		single("ogDate", TypeString, og("og:date")),
		single("fbAppId", TypeString, og("fb:app_id")),

		// Open Graph structured media.
		media(FieldOGImage, append(append(ogMedia("og:image", true), fallbacks(twitterImage())...), fallback(image()))...),
		media(FieldOGVideo, ogMedia("og:video", false)...),
		media(FieldOGAudio,
			as(RoleURL, og("og:audio")),
			as(RoleURL, og("og:audio:url")),
			as(RoleURL, og("og:audio:secure_url")),
			as(RoleType, og("og:audio:type")),
		),

		// Open Graph object types.
		multi("articleAuthor", TypeString, og("article:author")),
		single("articlePublishedTime", TypeString, og("article:published_time")),
		single("articleModifiedTime", TypeString, og("article:modified_time")),
		single("articleExpirationTime", TypeString, og("article:expiration_time")),
		single("articleSection", TypeString, og("article:section")),
		multi("articleTag", TypeString, og("article:tag")),
		single("articlePublisher", TypeString, og("article:publisher")),
		multi("bookAuthor", TypeString, og("book:author")),
		single("bookIsbn", TypeString, og("book:isbn")),
		single("bookReleaseDate", TypeString, og("book:release_date")),
		multi("bookTag", TypeString, og("book:tag")),
		single("profileFirstName", TypeString, og("profile:first_name")),
		single("profileLastName", TypeString, og("profile:last_name")),
		single("profileUsername", TypeString, og("profile:username")),
		single("profileGender", TypeString, og("profile:gender")),
		single("musicDuration", TypeInteger, og("music:duration")),
		multi("musicAlbum", TypeURL, og("music:album")),
		single("musicAlbumDisc", TypeInteger, og("music:album:disc")),
		single("musicAlbumTrack", TypeInteger, og("music:album:track")),
		multi("musicMusician", TypeURL, og("music:musician")),
		multi("musicSong", TypeURL, og("music:song")),
		single("musicSongDisc", TypeInteger, og("music:song:disc")),
		single("musicSongTrack", TypeInteger, og("music:song:track")),
		single("musicReleaseDate", TypeString, og("music:release_date")),
		single("musicCreator", TypeURL, og("music:creator")),
		multi("videoActor", TypeURL, og("video:actor")),
		multi("videoActorRole", TypeString, og("video:actor:role")),
		multi("videoDirector", TypeURL, og("video:director")),
		multi("videoWriter", TypeURL, og("video:writer")),
		single("videoDuration", TypeInteger, og("video:duration")),
		single("videoReleaseDate", TypeString, og("video:release_date")),
		multi("videoTag", TypeString, og("video:tag")),
		single("videoSeries", TypeURL, og("video:series")),
		single("ogPriceAmount", TypeString, og("og:price:amount"), og("product:price:amount")),
		single("ogPriceCurrency", TypeString, og("og:price:currency"), og("product:price:currency")),
		single("ogAvailability", TypeString, og("og:availability"), og("product:availability")),

		// Twitter Cards.
		single("twitterCard", TypeString, twitter("twitter:card")),
		single("twitterSite", TypeString, twitter("twitter:site")),
		single("twitterSiteId", TypeString, twitter("twitter:site:id")),
		single("twitterCreator", TypeString, twitter("twitter:creator")),
		single("twitterCreatorId", TypeString, twitter("twitter:creator:id")),
		single("twitterTitle", TypeString, twitter("twitter:title")),
		single("twitterDescription", TypeString, twitter("twitter:description")),
		single("twitterUrl", TypeURL, twitter("twitter:url")),
		media(FieldTwitterImage, twitterImage()...),
		media(FieldTwitterPlayer,
			as(RoleURL, twitter("twitter:player")),
			as(RoleWidth, twitter("twitter:player:width")),
			as(RoleHeight, twitter("twitter:player:height")),
		),
		single("twitterPlayerStream", TypeURL, twitter("twitter:player:stream")),
		single("twitterPlayerStreamContentType", TypeString, twitter("twitter:player:stream:content_type")),
		single("twitterAppNameiPhone", TypeString, twitter("twitter:app:name:iphone")),
		single("twitterAppIdiPhone", TypeString, twitter("twitter:app:id:iphone")),
		single("twitterAppUrliPhone", TypeURL, twitter("twitter:app:url:iphone")),
		single("twitterAppNameiPad", TypeString, twitter("twitter:app:name:ipad")),
		single("twitterAppIdiPad", TypeString, twitter("twitter:app:id:ipad")),
		single("twitterAppUrliPad", TypeURL, twitter("twitter:app:url:ipad")),
		single("twitterAppNameGooglePlay", TypeString, twitter("twitter:app:name:googleplay")),
		single("twitterAppIdGooglePlay", TypeString, twitter("twitter:app:id:googleplay")),
		single("twitterAppUrlGooglePlay", TypeURL, twitter("twitter:app:url:googleplay")),

		// App Links.
		single("alIosUrl", TypeURL, meta("al:ios:url")),
		single("alIosAppStoreId", TypeString, meta("al:ios:app_store_id")),
		single("alIosAppName", TypeString, meta("al:ios:app_name")),
		single("alIphoneUrl", TypeURL, meta("al:iphone:url")),
		single("alIphoneAppStoreId", TypeString, meta("al:iphone:app_store_id")),
		single("alIphoneAppName", TypeString, meta("al:iphone:app_name")),
		single("alIpadUrl", TypeURL, meta("al:ipad:url")),
		single("alIpadAppStoreId", TypeString, meta("al:ipad:app_store_id")),
		single("alIpadAppName", TypeString, meta("al:ipad:app_name")),
		single("alAndroidUrl", TypeURL, meta("al:android:url")),
		single("alAndroidPackage", TypeString, meta("al:android:package")),
		single("alAndroidClass", TypeString, meta("al:android:class")),
		single("alAndroidAppName", TypeString, meta("al:android:app_name")),
		single("alWindowsPhoneUrl", TypeURL, meta("al:windows_phone:url")),
		single("alWindowsPhoneAppId", TypeString, meta("al:windows_phone:app_id")),
		single("alWindowsPhoneAppName", TypeString, meta("al:windows_phone:app_name")),
		single("alWebUrl", TypeURL, meta("al:web:url")),
		single("alWebShouldFallback", TypeBoolean, meta("al:web:should_fallback")),

		// Dublin Core.
		single("dcTitle", TypeString, meta("dc.title")),
		single("dcCreator", TypeString, meta("dc.creator")),
		single("dcDescription", TypeString, meta("dc.description")),
		single("dcDate", TypeString, meta("dc.date")),
		single("dcSubject", TypeString, meta("dc.subject")),
		single("dcPublisher", TypeString, meta("dc.publisher")),
		single("dcLanguage", TypeString, meta("dc.language")),
		single("dcType", TypeString, meta("dc.type")),
		single("dcRights", TypeString, meta("dc.rights")),

		// Plain HTML.
		single("author", TypeString, meta("author")),
		single(FieldFavicon, TypeURL, fallback(link("icon")), fallback(link("apple-touch-icon"))),
		single(FieldCharset, TypeString, element("meta[charset]", "charset"), contentType()),
	}
}

func single(name string, t ValueType, selectors ...Selector) FieldRule {
	return FieldRule{Name: name, Selectors: selectors, Cardinality: Single, ValueType: t}
}

func multi(name string, t ValueType, selectors ...Selector) FieldRule {
	return FieldRule{Name: name, Selectors: selectors, Cardinality: Multi, ValueType: t}
}

func media(name string, selectors ...Selector) FieldRule {
	return FieldRule{Name: name, Selectors: selectors, Cardinality: Multi, ValueType: TypeURL, Grouped: true}
}

// ogMedia returns the selectors of an Open Graph media family. The bare
// property and its :url and :secure_url aliases all open a new record.
func ogMedia(prefix string, withAlt bool) []Selector {
	selectors := []Selector{
		as(RoleURL, og(prefix)),
		as(RoleURL, og(prefix+":url")),
		as(RoleURL, og(prefix+":secure_url")),
		as(RoleWidth, og(prefix+":width")),
		as(RoleHeight, og(prefix+":height")),
		as(RoleType, og(prefix+":type")),
	}
	if withAlt {
		selectors = append(selectors, as(RoleAlt, og(prefix+":alt")))
	}
	return selectors
}

func twitterImage() []Selector {
	return []Selector{
		as(RoleURL, twitter("twitter:image")),
		as(RoleURL, twitter("twitter:image:src")),
		as(RoleWidth, twitter("twitter:image:width")),
		as(RoleHeight, twitter("twitter:image:height")),
		as(RoleAlt, twitter("twitter:image:alt")),
	}
}

func og(key string) Selector {
	return Selector{Kind: SelectMeta, Key: key, Vocabulary: VocabularyOpenGraph}
}

func twitter(key string) Selector {
	return Selector{Kind: SelectMeta, Key: key, Vocabulary: VocabularyTwitter}
}

func meta(key string) Selector {
	return Selector{Kind: SelectMeta, Key: key, Vocabulary: VocabularyHTML}
}

func title() Selector {
	return Selector{Kind: SelectTitle, Key: "title", Vocabulary: VocabularyHTML}
}

func link(rel string) Selector {
	return Selector{Kind: SelectLink, Key: rel, Attr: "href", Vocabulary: VocabularyHTML}
}

func element(css, attr string) Selector {
	return Selector{Kind: SelectElement, Key: css, Attr: attr, Vocabulary: VocabularyHTML}
}

func contentType() Selector {
	return Selector{Kind: SelectContentType, Key: "content-type", Attr: "content", Vocabulary: VocabularyHTML}
}

func image() Selector {
	return Selector{Kind: SelectImage, Key: "img[src]", Attr: "src", Vocabulary: VocabularyHTML, Role: RoleURL}
}

func as(role Role, s Selector) Selector {
	s.Role = role
	return s
}

func fallback(s Selector) Selector {
	s.Fallback = true
	return s
}

func fallbacks(selectors []Selector) []Selector {
	out := make([]Selector, len(selectors))
	for i, s := range selectors {
		out[i] = fallback(s)
	}
	return out
}
