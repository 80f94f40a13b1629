package models

// SeoSetting holds per-page meta tags, keyed by page path (one row per path).
type SeoSetting struct {
	ID              int    `json:"id"`
	PagePath        string `json:"pagePath"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OgImage         string `json:"ogImage"`
	Keywords        string `json:"keywords"`
}
