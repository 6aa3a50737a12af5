package blog

import (
	"encoding/json"
	"errors"
	"time"
)

// Language is the closed set of content languages.
type Language string

const (
	LanguageEN Language = "en"
	LanguageJA Language = "ja"
)

func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageJA
}

// PortableText is a rich structured-content tree as stored. Rendering it is
// the caller's concern; this layer only extracts plain text from it.
type PortableText json.RawMessage

func (pt PortableText) MarshalJSON() ([]byte, error) {
	if pt == nil {
		return []byte("null"), nil
	}
	return pt, nil
}

func (pt *PortableText) UnmarshalJSON(data []byte) error {
	if pt == nil {
		return errors.New("blog.PortableText: UnmarshalJSON on nil pointer")
	}
	*pt = append((*pt)[0:0], data...)
	return nil
}

// LocalizedText is a bilingual string pair; both languages are required on
// taxonomy titles, so no absence marker here.
type LocalizedText struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

// LocalizedRichText is bilingual structured content (author biographies).
type LocalizedRichText struct {
	EN PortableText `json:"en,omitempty"`
	JA PortableText `json:"ja,omitempty"`
}

// LanguageCount is a per-language post count for a taxonomy entry.
type LanguageCount struct {
	EN int `json:"en"`
	JA int `json:"ja"`
}

type Category struct {
	ID          int
	Title       LocalizedText
	Slug        string
	Description *LocalizedText
	Color       *string
}

// CategoryCount augments a category with per-language post counts for the
// taxonomy listing. Zero-count entries stay in the listing.
type CategoryCount struct {
	Category
	PostCount LanguageCount
}

type Tag struct {
	ID    int
	Title LocalizedText
	Slug  string
}

type TagCount struct {
	Tag
	PostCount LanguageCount
}

type SocialLinks struct {
	Twitter  *string
	LinkedIn *string
	GitHub   *string
	Website  *string
}

type Author struct {
	ID        int
	Name      string
	Slug      string
	ImageURL  string
	Biography *LocalizedRichText
	Social    *SocialLinks
}

type FAQ struct {
	ID       int
	Question string
	Answer   string
}

// TranslationRef points at the counterpart post in the other language.
// Only the fields needed to link there, never the sibling's body.
type TranslationRef struct {
	ID       int
	Slug     string
	Title    string
	Language Language
}

type Image struct {
	URL string
	Alt *string
}

// Post is the full detail shape returned by PostBySlug.
type Post struct {
	ID               int
	Language         Language
	Translation      *TranslationRef
	Title            string
	Slug             string
	PageTitle        *string
	Content          PortableText
	Categories       []Category
	Tags             []Tag
	FAQs             []FAQ
	Image            Image
	Summary          string
	SummaryShort     string
	Description      string
	Authors          []Author
	PublishedAt      time.Time
	ModifiedAt       *time.Time
	Views            int
	Keywords         []string
	ContentStrategy  *string
	PerformanceNotes *string

	// Derived, computed at query time.
	EstimatedReadingTime int
	Related              []PostCard
}

// PostCard is the reduced listing shape: no body, no faqs, no notes, author
// names only. EstimatedReadingTime is nil on widget projections
// (related/recent/popular) which don't carry it.
type PostCard struct {
	ID                   int
	Language             Language
	Title                string
	Slug                 string
	Image                Image
	Summary              string
	SummaryShort         string
	Categories           []Category
	Tags                 []Tag
	AuthorNames          []string
	PublishedAt          time.Time
	Views                int
	EstimatedReadingTime *int
}

// PostPage is a pagination window plus the full matching count.
type PostPage struct {
	Items []PostCard
	Total int
}

// CategoryPage carries the matched category independently of the items:
// a category may exist with zero posts in a language, and a missing
// category leaves Category nil with an empty page.
type CategoryPage struct {
	PostPage
	Category *Category
}

type TagPage struct {
	PostPage
	Tag *Tag
}

type PostSlug struct {
	Slug     string
	Language Language
}
