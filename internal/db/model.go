package db

import (
	"encoding/json"
	"time"
)

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID            int             `pg:"postId,pk"`
	Language      string          `pg:"language,use_zero"`
	TranslationID *int            `pg:"translationId"`
	Title         string          `pg:"title,use_zero"`
	Slug          string          `pg:"slug,use_zero"`
	PageTitle     *string         `pg:"pageTitle"`
	Content       json.RawMessage `pg:"content"`
	// SearchText is the plain-text rendering of Content, maintained by the
	// authoring pipeline. Full-text search and card reading-time estimates
	// read it instead of re-rendering the JSONB body per row.
	SearchText       string     `pg:"searchText,use_zero"`
	CategoryIDs      []int      `pg:"categoryIds,array,use_zero"`
	TagIDs           []int      `pg:"tagIds,array"`
	FAQIDs           []int      `pg:"faqIds,array"`
	AuthorIDs        []int      `pg:"authorIds,array,use_zero"`
	ImageURL         string     `pg:"imageUrl,use_zero"`
	ImageAlt         *string    `pg:"imageAlt"`
	Summary          string     `pg:"summary,use_zero"`
	SummaryShort     string     `pg:"summaryShort,use_zero"`
	Description      string     `pg:"description,use_zero"`
	PublishedAt      time.Time  `pg:"publishedAt,use_zero"`
	ModifiedAt       *time.Time `pg:"modifiedAt"`
	Views            *int       `pg:"views"`
	Keywords         []string   `pg:"keywords,array"`
	ContentStrategy  *string    `pg:"contentStrategy"`
	PerformanceNotes *string    `pg:"performanceNotes"`

	Translation *Post `pg:"fk:translationId,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID            int     `pg:"categoryId,pk"`
	TitleEn       string  `pg:"titleEn,use_zero"`
	TitleJa       string  `pg:"titleJa,use_zero"`
	Slug          string  `pg:"slug,use_zero"`
	DescriptionEn *string `pg:"descriptionEn"`
	DescriptionJa *string `pg:"descriptionJa"`
	Color         *string `pg:"color"`
}

// CategoryWithCounts is the Categories() projection: a category row augmented
// with per-language post counts computed by the store at query time.
type CategoryWithCounts struct {
	Category

	PostCountEn int `pg:"post_count_en"`
	PostCountJa int `pg:"post_count_ja"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID      int    `pg:"tagId,pk"`
	TitleEn string `pg:"titleEn,use_zero"`
	TitleJa string `pg:"titleJa,use_zero"`
	Slug    string `pg:"slug,use_zero"`
}

type TagWithCounts struct {
	Tag

	PostCountEn int `pg:"post_count_en"`
	PostCountJa int `pg:"post_count_ja"`
}

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID       int             `pg:"authorId,pk"`
	Name     string          `pg:"name,use_zero"`
	Slug     string          `pg:"slug,use_zero"`
	ImageURL string          `pg:"imageUrl,use_zero"`
	BioEn    json.RawMessage `pg:"bioEn"`
	BioJa    json.RawMessage `pg:"bioJa"`
	Twitter  *string         `pg:"twitter"`
	LinkedIn *string         `pg:"linkedin"`
	GitHub   *string         `pg:"github"`
	Website  *string         `pg:"website"`
}

type FAQ struct {
	tableName struct{} `pg:"faqs,alias:t,discard_unknown_columns"`

	ID       int    `pg:"faqId,pk"`
	Question string `pg:"question,use_zero"`
	Answer   string `pg:"answer,use_zero"`
}

// PostSlug is the route-enumeration projection: slug and language only.
type PostSlug struct {
	Slug     string
	Language string
}
