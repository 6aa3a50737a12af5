package rpc

import (
	"time"

	"github.com/kaedeworks/content-portal/internal/blog"
)

type ListFilter struct {
	//lang content language, en or ja
	Lang string `json:"lang"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
	//pageSize=9 items per page
	PageSize int `json:"pageSize,omitempty"`
}

type SearchFilter struct {
	//q search term
	Q string `json:"q"`
	//lang content language, en or ja
	Lang string `json:"lang"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
	//pageSize=9 items per page
	PageSize int `json:"pageSize,omitempty"`
}

type LocalizedText struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

type LanguageCount struct {
	EN int `json:"en"`
	JA int `json:"ja"`
}

type Category struct {
	ID          int            `json:"categoryId"`
	Title       LocalizedText  `json:"title"`
	Slug        string         `json:"slug"`
	Description *LocalizedText `json:"description,omitempty"`
	Color       *string        `json:"color,omitempty"`
}

type CategoryCount struct {
	Category
	PostCount LanguageCount `json:"postCount"`
}

type Tag struct {
	ID    int           `json:"tagId"`
	Title LocalizedText `json:"title"`
	Slug  string        `json:"slug"`
}

type TagCount struct {
	Tag
	PostCount LanguageCount `json:"postCount"`
}

type SocialLinks struct {
	Twitter  *string `json:"twitter,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// Author keeps the store's raw image reference, same as PostCard.
type Author struct {
	ID        int                     `json:"authorId"`
	Name      string                  `json:"name"`
	Slug      string                  `json:"slug"`
	ImageRef  string                  `json:"imageRef"`
	Biography *blog.LocalizedRichText `json:"biography,omitempty"`
	Social    *SocialLinks            `json:"social,omitempty"`
}

type TranslationRef struct {
	ID       int    `json:"postId"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Language string `json:"language"`
}

type FAQ struct {
	ID       int    `json:"faqId"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PostCard keeps the store's raw image reference; display URLs are the
// consumer's concern on this surface.
type PostCard struct {
	ID                   int        `json:"postId"`
	Language             string     `json:"language"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	ImageRef             string     `json:"imageRef"`
	ImageAlt             *string    `json:"imageAlt,omitempty"`
	Summary              string     `json:"summary"`
	SummaryShort         string     `json:"summaryShort"`
	Categories           []Category `json:"categories"`
	Tags                 []Tag      `json:"tags"`
	Authors              []string   `json:"authors"`
	PublishedAt          time.Time  `json:"publishedAt"`
	Views                int        `json:"views"`
	EstimatedReadingTime *int       `json:"estimatedReadingTime,omitempty"`
}

type Post struct {
	ID                   int               `json:"postId"`
	Language             string            `json:"language"`
	Translation          *TranslationRef   `json:"translation,omitempty"`
	Title                string            `json:"title"`
	Slug                 string            `json:"slug"`
	PageTitle            *string           `json:"pageTitle,omitempty"`
	Content              blog.PortableText `json:"content"`
	Categories           []Category        `json:"categories"`
	Tags                 []Tag             `json:"tags"`
	FAQs                 []FAQ             `json:"faqs"`
	ImageRef             string            `json:"imageRef"`
	ImageAlt             *string           `json:"imageAlt,omitempty"`
	Summary              string            `json:"summary"`
	SummaryShort         string            `json:"summaryShort"`
	Description          string            `json:"description"`
	Authors              []Author          `json:"authors"`
	PublishedAt          time.Time         `json:"publishedAt"`
	ModifiedAt           *time.Time        `json:"modifiedAt,omitempty"`
	Views                int               `json:"views"`
	Keywords             []string          `json:"keywords,omitempty"`
	ContentStrategy      *string           `json:"contentStrategy,omitempty"`
	EstimatedReadingTime int               `json:"estimatedReadingTime"`
	Related              []PostCard        `json:"relatedPosts"`
}

type PostPage struct {
	Items []PostCard `json:"items"`
	Total int        `json:"total"`
}

type PostSlug struct {
	Slug     string `json:"slug"`
	Language string `json:"language"`
}
