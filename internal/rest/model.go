package rest

import (
	"time"

	"github.com/kaedeworks/content-portal/internal/blog"
)

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

type Author struct {
	ID        int                     `json:"authorId"`
	Name      string                  `json:"name"`
	Slug      string                  `json:"slug"`
	ImageURL  string                  `json:"imageUrl"`
	Biography *blog.LocalizedRichText `json:"biography,omitempty"`
	Social    *SocialLinks            `json:"social,omitempty"`
}

type FAQ struct {
	ID       int    `json:"faqId"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TranslationRef struct {
	ID       int    `json:"postId"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Language string `json:"language"`
}

type Image struct {
	URL string  `json:"url"`
	Alt *string `json:"alt,omitempty"`
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
	Image                Image             `json:"image"`
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

type PostCard struct {
	ID                   int        `json:"postId"`
	Language             string     `json:"language"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Image                Image      `json:"image"`
	Summary              string     `json:"summary"`
	SummaryShort         string     `json:"summaryShort"`
	Categories           []Category `json:"categories"`
	Tags                 []Tag      `json:"tags"`
	Authors              []string   `json:"authors"`
	PublishedAt          time.Time  `json:"publishedAt"`
	Views                int        `json:"views"`
	EstimatedReadingTime *int       `json:"estimatedReadingTime,omitempty"`
}

type PostPage struct {
	Items []PostCard `json:"items"`
	Total int        `json:"total"`
}

type CategoryPage struct {
	PostPage
	Category *Category `json:"category"`
}

type TagPage struct {
	PostPage
	Tag *Tag `json:"tag"`
}

type PostSlug struct {
	Slug     string `json:"slug"`
	Language string `json:"language"`
}
