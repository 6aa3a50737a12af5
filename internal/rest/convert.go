package rest

import (
	"github.com/kaedeworks/content-portal/internal/assets"
	"github.com/kaedeworks/content-portal/internal/blog"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

// cardImageOptions constrain listing images; detail pages get the full asset.
var cardImageOptions = assets.Options{Width: 800, Quality: 80}

func NewLocalizedText(t blog.LocalizedText) LocalizedText {
	return LocalizedText{EN: t.EN, JA: t.JA}
}

func NewCategory(c blog.Category) Category {
	category := Category{
		ID:    c.ID,
		Title: NewLocalizedText(c.Title),
		Slug:  c.Slug,
		Color: c.Color,
	}

	if c.Description != nil {
		desc := NewLocalizedText(*c.Description)
		category.Description = &desc
	}

	return category
}

func NewCategoryCount(c blog.CategoryCount) CategoryCount {
	return CategoryCount{
		Category:  NewCategory(c.Category),
		PostCount: LanguageCount{EN: c.PostCount.EN, JA: c.PostCount.JA},
	}
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		ID:    t.ID,
		Title: NewLocalizedText(t.Title),
		Slug:  t.Slug,
	}
}

func NewTagCount(t blog.TagCount) TagCount {
	return TagCount{
		Tag:       NewTag(t.Tag),
		PostCount: LanguageCount{EN: t.PostCount.EN, JA: t.PostCount.JA},
	}
}

func NewAuthor(a blog.Author, images *assets.Builder) Author {
	author := Author{
		ID:        a.ID,
		Name:      a.Name,
		Slug:      a.Slug,
		ImageURL:  images.URLFor(a.ImageURL, assets.Options{Width: 200, Height: 200}),
		Biography: a.Biography,
	}

	if a.Social != nil {
		author.Social = &SocialLinks{
			Twitter:  a.Social.Twitter,
			LinkedIn: a.Social.LinkedIn,
			GitHub:   a.Social.GitHub,
			Website:  a.Social.Website,
		}
	}

	return author
}

func NewFAQ(f blog.FAQ) FAQ {
	return FAQ{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
	}
}

func NewPostCard(c blog.PostCard, images *assets.Builder) PostCard {
	return PostCard{
		ID:           c.ID,
		Language:     string(c.Language),
		Title:        c.Title,
		Slug:         c.Slug,
		Image:        Image{URL: images.URLFor(c.Image.URL, cardImageOptions), Alt: c.Image.Alt},
		Summary:      c.Summary,
		SummaryShort: c.SummaryShort,
		Categories:   Map(c.Categories, NewCategory),
		Tags:         Map(c.Tags, NewTag),
		Authors:      c.AuthorNames,
		PublishedAt:  c.PublishedAt,
		Views:        c.Views,

		EstimatedReadingTime: c.EstimatedReadingTime,
	}
}

func NewPost(p blog.Post, images *assets.Builder) Post {
	post := Post{
		ID:              p.ID,
		Language:        string(p.Language),
		Title:           p.Title,
		Slug:            p.Slug,
		PageTitle:       p.PageTitle,
		Content:         p.Content,
		Categories:      Map(p.Categories, NewCategory),
		Tags:            Map(p.Tags, NewTag),
		FAQs:            Map(p.FAQs, NewFAQ),
		Image:           Image{URL: images.URLFor(p.Image.URL, assets.Options{}), Alt: p.Image.Alt},
		Summary:         p.Summary,
		SummaryShort:    p.SummaryShort,
		Description:     p.Description,
		PublishedAt:     p.PublishedAt,
		ModifiedAt:      p.ModifiedAt,
		Views:           p.Views,
		Keywords:        p.Keywords,
		ContentStrategy: p.ContentStrategy,

		EstimatedReadingTime: p.EstimatedReadingTime,
	}

	post.Authors = make([]Author, len(p.Authors))
	for i := range p.Authors {
		post.Authors[i] = NewAuthor(p.Authors[i], images)
	}

	post.Related = make([]PostCard, len(p.Related))
	for i := range p.Related {
		post.Related[i] = NewPostCard(p.Related[i], images)
	}

	if p.Translation != nil {
		post.Translation = &TranslationRef{
			ID:       p.Translation.ID,
			Slug:     p.Translation.Slug,
			Title:    p.Translation.Title,
			Language: string(p.Translation.Language),
		}
	}

	return post
}

func NewPostPage(p blog.PostPage, images *assets.Builder) PostPage {
	return PostPage{
		Items: Map(p.Items, func(c blog.PostCard) PostCard { return NewPostCard(c, images) }),
		Total: p.Total,
	}
}

func NewPostSlug(s blog.PostSlug) PostSlug {
	return PostSlug{Slug: s.Slug, Language: string(s.Language)}
}
