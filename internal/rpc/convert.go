package rpc

import "github.com/kaedeworks/content-portal/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c blog.Category) Category {
	category := Category{
		ID:    c.ID,
		Title: LocalizedText{EN: c.Title.EN, JA: c.Title.JA},
		Slug:  c.Slug,
		Color: c.Color,
	}

	if c.Description != nil {
		category.Description = &LocalizedText{EN: c.Description.EN, JA: c.Description.JA}
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
		Title: LocalizedText{EN: t.Title.EN, JA: t.Title.JA},
		Slug:  t.Slug,
	}
}

func NewTagCount(t blog.TagCount) TagCount {
	return TagCount{
		Tag:       NewTag(t.Tag),
		PostCount: LanguageCount{EN: t.PostCount.EN, JA: t.PostCount.JA},
	}
}

func NewFAQ(f blog.FAQ) FAQ {
	return FAQ{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
	}
}

func NewAuthor(a blog.Author) Author {
	author := Author{
		ID:        a.ID,
		Name:      a.Name,
		Slug:      a.Slug,
		ImageRef:  a.ImageURL,
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

func NewPostCard(c blog.PostCard) PostCard {
	return PostCard{
		ID:           c.ID,
		Language:     string(c.Language),
		Title:        c.Title,
		Slug:         c.Slug,
		ImageRef:     c.Image.URL,
		ImageAlt:     c.Image.Alt,
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

func NewPost(p blog.Post) Post {
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
		ImageRef:        p.Image.URL,
		ImageAlt:        p.Image.Alt,
		Summary:         p.Summary,
		SummaryShort:    p.SummaryShort,
		Description:     p.Description,
		Authors:         Map(p.Authors, NewAuthor),
		PublishedAt:     p.PublishedAt,
		ModifiedAt:      p.ModifiedAt,
		Views:           p.Views,
		Keywords:        p.Keywords,
		ContentStrategy: p.ContentStrategy,

		EstimatedReadingTime: p.EstimatedReadingTime,
		Related:              Map(p.Related, NewPostCard),
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

func NewPostPage(p blog.PostPage) PostPage {
	return PostPage{
		Items: Map(p.Items, NewPostCard),
		Total: p.Total,
	}
}

func NewPostSlug(s blog.PostSlug) PostSlug {
	return PostSlug{Slug: s.Slug, Language: string(s.Language)}
}
