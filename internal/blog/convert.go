package blog

import (
	"github.com/kaedeworks/content-portal/internal/db"
)

func NewCategory(c *db.Category) Category {
	category := Category{
		ID:    c.ID,
		Title: LocalizedText{EN: c.TitleEn, JA: c.TitleJa},
		Slug:  c.Slug,
		Color: c.Color,
	}

	if c.DescriptionEn != nil || c.DescriptionJa != nil {
		desc := LocalizedText{}
		if c.DescriptionEn != nil {
			desc.EN = *c.DescriptionEn
		}
		if c.DescriptionJa != nil {
			desc.JA = *c.DescriptionJa
		}
		category.Description = &desc
	}

	return category
}

func NewCategoryCount(c *db.CategoryWithCounts) CategoryCount {
	return CategoryCount{
		Category:  NewCategory(&c.Category),
		PostCount: LanguageCount{EN: c.PostCountEn, JA: c.PostCountJa},
	}
}

func NewTag(t *db.Tag) Tag {
	return Tag{
		ID:    t.ID,
		Title: LocalizedText{EN: t.TitleEn, JA: t.TitleJa},
		Slug:  t.Slug,
	}
}

func NewTagCount(t *db.TagWithCounts) TagCount {
	return TagCount{
		Tag:       NewTag(&t.Tag),
		PostCount: LanguageCount{EN: t.PostCountEn, JA: t.PostCountJa},
	}
}

func NewAuthor(a *db.Author) Author {
	author := Author{
		ID:       a.ID,
		Name:     a.Name,
		Slug:     a.Slug,
		ImageURL: a.ImageURL,
	}

	if len(a.BioEn) > 0 || len(a.BioJa) > 0 {
		author.Biography = &LocalizedRichText{
			EN: PortableText(a.BioEn),
			JA: PortableText(a.BioJa),
		}
	}

	if a.Twitter != nil || a.LinkedIn != nil || a.GitHub != nil || a.Website != nil {
		author.Social = &SocialLinks{
			Twitter:  a.Twitter,
			LinkedIn: a.LinkedIn,
			GitHub:   a.GitHub,
			Website:  a.Website,
		}
	}

	return author
}

func NewFAQ(f *db.FAQ) FAQ {
	return FAQ{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
	}
}

func newImage(p *db.Post) Image {
	return Image{
		URL: p.ImageURL,
		Alt: p.ImageAlt,
	}
}

// viewCount maps an unset store counter to 0.
func viewCount(views *int) int {
	if views == nil {
		return 0
	}
	return *views
}

// newCard builds the shared listing shape without a reading-time estimate.
func newCard(p *db.Post, refs *refSet) PostCard {
	return PostCard{
		ID:           p.ID,
		Language:     Language(p.Language),
		Title:        p.Title,
		Slug:         p.Slug,
		Image:        newImage(p),
		Summary:      p.Summary,
		SummaryShort: p.SummaryShort,
		Categories:   refs.categoriesFor(p.CategoryIDs),
		Tags:         refs.tagsFor(p.TagIDs),
		AuthorNames:  refs.authorNamesFor(p.AuthorIDs),
		PublishedAt:  p.PublishedAt,
		Views:        viewCount(p.Views),
	}
}

// NewPostCard builds a listing card with the reading time estimated from the
// store's plain-text rendering of the body.
func NewPostCard(p *db.Post, refs *refSet) PostCard {
	card := newCard(p, refs)
	rt := EstimatedReadingTime(p.SearchText)
	card.EstimatedReadingTime = &rt
	return card
}

// NewWidgetCard builds the reduced related/recent/popular card; those
// projections don't carry a reading time.
func NewWidgetCard(p *db.Post, refs *refSet) PostCard {
	return newCard(p, refs)
}

// NewPost builds the full detail shape. Related posts are attached by the
// manager after the related query runs.
func NewPost(p *db.Post, refs *refSet) Post {
	post := Post{
		ID:               p.ID,
		Language:         Language(p.Language),
		Title:            p.Title,
		Slug:             p.Slug,
		PageTitle:        p.PageTitle,
		Content:          PortableText(p.Content),
		Categories:       refs.categoriesFor(p.CategoryIDs),
		Tags:             refs.tagsFor(p.TagIDs),
		FAQs:             refs.faqsFor(p.FAQIDs),
		Image:            newImage(p),
		Summary:          p.Summary,
		SummaryShort:     p.SummaryShort,
		Description:      p.Description,
		Authors:          refs.authorsFor(p.AuthorIDs),
		PublishedAt:      p.PublishedAt,
		ModifiedAt:       p.ModifiedAt,
		Views:            viewCount(p.Views),
		Keywords:         p.Keywords,
		ContentStrategy:  p.ContentStrategy,
		PerformanceNotes: p.PerformanceNotes,
	}

	if p.Translation != nil {
		post.Translation = &TranslationRef{
			ID:       p.Translation.ID,
			Slug:     p.Translation.Slug,
			Title:    p.Translation.Title,
			Language: Language(p.Translation.Language),
		}
	}

	post.EstimatedReadingTime = EstimatedReadingTime(post.Content.PlainText())

	return post
}
