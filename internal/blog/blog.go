package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaedeworks/content-portal/internal/db"
)

const (
	DefaultPageSize     = 9
	DefaultRecentLimit  = 3
	DefaultPopularLimit = 5

	relatedLimit = 3
)

// ErrInvalidParam marks parameter violations rejected before any store call.
var ErrInvalidParam = errors.New("invalid parameter")

// ErrPostNotFound surfaces a view increment against an unknown post.
var ErrPostNotFound = db.ErrPostNotFound

// Manager is the caller-facing query surface. It resolves named operations
// to store queries and shapes raw rows into typed results.
type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

func checkLanguage(lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: language %q", ErrInvalidParam, lang)
	}
	return nil
}

// normalizePage applies the listing defaults (page 1, pageSize 9) to unset
// values and rejects non-positive ones.
func normalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 || pageSize < 1 {
		return 0, 0, fmt.Errorf("%w: page=%d, pageSize=%d", ErrInvalidParam, page, pageSize)
	}
	return page, pageSize, nil
}

func normalizeLimit(limit, def int) (int, error) {
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		return 0, fmt.Errorf("%w: limit=%d", ErrInvalidParam, limit)
	}
	return limit, nil
}

// loadRefs batch-loads every category, tag, author and faq referenced by the
// posts and indexes them by id.
func (m *Manager) loadRefs(ctx context.Context, posts []db.Post) (*refSet, error) {
	categories, err := m.db.CategoriesByIDs(ctx, collectIDs(posts, func(p *db.Post) []int { return p.CategoryIDs }))
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	tags, err := m.db.TagsByIDs(ctx, collectIDs(posts, func(p *db.Post) []int { return p.TagIDs }))
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}

	authors, err := m.db.AuthorsByIDs(ctx, collectIDs(posts, func(p *db.Post) []int { return p.AuthorIDs }))
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	faqs, err := m.db.FAQsByIDs(ctx, collectIDs(posts, func(p *db.Post) []int { return p.FAQIDs }))
	if err != nil {
		return nil, fmt.Errorf("load faqs: %w", err)
	}

	rs := &refSet{
		categories: make(map[int]Category, len(categories)),
		tags:       make(map[int]Tag, len(tags)),
		authors:    make(map[int]Author, len(authors)),
		faqs:       make(map[int]FAQ, len(faqs)),
	}
	for i := range categories {
		rs.categories[categories[i].ID] = NewCategory(&categories[i])
	}
	for i := range tags {
		rs.tags[tags[i].ID] = NewTag(&tags[i])
	}
	for i := range authors {
		rs.authors[authors[i].ID] = NewAuthor(&authors[i])
	}
	for i := range faqs {
		rs.faqs[faqs[i].ID] = NewFAQ(&faqs[i])
	}

	return rs, nil
}

// cards shapes a batch of card rows, expanding references in one pass.
func (m *Manager) cards(ctx context.Context, posts []db.Post, widget bool) ([]PostCard, error) {
	refs, err := m.loadRefs(ctx, posts)
	if err != nil {
		return nil, err
	}

	out := make([]PostCard, len(posts))
	for i := range posts {
		if widget {
			out[i] = NewWidgetCard(&posts[i], refs)
		} else {
			out[i] = NewPostCard(&posts[i], refs)
		}
	}
	return out, nil
}

// PostBySlug retrieves one post by slug and language with references
// expanded, reading time estimated and up to 3 related posts attached.
// Returns nil when no post matches; absence is not an error.
func (m *Manager) PostBySlug(ctx context.Context, slug string, lang Language) (*Post, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}

	dbPost, err := m.db.PostBySlug(ctx, slug, string(lang))
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	refs, err := m.loadRefs(ctx, []db.Post{*dbPost})
	if err != nil {
		return nil, err
	}
	post := NewPost(dbPost, refs)

	relatedRows, err := m.db.RelatedPosts(ctx, dbPost.ID, dbPost.Language, dbPost.CategoryIDs, relatedLimit)
	if err != nil {
		return nil, fmt.Errorf("db get related posts: %w", err)
	}

	post.Related, err = m.cards(ctx, relatedRows, true)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Posts retrieves one page of cards for a language plus the full count.
func (m *Manager) Posts(ctx context.Context, lang Language, page, pageSize int) (*PostPage, error) {
	return m.listPosts(ctx, lang, nil, nil, page, pageSize)
}

func (m *Manager) listPosts(ctx context.Context, lang Language, categoryID, tagID *int,
	page, pageSize int) (*PostPage, error) {

	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.Posts(ctx, string(lang), categoryID, tagID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	total, err := m.db.PostsCount(ctx, string(lang), categoryID, tagID)
	if err != nil {
		return nil, fmt.Errorf("db get posts count: %w", err)
	}

	items, err := m.cards(ctx, rows, false)
	if err != nil {
		return nil, err
	}

	return &PostPage{Items: items, Total: total}, nil
}

// PostsByCategory resolves the category by slug and lists its posts in a
// language. The category resolves independently of the items: a category
// with zero posts still comes back, and an unknown slug yields a nil
// category with an empty page.
func (m *Manager) PostsByCategory(ctx context.Context, categorySlug string, lang Language,
	page, pageSize int) (*CategoryPage, error) {

	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	dbCategory, err := m.db.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	}
	if dbCategory == nil {
		return &CategoryPage{PostPage: PostPage{Items: []PostCard{}}}, nil
	}

	pageResult, err := m.listPosts(ctx, lang, &dbCategory.ID, nil, page, pageSize)
	if err != nil {
		return nil, err
	}

	category := NewCategory(dbCategory)
	return &CategoryPage{PostPage: *pageResult, Category: &category}, nil
}

// PostsByTag is PostsByCategory with tag membership.
func (m *Manager) PostsByTag(ctx context.Context, tagSlug string, lang Language,
	page, pageSize int) (*TagPage, error) {

	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	dbTag, err := m.db.TagBySlug(ctx, tagSlug)
	if err != nil {
		return nil, fmt.Errorf("db get tag by slug: %w", err)
	}
	if dbTag == nil {
		return &TagPage{PostPage: PostPage{Items: []PostCard{}}}, nil
	}

	pageResult, err := m.listPosts(ctx, lang, nil, &dbTag.ID, page, pageSize)
	if err != nil {
		return nil, err
	}

	tag := NewTag(dbTag)
	return &TagPage{PostPage: *pageResult, Tag: &tag}, nil
}

// Search matches the term as a substring over title, summary, body text and
// keywords, ranked title > summary > body with newest-first tie-break.
func (m *Manager) Search(ctx context.Context, term string, lang Language,
	page, pageSize int) (*PostPage, error) {

	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.SearchPosts(ctx, string(lang), term, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db search posts: %w", err)
	}

	total, err := m.db.SearchPostsCount(ctx, string(lang), term)
	if err != nil {
		return nil, fmt.Errorf("db search posts count: %w", err)
	}

	items, err := m.cards(ctx, rows, false)
	if err != nil {
		return nil, err
	}

	return &PostPage{Items: items, Total: total}, nil
}

// Categories lists every category with per-language post counts, ordered by
// English title.
func (m *Manager) Categories(ctx context.Context) ([]CategoryCount, error) {
	rows, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	out := make([]CategoryCount, len(rows))
	for i := range rows {
		out[i] = NewCategoryCount(&rows[i])
	}
	return out, nil
}

func (m *Manager) Tags(ctx context.Context) ([]TagCount, error) {
	rows, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	out := make([]TagCount, len(rows))
	for i := range rows {
		out[i] = NewTagCount(&rows[i])
	}
	return out, nil
}

// RecentPosts lists the newest posts in a language; limit defaults to 3.
func (m *Manager) RecentPosts(ctx context.Context, lang Language, limit int) ([]PostCard, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	limit, err := normalizeLimit(limit, DefaultRecentLimit)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.RecentPosts(ctx, string(lang), limit)
	if err != nil {
		return nil, fmt.Errorf("db get recent posts: %w", err)
	}

	return m.cards(ctx, rows, true)
}

// PopularPosts lists the most viewed posts in a language; limit defaults
// to 5. Never-viewed posts don't appear.
func (m *Manager) PopularPosts(ctx context.Context, lang Language, limit int) ([]PostCard, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	limit, err := normalizeLimit(limit, DefaultPopularLimit)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.PopularPosts(ctx, string(lang), limit)
	if err != nil {
		return nil, fmt.Errorf("db get popular posts: %w", err)
	}

	return m.cards(ctx, rows, true)
}

// PostSlugs enumerates every post's (slug, language) pair for static routes.
func (m *Manager) PostSlugs(ctx context.Context) ([]PostSlug, error) {
	rows, err := m.db.PostSlugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get post slugs: %w", err)
	}

	out := make([]PostSlug, len(rows))
	for i := range rows {
		out[i] = PostSlug{Slug: rows[i].Slug, Language: Language(rows[i].Language)}
	}
	return out, nil
}

// IncrementViews bumps a post's view counter by one. The increment is a
// single atomic store command; concurrent calls all land.
func (m *Manager) IncrementViews(ctx context.Context, postID int) error {
	if postID < 1 {
		return fmt.Errorf("%w: postID=%d", ErrInvalidParam, postID)
	}

	if err := m.db.IncrementPostViews(ctx, postID); err != nil {
		if errors.Is(err, db.ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("db increment post views: %w", err)
	}

	return nil
}
