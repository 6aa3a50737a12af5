package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// PostBySlug retrieves a single post by slug within a language, with the
// translation sibling expanded to its slug/title/language only.
// Returns nil without error when no post matches.
func (r *Repository) PostBySlug(ctx context.Context, slug, language string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Translation", func(q *orm.Query) (*orm.Query, error) {
			return q.Column("postId", "slug", "title", "language"), nil
		}).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."language" = ?`, language).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// Posts retrieves post cards with optional filtering by category and tag,
// sorted by publishedAt DESC, with pagination.
func (r *Repository) Posts(ctx context.Context, language string, categoryID, tagID *int,
	page, pageSize int) ([]Post, error) {

	offset, limit, err := pageWindow(page, pageSize)
	if err != nil {
		return nil, err
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Column(cardColumns...).
		Where(`"t"."language" = ?`, language)

	if categoryID != nil {
		query = query.Where(`? = ANY("t"."categoryIds")`, *categoryID)
	}

	if tagID != nil {
		query = query.Where(`? = ANY("t"."tagIds")`, *tagID)
	}

	err = query.
		OrderExpr(`"t"."publishedAt" DESC`).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PostsCount returns the full matching count irrespective of the pagination
// window.
func (r *Repository) PostsCount(ctx context.Context, language string, categoryID, tagID *int) (int, error) {
	query := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."language" = ?`, language)

	if categoryID != nil {
		query = query.Where(`? = ANY("t"."categoryIds")`, *categoryID)
	}

	if tagID != nil {
		query = query.Where(`? = ANY("t"."tagIds")`, *tagID)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

// searchQuery applies the substring predicate over title, summary, body text
// and keyword membership shared by SearchPosts and SearchPostsCount.
func searchQuery(query *orm.Query, language, term string) *orm.Query {
	pattern := "%" + term + "%"

	return query.
		Where(`"t"."language" = ?`, language).
		WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."summary" ILIKE ?`, pattern).
				WhereOr(`"t"."searchText" ILIKE ?`, pattern).
				WhereOr(`EXISTS (SELECT 1 FROM unnest("t"."keywords") AS kw WHERE kw ILIKE ?)`, pattern)
			return q, nil
		})
}

// SearchPosts matches the term as a substring against title, summary, body
// text and keywords, ranks by a weighted score (title 3, summary 2, body 1)
// with publishedAt DESC as tie-break, and paginates after ranking.
func (r *Repository) SearchPosts(ctx context.Context, language, term string,
	page, pageSize int) ([]Post, error) {

	offset, limit, err := pageWindow(page, pageSize)
	if err != nil {
		return nil, err
	}

	pattern := "%" + term + "%"

	var posts []Post
	err = searchQuery(r.db.ModelContext(ctx, &posts).Column(cardColumns...), language, term).
		OrderExpr(`(CASE WHEN "t"."title" ILIKE ? THEN 3 ELSE 0 END`+
			` + CASE WHEN "t"."summary" ILIKE ? THEN 2 ELSE 0 END`+
			` + CASE WHEN "t"."searchText" ILIKE ? THEN 1 ELSE 0 END) DESC, "t"."publishedAt" DESC`,
			pattern, pattern, pattern).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) SearchPostsCount(ctx context.Context, language, term string) (int, error) {
	count, err := searchQuery(r.db.ModelContext(ctx, (*Post)(nil)), language, term).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get search count: %w", err)
	}

	return count, nil
}

// RelatedPosts retrieves up to limit posts sharing the language and at least
// one category with the given post, excluding the post itself, sorted by
// publishedAt DESC.
func (r *Repository) RelatedPosts(ctx context.Context, postID int, language string,
	categoryIDs []int, limit int) ([]Post, error) {

	if len(categoryIDs) == 0 {
		return []Post{}, nil
	}

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Column(widgetColumns...).
		Where(`"t"."postId" != ?`, postID).
		Where(`"t"."language" = ?`, language).
		Where(`"t"."categoryIds" && ?`, pg.Array(categoryIDs)).
		OrderExpr(`"t"."publishedAt" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query related posts: %w", err)
	}

	return posts, nil
}

// RecentPosts retrieves the latest posts in a language.
func (r *Repository) RecentPosts(ctx context.Context, language string, limit int) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Column(widgetColumns...).
		Where(`"t"."language" = ?`, language).
		OrderExpr(`"t"."publishedAt" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query recent posts: %w", err)
	}

	return posts, nil
}

// PopularPosts retrieves the most viewed posts in a language. Posts that were
// never viewed are excluded.
func (r *Repository) PopularPosts(ctx context.Context, language string, limit int) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Column(widgetColumns...).
		Where(`"t"."language" = ?`, language).
		Where(`"t"."views" > 0`).
		OrderExpr(`"t"."views" DESC, "t"."publishedAt" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query popular posts: %w", err)
	}

	return posts, nil
}

// PostSlugs retrieves every post's (slug, language) pair, unfiltered.
// Used for enumerating static routes.
func (r *Repository) PostSlugs(ctx context.Context) ([]PostSlug, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Column("slug", "language").
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query post slugs: %w", err)
	}

	slugs := make([]PostSlug, len(posts))
	for i := range posts {
		slugs[i] = PostSlug{Slug: posts[i].Slug, Language: posts[i].Language}
	}

	return slugs, nil
}

// IncrementPostViews atomically bumps the view counter of a post, treating an
// unset counter as 0. A single statement so that concurrent calls all land.
// modifiedAt is left untouched: view increments are not content edits.
func (r *Repository) IncrementPostViews(ctx context.Context, postID int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE "posts" SET "views" = COALESCE("views", 0) + 1 WHERE "postId" = ?`, postID)
	if err != nil {
		return fmt.Errorf("failed to increment post views: %w", err)
	}

	if res.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}
