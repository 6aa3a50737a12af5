package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const (
	postCountEnExpr = `(SELECT count(*) FROM "posts" p WHERE p."language" = 'en' AND "t"."%s" = ANY(p."%s")) AS post_count_en`
	postCountJaExpr = `(SELECT count(*) FROM "posts" p WHERE p."language" = 'ja' AND "t"."%s" = ANY(p."%s")) AS post_count_ja`
)

// CategoryBySlug resolves a category independently of any post listing.
// Returns nil without error when no category matches.
func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) TagBySlug(ctx context.Context, slug string) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"t"."slug" = ?`, slug).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by slug: %w", err)
	}

	return tag, nil
}

// Categories retrieves every category ordered by English title, each
// augmented with per-language post counts. Zero-count entries are included;
// hiding them is the caller's call.
func (r *Repository) Categories(ctx context.Context) ([]CategoryWithCounts, error) {
	var categories []CategoryWithCounts
	err := r.db.ModelContext(ctx, &categories).
		ColumnExpr(`"t".*`).
		ColumnExpr(fmt.Sprintf(postCountEnExpr, "categoryId", "categoryIds")).
		ColumnExpr(fmt.Sprintf(postCountJaExpr, "categoryId", "categoryIds")).
		OrderExpr(`"t"."titleEn" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Tags(ctx context.Context) ([]TagWithCounts, error) {
	var tags []TagWithCounts
	err := r.db.ModelContext(ctx, &tags).
		ColumnExpr(`"t".*`).
		ColumnExpr(fmt.Sprintf(postCountEnExpr, "tagId", "tagIds")).
		ColumnExpr(fmt.Sprintf(postCountJaExpr, "tagId", "tagIds")).
		OrderExpr(`"t"."titleEn" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// Batch loaders backing reference expansion on post projections.

func (r *Repository) CategoriesByIDs(ctx context.Context, ids []int) ([]Category, error) {
	if len(ids) == 0 {
		return []Category{}, nil
	}

	categories := []Category{}
	err := r.db.ModelContext(ctx, &categories).
		Where(`"t"."categoryId" IN (?)`, pg.In(ids)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories by ids: %w", err)
	}

	return categories, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, ids []int) ([]Tag, error) {
	if len(ids) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."tagId" IN (?)`, pg.In(ids)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

func (r *Repository) AuthorsByIDs(ctx context.Context, ids []int) ([]Author, error) {
	if len(ids) == 0 {
		return []Author{}, nil
	}

	authors := []Author{}
	err := r.db.ModelContext(ctx, &authors).
		Where(`"t"."authorId" IN (?)`, pg.In(ids)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query authors by ids: %w", err)
	}

	return authors, nil
}

func (r *Repository) FAQsByIDs(ctx context.Context, ids []int) ([]FAQ, error) {
	if len(ids) == 0 {
		return []FAQ{}, nil
	}

	faqs := []FAQ{}
	err := r.db.ModelContext(ctx, &faqs).
		Where(`"t"."faqId" IN (?)`, pg.In(ids)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query faqs by ids: %w", err)
	}

	return faqs, nil
}
