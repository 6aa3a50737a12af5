package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

var ErrPostNotFound = errors.New("post not found")

// Repository is the content store client. It is created once at startup
// around a shared pg connection pool and reused for every query.
type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// cardColumns is the shared listing projection used by every paginated post
// query. It omits the body, faqs and performance notes but keeps searchText
// so cards can estimate reading time without fetching the body.
var cardColumns = []string{
	"postId", "language", "title", "slug", "imageUrl", "imageAlt",
	"summary", "summaryShort", "categoryIds", "tagIds", "authorIds",
	"publishedAt", "views", "searchText",
}

// widgetColumns is the reduced projection for related/recent/popular widgets;
// no search text is fetched, so no reading time is estimated for them.
var widgetColumns = []string{
	"postId", "language", "title", "slug", "imageUrl", "imageAlt",
	"summary", "summaryShort", "categoryIds", "tagIds", "authorIds",
	"publishedAt", "views",
}

// pageWindow translates a 1-based page into an offset/limit pair. Every
// listing query shares this translation.
func pageWindow(page, pageSize int) (offset, limit int, err error) {
	if page < 1 || pageSize < 1 {
		return 0, 0, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	return (page - 1) * pageSize, pageSize, nil
}
