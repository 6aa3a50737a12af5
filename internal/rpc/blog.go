package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/kaedeworks/content-portal/internal/blog"
)

//go:generate zenrpc

// BlogService provides RPC methods over the content query catalog.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

func rpcError(err error) error {
	if errors.Is(err, blog.ErrInvalidParam) {
		return zenrpc.NewStringError(400, err.Error())
	}
	return err
}

// List retrieves one page of post cards for a language plus the full count,
// sorted by publishedAt DESC.
//
//zenrpc:filter language and pagination
//zenrpc:return page of post cards with total
//zenrpc:400 invalid parameters
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, filter ListFilter) (*PostPage, error) {
	page, err := s.manager.Posts(ctx, blog.Language(filter.Lang), filter.Page, filter.PageSize)
	if err != nil {
		return nil, rpcError(err)
	}

	out := NewPostPage(*page)
	return &out, nil
}

// BySlug retrieves a single post by slug and language with references
// expanded and related posts attached.
//
//zenrpc:slug post slug, unique within a language
//zenrpc:lang content language, en or ja
//zenrpc:return post detail
//zenrpc:400 invalid parameters
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, slug, lang string) (*Post, error) {
	post, err := s.manager.PostBySlug(ctx, slug, blog.Language(lang))
	if err != nil {
		return nil, rpcError(err)
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	out := NewPost(*post)
	return &out, nil
}

// Search matches the term against title, summary, body text and keywords,
// ranked title > summary > body, paginated after ranking.
//
//zenrpc:filter search term, language and pagination
//zenrpc:return page of post cards with total
//zenrpc:400 invalid parameters
//zenrpc:500 internal server error
func (s *BlogService) Search(ctx context.Context, filter SearchFilter) (*PostPage, error) {
	page, err := s.manager.Search(ctx, filter.Q, blog.Language(filter.Lang), filter.Page, filter.PageSize)
	if err != nil {
		return nil, rpcError(err)
	}

	out := NewPostPage(*page)
	return &out, nil
}

// Categories retrieves all categories ordered by English title, with
// per-language post counts.
//
//zenrpc:return list of categories with post counts
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) ([]CategoryCount, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return Map(categories, NewCategoryCount), nil
}

// Tags retrieves all tags ordered by English title, with per-language post
// counts.
//
//zenrpc:return list of tags with post counts
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]TagCount, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return Map(tags, NewTagCount), nil
}

// Recent retrieves the newest posts in a language.
//
//zenrpc:lang content language, en or ja
//zenrpc:limit=3 max posts
//zenrpc:return list of post cards
//zenrpc:400 invalid parameters
//zenrpc:500 internal server error
func (s *BlogService) Recent(ctx context.Context, lang string, limit int) ([]PostCard, error) {
	cards, err := s.manager.RecentPosts(ctx, blog.Language(lang), limit)
	if err != nil {
		return nil, rpcError(err)
	}

	return Map(cards, NewPostCard), nil
}

// Popular retrieves the most viewed posts in a language; never-viewed posts
// are excluded.
//
//zenrpc:lang content language, en or ja
//zenrpc:limit=5 max posts
//zenrpc:return list of post cards
//zenrpc:400 invalid parameters
//zenrpc:500 internal server error
func (s *BlogService) Popular(ctx context.Context, lang string, limit int) ([]PostCard, error) {
	cards, err := s.manager.PopularPosts(ctx, blog.Language(lang), limit)
	if err != nil {
		return nil, rpcError(err)
	}

	return Map(cards, NewPostCard), nil
}

// Slugs enumerates every post's (slug, language) pair for static route
// generation.
//
//zenrpc:return list of slug/language pairs
//zenrpc:500 internal server error
func (s *BlogService) Slugs(ctx context.Context) ([]PostSlug, error) {
	slugs, err := s.manager.PostSlugs(ctx)
	if err != nil {
		return nil, err
	}

	return Map(slugs, NewPostSlug), nil
}

// IncrementViews atomically bumps a post's view counter by one.
//
//zenrpc:id post numeric ID
//zenrpc:400 invalid parameters
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) IncrementViews(ctx context.Context, id int) error {
	err := s.manager.IncrementViews(ctx, id)
	if errors.Is(err, blog.ErrPostNotFound) {
		return zenrpc.NewStringError(404, "post not found")
	}

	return rpcError(err)
}
