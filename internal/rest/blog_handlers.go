package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/kaedeworks/content-portal/internal/assets"
	"github.com/kaedeworks/content-portal/internal/blog"
)

// ListParams is bound from query values: lang, page, page_size.
type ListParams struct {
	Lang     string
	Page     int
	PageSize int
}

// SearchParams adds the q search term.
type SearchParams struct {
	Lang     string
	Page     int
	PageSize int
	Q        string
}

// WidgetParams is bound for the recent/popular widgets: lang, limit.
type WidgetParams struct {
	Lang  string
	Limit int
}

type BlogHandler struct {
	uc     *blog.Manager
	images *assets.Builder
	log    *slog.Logger
}

func NewBlogHandler(uc *blog.Manager, images *assets.Builder, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		images: images,
		log:    log,
	}
}

// RegisterRoutes registers all routes for the handler
func (h *BlogHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	api := e.Group("/api/v1")
	api.GET("/posts", h.Posts)
	api.GET("/posts/recent", h.RecentPosts)
	api.GET("/posts/popular", h.PopularPosts)
	api.GET("/posts/slugs", h.PostSlugs)
	api.GET("/posts/:slug", h.PostBySlug)
	api.POST("/posts/:id/views", h.IncrementViews)
	api.GET("/categories", h.Categories)
	api.GET("/categories/:slug/posts", h.PostsByCategory)
	api.GET("/tags", h.Tags)
	api.GET("/tags/:slug/posts", h.PostsByTag)
	api.GET("/search", h.Search)

	e.GET("/health", h.Health)

	return e
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// fail maps layer errors to status codes: parameter violations to 400,
// missing posts to 404, everything else to 500.
func (h *BlogHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrInvalidParam):
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	case errors.Is(err, blog.ErrPostNotFound):
		return h.handleError(c, err, http.StatusNotFound, "post not found")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// Posts handles GET /api/v1/posts
// @Summary List posts
// @Description One page of post cards for a language plus the full matching count, newest first
// @Tags posts
// @Produce json
// @Param lang query string true "Language (en or ja)"
// @Param page query int false "Page number, 1-based (default: 1)"
// @Param page_size query int false "Page size (default: 9)"
// @Success 200 {object} rest.PostPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *BlogHandler) Posts(c echo.Context) error {
	var params ListParams
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &params); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.uc.Posts(c.Request().Context(), blog.Language(params.Lang), params.Page, params.PageSize)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewPostPage(*page, h.images))
}

// PostBySlug handles GET /api/v1/posts/:slug
// @Summary Get post by slug
// @Description Full post detail with expanded references, reading time and up to 3 related posts
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Param lang query string true "Language (en or ja)"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/{slug} [get]
func (h *BlogHandler) PostBySlug(c echo.Context) error {
	post, err := h.uc.PostBySlug(c.Request().Context(), c.Param("slug"), blog.Language(c.QueryParam("lang")))
	if err != nil {
		return h.fail(c, err)
	}
	if post == nil {
		return h.handleError(c, nil, http.StatusNotFound, "post not found")
	}

	return c.JSON(http.StatusOK, NewPost(*post, h.images))
}

// PostsByCategory handles GET /api/v1/categories/:slug/posts
// @Summary List posts by category
// @Description Posts in a language referencing the category; the category resolves independently of the items
// @Tags posts
// @Produce json
// @Param slug path string true "Category slug"
// @Param lang query string true "Language (en or ja)"
// @Param page query int false "Page number, 1-based (default: 1)"
// @Param page_size query int false "Page size (default: 9)"
// @Success 200 {object} rest.CategoryPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/categories/{slug}/posts [get]
func (h *BlogHandler) PostsByCategory(c echo.Context) error {
	var params ListParams
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &params); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.uc.PostsByCategory(c.Request().Context(), c.Param("slug"),
		blog.Language(params.Lang), params.Page, params.PageSize)
	if err != nil {
		return h.fail(c, err)
	}

	out := CategoryPage{PostPage: NewPostPage(page.PostPage, h.images)}
	if page.Category != nil {
		category := NewCategory(*page.Category)
		out.Category = &category
	}

	return c.JSON(http.StatusOK, out)
}

// PostsByTag handles GET /api/v1/tags/:slug/posts
// @Summary List posts by tag
// @Description Posts in a language referencing the tag; the tag resolves independently of the items
// @Tags posts
// @Produce json
// @Param slug path string true "Tag slug"
// @Param lang query string true "Language (en or ja)"
// @Param page query int false "Page number, 1-based (default: 1)"
// @Param page_size query int false "Page size (default: 9)"
// @Success 200 {object} rest.TagPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/tags/{slug}/posts [get]
func (h *BlogHandler) PostsByTag(c echo.Context) error {
	var params ListParams
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &params); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.uc.PostsByTag(c.Request().Context(), c.Param("slug"),
		blog.Language(params.Lang), params.Page, params.PageSize)
	if err != nil {
		return h.fail(c, err)
	}

	out := TagPage{PostPage: NewPostPage(page.PostPage, h.images)}
	if page.Tag != nil {
		tag := NewTag(*page.Tag)
		out.Tag = &tag
	}

	return c.JSON(http.StatusOK, out)
}

// Search handles GET /api/v1/search
// @Summary Search posts
// @Description Substring search over title, summary, body text and keywords, ranked title > summary > body
// @Tags posts
// @Produce json
// @Param q query string true "Search term"
// @Param lang query string true "Language (en or ja)"
// @Param page query int false "Page number, 1-based (default: 1)"
// @Param page_size query int false "Page size (default: 9)"
// @Success 200 {object} rest.PostPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/search [get]
func (h *BlogHandler) Search(c echo.Context) error {
	var params SearchParams
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &params); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.uc.Search(c.Request().Context(), params.Q,
		blog.Language(params.Lang), params.Page, params.PageSize)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewPostPage(*page, h.images))
}

// Categories handles GET /api/v1/categories
// @Summary List categories
// @Description All categories ordered by English title, with per-language post counts; zero-count entries included
// @Tags taxonomy
// @Produce json
// @Success 200 {array} rest.CategoryCount
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategoryCount))
}

// Tags handles GET /api/v1/tags
// @Summary List tags
// @Description All tags ordered by English title, with per-language post counts; zero-count entries included
// @Tags taxonomy
// @Produce json
// @Success 200 {array} rest.TagCount
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *BlogHandler) Tags(c echo.Context) error {
	tags, err := h.uc.Tags(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(tags, NewTagCount))
}

// RecentPosts handles GET /api/v1/posts/recent
// @Summary Recent posts
// @Description Newest posts in a language (default limit: 3)
// @Tags posts
// @Produce json
// @Param lang query string true "Language (en or ja)"
// @Param limit query int false "Max posts (default: 3)"
// @Success 200 {array} rest.PostCard
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts/recent [get]
func (h *BlogHandler) RecentPosts(c echo.Context) error {
	var params WidgetParams
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &params); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	cards, err := h.uc.RecentPosts(c.Request().Context(), blog.Language(params.Lang), params.Limit)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(cards, func(card blog.PostCard) PostCard {
		return NewPostCard(card, h.images)
	}))
}

// PopularPosts handles GET /api/v1/posts/popular
// @Summary Popular posts
// @Description Most viewed posts in a language (default limit: 5); never-viewed posts excluded
// @Tags posts
// @Produce json
// @Param lang query string true "Language (en or ja)"
// @Param limit query int false "Max posts (default: 5)"
// @Success 200 {array} rest.PostCard
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts/popular [get]
func (h *BlogHandler) PopularPosts(c echo.Context) error {
	var params WidgetParams
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &params); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	cards, err := h.uc.PopularPosts(c.Request().Context(), blog.Language(params.Lang), params.Limit)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(cards, func(card blog.PostCard) PostCard {
		return NewPostCard(card, h.images)
	}))
}

// PostSlugs handles GET /api/v1/posts/slugs
// @Summary Enumerate post slugs
// @Description Every post's (slug, language) pair, for static route generation
// @Tags posts
// @Produce json
// @Success 200 {array} rest.PostSlug
// @Failure 500 {object} map[string]string
// @Router /api/v1/posts/slugs [get]
func (h *BlogHandler) PostSlugs(c echo.Context) error {
	slugs, err := h.uc.PostSlugs(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(slugs, NewPostSlug))
}

// IncrementViews handles POST /api/v1/posts/:id/views
// @Summary Increment post views
// @Description Atomically bumps the post's view counter by one
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/{id}/views [post]
func (h *BlogHandler) IncrementViews(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid post id")
	}

	if err := h.uc.IncrementViews(c.Request().Context(), postID); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *BlogHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
