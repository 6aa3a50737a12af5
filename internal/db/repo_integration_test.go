package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := RunMigrations(ctx, MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, []string{"categories", "tags", "authors", "faqs", "posts"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func assertSortedByPublishedAt(t *testing.T, posts []Post) {
	t.Helper()
	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			t.Errorf("posts not sorted by publishedAt DESC at index %d: %v after %v",
				i, posts[i].PublishedAt, posts[i-1].PublishedAt)
		}
	}
}

func slugsOf(posts []Post) []string {
	out := make([]string, len(posts))
	for i := range posts {
		out[i] = posts[i].Slug
	}
	return out
}

func assertSlugs(t *testing.T, posts []Post, want ...string) {
	t.Helper()
	got := slugsOf(posts)
	if len(got) != len(want) {
		t.Fatalf("expected slugs %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected slug %q at index %d, got %q", want[i], i, got[i])
		}
	}
}

func TestPostBySlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("FoundWithTranslationExpanded", func(t *testing.T) {
		post, err := repo.PostBySlug(ctx, "kyoto-temple-walks", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post == nil {
			t.Fatal("expected post, got nil")
		}

		if post.Title != "Kyoto Temple Walks" {
			t.Errorf("expected title %q, got %q", "Kyoto Temple Walks", post.Title)
		}
		if post.Views == nil || *post.Views != 42 {
			t.Errorf("expected 42 views, got %v", post.Views)
		}
		if len(post.FAQIDs) != 2 {
			t.Errorf("expected 2 faq ids, got %v", post.FAQIDs)
		}
		if post.ModifiedAt == nil {
			t.Error("expected modifiedAt to be set")
		}

		if post.Translation == nil {
			t.Fatal("expected translation sibling, got nil")
		}
		if post.Translation.Slug != "kyoto-temple-walks" || post.Translation.Language != "ja" {
			t.Errorf("expected ja sibling with same slug, got %q/%q",
				post.Translation.Slug, post.Translation.Language)
		}
	})

	t.Run("SameSlugOtherLanguage", func(t *testing.T) {
		post, err := repo.PostBySlug(ctx, "kyoto-temple-walks", "ja")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post == nil {
			t.Fatal("expected ja post, got nil")
		}
		if post.Title != "京都の寺歩き" {
			t.Errorf("expected ja title, got %q", post.Title)
		}
	})

	t.Run("AbsentSlugIsNilNotError", func(t *testing.T) {
		post, err := repo.PostBySlug(ctx, "no-such-post", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post != nil {
			t.Errorf("expected nil for absent slug, got %+v", post)
		}
	})

	t.Run("SlugInWrongLanguageIsNil", func(t *testing.T) {
		post, err := repo.PostBySlug(ctx, "nihon-no-teien", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post != nil {
			t.Errorf("expected nil for ja-only slug in en, got %+v", post)
		}
	})
}

func TestPosts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("AllEnglishNewestFirst", func(t *testing.T) {
		posts, err := repo.Posts(ctx, "en", nil, nil, 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "kyoto-temple-walks", "hidden-gardens", "tea-ceremony", "shinkansen-tips")
		assertSortedByPublishedAt(t, posts)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		posts, err := repo.Posts(ctx, "en", intPtr(1), nil, 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "kyoto-temple-walks", "hidden-gardens", "shinkansen-tips")
	})

	t.Run("TagFilter", func(t *testing.T) {
		posts, err := repo.Posts(ctx, "en", nil, intPtr(1), 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "kyoto-temple-walks")
	})

	t.Run("LanguagesDoNotMix", func(t *testing.T) {
		posts, err := repo.Posts(ctx, "ja", nil, nil, 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "kyoto-temple-walks", "nihon-no-teien")
		for i := range posts {
			if posts[i].Language != "ja" {
				t.Errorf("expected ja post, got %q", posts[i].Language)
			}
		}
	})

	t.Run("PagesAreDisjointAndOrdered", func(t *testing.T) {
		page1, err := repo.Posts(ctx, "en", nil, nil, 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		page2, err := repo.Posts(ctx, "en", nil, nil, 2, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertSlugs(t, page1, "kyoto-temple-walks", "hidden-gardens")
		assertSlugs(t, page2, "tea-ceremony", "shinkansen-tips")
	})

	t.Run("PageBeyondEndIsEmpty", func(t *testing.T) {
		posts, err := repo.Posts(ctx, "en", nil, nil, 5, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 0 {
			t.Errorf("expected empty page, got %v", slugsOf(posts))
		}
	})

	t.Run("InvalidWindowRejected", func(t *testing.T) {
		if _, err := repo.Posts(ctx, "en", nil, nil, 0, 10); err == nil {
			t.Error("expected error for page 0")
		}
		if _, err := repo.Posts(ctx, "en", nil, nil, 1, 0); err == nil {
			t.Error("expected error for pageSize 0")
		}
	})

	t.Run("CardRowsCarrySearchTextButNoBody", func(t *testing.T) {
		posts, err := repo.Posts(ctx, "en", nil, nil, 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 post, got %d", len(posts))
		}
		if posts[0].SearchText == "" {
			t.Error("expected searchText on card rows")
		}
		if posts[0].Content != nil {
			t.Error("expected no body on card rows")
		}
	})
}

func TestPostsCount_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	count, err := repo.PostsCount(ctx, "en", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 en posts, got %d", count)
	}

	count, err = repo.PostsCount(ctx, "en", intPtr(2), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 posts in category 2, got %d", count)
	}

	count, err = repo.PostsCount(ctx, "ja", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 ja posts, got %d", count)
	}
}

func TestSearchPosts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("TitleMatchOutranksBodyMatch", func(t *testing.T) {
		// "kyoto" hits post 1's title and post 2's body only.
		posts, err := repo.SearchPosts(ctx, "en", "kyoto", 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "kyoto-temple-walks", "hidden-gardens")
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		posts, err := repo.SearchPosts(ctx, "en", "KYOTO", 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 2 {
			t.Errorf("expected 2 matches for upper-case term, got %v", slugsOf(posts))
		}
	})

	t.Run("KeywordMatch", func(t *testing.T) {
		posts, err := repo.SearchPosts(ctx, "en", "walking", 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// "walking" only appears in post 1's keywords.
		assertSlugs(t, posts, "kyoto-temple-walks")
	})

	t.Run("JapaneseTerm", func(t *testing.T) {
		posts, err := repo.SearchPosts(ctx, "ja", "庭", 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "nihon-no-teien")
	})

	t.Run("NoMatchesIsEmptyNotError", func(t *testing.T) {
		posts, err := repo.SearchPosts(ctx, "en", "zzzznothing", 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 0 {
			t.Errorf("expected no matches, got %v", slugsOf(posts))
		}
	})

	t.Run("CountIgnoresWindow", func(t *testing.T) {
		posts, err := repo.SearchPosts(ctx, "en", "kyoto", 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected windowed result of 1, got %d", len(posts))
		}

		count, err := repo.SearchPostsCount(ctx, "en", "kyoto")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected full count 2, got %d", count)
		}
	})
}

func TestRelatedPosts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("SharedCategoryExcludingSelf", func(t *testing.T) {
		posts, err := repo.RelatedPosts(ctx, 1, "en", []int{1}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "hidden-gardens", "shinkansen-tips")
		assertSortedByPublishedAt(t, posts)
	})

	t.Run("SameLanguageOnly", func(t *testing.T) {
		posts, err := repo.RelatedPosts(ctx, 5, "ja", []int{1}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "nihon-no-teien")
	})

	t.Run("LimitApplies", func(t *testing.T) {
		posts, err := repo.RelatedPosts(ctx, 1, "en", []int{1}, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "hidden-gardens")
	})

	t.Run("NoCategoriesShortCircuits", func(t *testing.T) {
		posts, err := repo.RelatedPosts(ctx, 1, "en", nil, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if posts == nil || len(posts) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", posts)
		}
	})

	t.Run("WidgetRowsCarryNoSearchText", func(t *testing.T) {
		posts, err := repo.RelatedPosts(ctx, 1, "en", []int{1}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range posts {
			if posts[i].SearchText != "" {
				t.Errorf("expected no searchText on widget rows, got %q", posts[i].SearchText)
			}
		}
	})
}

func TestRecentPosts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	posts, err := repo.RecentPosts(ctx, "en", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlugs(t, posts, "kyoto-temple-walks", "hidden-gardens")

	posts, err = repo.RecentPosts(ctx, "ja", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlugs(t, posts, "kyoto-temple-walks", "nihon-no-teien")
}

func TestPopularPosts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("OrderedByViewsNeverViewedExcluded", func(t *testing.T) {
		posts, err := repo.PopularPosts(ctx, "en", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// tea-ceremony has NULL views and must not appear.
		assertSlugs(t, posts, "kyoto-temple-walks", "hidden-gardens", "shinkansen-tips")
	})

	t.Run("LimitApplies", func(t *testing.T) {
		posts, err := repo.PopularPosts(ctx, "en", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSlugs(t, posts, "kyoto-temple-walks", "hidden-gardens")
	})
}

func TestPostSlugs_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	slugs, err := repo.PostSlugs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slugs) != 6 {
		t.Fatalf("expected 6 slug pairs, got %d", len(slugs))
	}

	seen := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		seen[s.Language+"/"+s.Slug] = true
	}
	for _, want := range []string{
		"en/kyoto-temple-walks", "ja/kyoto-temple-walks", "ja/nihon-no-teien",
	} {
		if !seen[want] {
			t.Errorf("expected slug pair %q in %v", want, slugs)
		}
	}
}

func TestCategoryBySlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	category, err := repo.CategoryBySlug(ctx, "travel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category == nil || category.TitleEn != "Travel" {
		t.Fatalf("expected travel category, got %+v", category)
	}
	if category.Color == nil || *category.Color != "#E07A5F" {
		t.Errorf("expected color #E07A5F, got %v", category.Color)
	}

	// A category with zero posts still resolves.
	category, err = repo.CategoryBySlug(ctx, "food")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category == nil {
		t.Error("expected empty category to resolve")
	}

	category, err = repo.CategoryBySlug(ctx, "no-such-category")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != nil {
		t.Errorf("expected nil for absent slug, got %+v", category)
	}
}

func TestTagBySlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	tag, err := repo.TagBySlug(ctx, "onsen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag == nil || tag.TitleJa != "温泉" {
		t.Fatalf("expected onsen tag, got %+v", tag)
	}

	tag, err = repo.TagBySlug(ctx, "no-such-tag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag != nil {
		t.Errorf("expected nil for absent slug, got %+v", tag)
	}
}

func TestCategories_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}

	// Ordered by English title: Culture, Food, Travel.
	wantCounts := []struct {
		titleEn string
		en, ja  int
	}{
		{"Culture", 2, 0},
		{"Food", 0, 0},
		{"Travel", 3, 2},
	}
	for i, want := range wantCounts {
		got := categories[i]
		if got.TitleEn != want.titleEn {
			t.Errorf("expected category %q at index %d, got %q", want.titleEn, i, got.TitleEn)
			continue
		}
		if got.PostCountEn != want.en || got.PostCountJa != want.ja {
			t.Errorf("%s: expected counts en=%d ja=%d, got en=%d ja=%d",
				want.titleEn, want.en, want.ja, got.PostCountEn, got.PostCountJa)
		}
	}
}

func TestTags_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	tags, err := repo.Tags(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(tags))
	}

	wantCounts := []struct {
		titleEn string
		en, ja  int
	}{
		{"Festivals", 1, 0},
		{"Onsen", 0, 0},
		{"Temples", 1, 1},
	}
	for i, want := range wantCounts {
		got := tags[i]
		if got.TitleEn != want.titleEn {
			t.Errorf("expected tag %q at index %d, got %q", want.titleEn, i, got.TitleEn)
			continue
		}
		if got.PostCountEn != want.en || got.PostCountJa != want.ja {
			t.Errorf("%s: expected counts en=%d ja=%d, got en=%d ja=%d",
				want.titleEn, want.en, want.ja, got.PostCountEn, got.PostCountJa)
		}
	}
}

func TestBatchLoaders_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("EmptyIDsShortCircuit", func(t *testing.T) {
		categories, err := repo.CategoriesByIDs(ctx, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if categories == nil || len(categories) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", categories)
		}
	})

	t.Run("DanglingIDsAreDropped", func(t *testing.T) {
		categories, err := repo.CategoriesByIDs(ctx, []int{1, 999})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 1 || categories[0].ID != 1 {
			t.Errorf("expected only category 1, got %+v", categories)
		}
	})

	t.Run("AuthorsAndFAQs", func(t *testing.T) {
		authors, err := repo.AuthorsByIDs(ctx, []int{1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(authors) != 2 {
			t.Fatalf("expected 2 authors, got %d", len(authors))
		}

		faqs, err := repo.FAQsByIDs(ctx, []int{1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(faqs) != 2 {
			t.Fatalf("expected 2 faqs, got %d", len(faqs))
		}
	})
}

// Increment tests run against the shared connection, not a rolled-back
// transaction: concurrency across goroutines needs separate sessions.
func TestIncrementPostViews_Integration(t *testing.T) {
	ctx := context.Background()

	restoreViews := func(t *testing.T, postID int, views *int) {
		t.Helper()
		t.Cleanup(func() {
			_, err := testDB.ExecContext(ctx,
				`UPDATE "posts" SET "views" = ? WHERE "postId" = ?`, views, postID)
			if err != nil {
				t.Errorf("failed to restore views for post %d: %v", postID, err)
			}
		})
	}

	currentViews := func(t *testing.T, postID int) *int {
		t.Helper()
		var views *int
		_, err := testDB.QueryOneContext(ctx, pg.Scan(&views),
			`SELECT "views" FROM "posts" WHERE "postId" = ?`, postID)
		if err != nil {
			t.Fatalf("failed to read views for post %d: %v", postID, err)
		}
		return views
	}

	t.Run("NullCounterBecomesOne", func(t *testing.T) {
		const postID = 3 // tea-ceremony, views NULL
		restoreViews(t, postID, nil)

		if err := testRepo.IncrementPostViews(ctx, postID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		views := currentViews(t, postID)
		if views == nil || *views != 1 {
			t.Errorf("expected views 1, got %v", views)
		}
	})

	t.Run("ConcurrentIncrementsAllLand", func(t *testing.T) {
		const (
			postID     = 4 // shinkansen-tips, views 3
			goroutines = 20
		)
		restoreViews(t, postID, intPtr(3))

		var wg sync.WaitGroup
		errs := make(chan error, goroutines)
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- testRepo.IncrementPostViews(ctx, postID)
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		views := currentViews(t, postID)
		if views == nil || *views != 3+goroutines {
			t.Errorf("expected views %d, got %v", 3+goroutines, views)
		}
	})

	t.Run("UnknownPostIsNotFound", func(t *testing.T) {
		err := testRepo.IncrementPostViews(ctx, 99999)
		if !errors.Is(err, ErrPostNotFound) {
			t.Errorf("expected ErrPostNotFound, got %v", err)
		}
	})

	t.Run("ModifiedAtUntouched", func(t *testing.T) {
		const postID = 1
		restoreViews(t, postID, intPtr(42))

		var before *time.Time
		_, err := testDB.QueryOneContext(ctx, pg.Scan(&before),
			`SELECT "modifiedAt" FROM "posts" WHERE "postId" = ?`, postID)
		if err != nil {
			t.Fatalf("failed to read modifiedAt: %v", err)
		}

		if err := testRepo.IncrementPostViews(ctx, postID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var after *time.Time
		_, err = testDB.QueryOneContext(ctx, pg.Scan(&after),
			`SELECT "modifiedAt" FROM "posts" WHERE "postId" = ?`, postID)
		if err != nil {
			t.Fatalf("failed to read modifiedAt: %v", err)
		}

		if before == nil || after == nil || !before.Equal(*after) {
			t.Errorf("expected modifiedAt unchanged, before=%v after=%v", before, after)
		}
	})
}
