package blog

import (
	"github.com/kaedeworks/content-portal/internal/db"
)

// refSet indexes the taxonomy and author documents referenced by a batch of
// posts, so listings expand references with one store round-trip per kind.
type refSet struct {
	categories map[int]Category
	tags       map[int]Tag
	authors    map[int]Author
	faqs       map[int]FAQ
}

// categoriesFor resolves references in the post's own order, dropping ids
// the store no longer knows (a dangling reference is not an error).
func (rs *refSet) categoriesFor(ids []int) []Category {
	out := make([]Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := rs.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (rs *refSet) tagsFor(ids []int) []Tag {
	out := make([]Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := rs.tags[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (rs *refSet) authorsFor(ids []int) []Author {
	out := make([]Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := rs.authors[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (rs *refSet) authorNamesFor(ids []int) []string {
	authors := rs.authorsFor(ids)
	names := make([]string, len(authors))
	for i := range authors {
		names[i] = authors[i].Name
	}
	return names
}

func (rs *refSet) faqsFor(ids []int) []FAQ {
	out := make([]FAQ, 0, len(ids))
	for _, id := range ids {
		if f, ok := rs.faqs[id]; ok {
			out = append(out, f)
		}
	}
	return out
}

// collectIDs gathers the distinct reference ids of one kind across posts.
func collectIDs(posts []db.Post, pick func(*db.Post) []int) []int {
	seen := make(map[int]struct{})
	var out []int
	for i := range posts {
		for _, id := range pick(&posts[i]) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
