// Package assets builds display URLs for image references coming out of the
// content store. References are either CDN asset ids or direct URLs; the
// builder never fails, falling back to a stable placeholder path instead.
package assets

import (
	"net/url"
	"strconv"
	"strings"
)

// PlaceholderPath is returned for absent or malformed references.
const PlaceholderPath = "/placeholder-image.jpg"

// Options constrain the produced URL. Zero fields are omitted; Quality
// defaults to 100.
type Options struct {
	Width   int
	Height  int
	Quality int
}

// Builder produces display URLs against a configured CDN base.
type Builder struct {
	baseURL string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// URLFor turns an image reference into a display URL. Direct http(s) URLs
// pass through with the constraints appended; asset references resolve
// against the CDN base. An empty or unparsable reference yields the
// placeholder path.
func (b *Builder) URLFor(ref string, opts Options) string {
	if ref == "" {
		return PlaceholderPath
	}

	var raw string
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		raw = ref
	} else {
		raw = b.baseURL + "/" + assetPath(ref)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return PlaceholderPath
	}

	q := u.Query()
	if opts.Width > 0 {
		q.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("h", strconv.Itoa(opts.Height))
	}
	if opts.Quality > 0 {
		q.Set("q", strconv.Itoa(opts.Quality))
	} else {
		q.Set("q", "100")
	}
	q.Set("auto", "format")
	u.RawQuery = q.Encode()

	return u.String()
}

// assetPath converts a store asset id like "image-kyoto-1200x800-jpg" into
// the CDN file path "kyoto-1200x800.jpg". Ids without the expected shape are
// passed through untouched.
func assetPath(ref string) string {
	name := strings.TrimPrefix(ref, "image-")
	if idx := strings.LastIndex(name, "-"); idx > 0 && idx < len(name)-1 {
		return name[:idx] + "." + name[idx+1:]
	}
	return name
}
