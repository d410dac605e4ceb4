// Package blog serves the article listing. A failed or empty live listing
// silently degrades to the built-in article set; List never returns an
// error.
package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
	"github.com/iliyamo/register-my-marriage/internal/metrics"
	"github.com/iliyamo/register-my-marriage/internal/model"
)

// ErrNotFound is returned by Get when neither the backend nor the built-in
// set knows the slug.
var ErrNotFound = errors.New("blog: article not found")

// Live page requested from the backend.
const (
	PageIndex = 0
	PageSize  = 20
)

// Categories offered by the listing filter, "All" first.
var Categories = []string{"All", "Legal", "Religion", "Guides", "Insights"}

// Source is the backend surface the listing reads from.
type Source interface {
	ListBlogs(ctx context.Context, pageIndex, pageSize int) (model.BlogPage, error)
	GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error)
}

type Query struct {
	Category string
	Search   string
}

// Listing is what the page renders.
type Listing struct {
	Articles []model.Blog
	Fallback bool
}

const listKey = "blog:list"

type Service struct {
	src   Source
	cache *ristretto.Cache[string, []model.Blog]
	ttl   time.Duration
	log   logrus.FieldLogger
}

// NewService caches successful live listings for ttl; a ttl of zero
// disables caching.
func NewService(src Source, ttl time.Duration, log logrus.FieldLogger) (*Service, error) {
	s := &Service{src: src, ttl: ttl, log: log}
	if ttl > 0 {
		c, err := ristretto.NewCache(&ristretto.Config[string, []model.Blog]{
			NumCounters:        1000,
			MaxCost:            1 << 10,
			BufferItems:        64,
			IgnoreInternalCost: true,
		})
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	return s, nil
}

func (s *Service) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// List returns the filtered articles. The filter applies equally to live
// and fallback articles.
func (s *Service) List(ctx context.Context, q Query) Listing {
	all, fallback := s.articles(ctx)
	return Listing{Articles: Filter(all, q), Fallback: fallback}
}

func (s *Service) articles(ctx context.Context) ([]model.Blog, bool) {
	if s.cache != nil {
		if items, ok := s.cache.Get(listKey); ok {
			return items, false
		}
	}
	page, err := s.src.ListBlogs(ctx, PageIndex, PageSize)
	if err != nil || len(page.Items) == 0 {
		if err != nil {
			s.log.WithError(err).Info("blog: live listing unavailable, serving built-in articles")
		}
		metrics.Get().BlogFallback.Inc()
		return Fallback(), true
	}
	if s.cache != nil {
		s.cache.SetWithTTL(listKey, page.Items, int64(len(page.Items)), s.ttl)
		s.cache.Wait()
	}
	return page.Items, false
}

// Get finds one article by slug: live first, then the built-in set.
func (s *Service) Get(ctx context.Context, slug string) (model.Blog, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return model.Blog{}, ErrNotFound
	}
	b, err := s.src.GetBlogBySlug(ctx, slug)
	if err == nil && b != nil {
		return *b, nil
	}
	if err != nil && !errors.Is(err, apiclient.ErrNotFound) {
		s.log.WithError(err).WithField("slug", slug).Info("blog: live article unavailable")
	}
	for _, a := range fallbackArticles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return model.Blog{}, ErrNotFound
}

// Filter keeps articles matching the category (case-insensitive, "All" or
// empty matches everything) and whose title or description contains the
// search text.
func Filter(in []model.Blog, q Query) []model.Blog {
	cat := strings.ToLower(strings.TrimSpace(q.Category))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.Blog, 0, len(in))
	for _, b := range in {
		if cat != "" && cat != "all" && strings.ToLower(b.CategoryID) != cat {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.BannerTitle), search) &&
			!strings.Contains(strings.ToLower(b.Description), search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FormatDate renders a backend date as "15 January 2024", falling back to
// the raw string.
func FormatDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return raw
}
