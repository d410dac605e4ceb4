package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iliyamo/register-my-marriage/internal/model"
)

// ListBlogs fetches one page of posts. Callers decide how to degrade.
func (c *Client) ListBlogs(ctx context.Context, pageIndex, pageSize int) (model.BlogPage, error) {
	const op = "list_blogs"
	q := url.Values{}
	q.Set("pageIndex", strconv.Itoa(pageIndex))
	q.Set("pageSize", strconv.Itoa(pageSize))
	r, err := c.do(ctx, op, http.MethodGet, "/blog/?"+q.Encode(), "", nil)
	if err != nil {
		return model.BlogPage{}, c.record(op, err)
	}
	if !r.ok() {
		return model.BlogPage{}, c.record(op, &RequestError{Op: op, Status: r.status, Reason: r.message()})
	}
	var out struct {
		Data  []model.Blog `json:"data"`
		Total int          `json:"total"`
	}
	if err := json.Unmarshal(r.body, &out); err != nil {
		return model.BlogPage{}, c.record(op, &RequestError{Op: op, Status: r.status, Err: err})
	}
	return model.BlogPage{Items: out.Data, Total: out.Total}, c.record(op, nil)
}

func (c *Client) GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	const op = "get_blog"
	r, err := c.do(ctx, op, http.MethodGet, "/blog/getBySlug/"+url.PathEscape(slug), "", nil)
	if err != nil {
		return nil, c.record(op, err)
	}
	if r.status == http.StatusNotFound {
		return nil, c.record(op, ErrNotFound)
	}
	if !r.ok() {
		return nil, c.record(op, &RequestError{Op: op, Status: r.status, Reason: r.message()})
	}
	var out struct {
		Data *model.Blog `json:"data"`
	}
	if err := json.Unmarshal(r.body, &out); err != nil {
		return nil, c.record(op, &RequestError{Op: op, Status: r.status, Err: err})
	}
	if out.Data == nil || out.Data.Slug == "" {
		return nil, c.record(op, ErrNotFound)
	}
	return out.Data, c.record(op, nil)
}
