package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/blog"
	"github.com/iliyamo/register-my-marriage/internal/theme"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

// SiteHandler serves the marketing pages: tenant picker, home and blog.
type SiteHandler struct {
	Blogs *blog.Service
}

func NewSiteHandler(blogs *blog.Service) *SiteHandler {
	if blogs == nil {
		panic("nil blog service passed to NewSiteHandler")
	}
	return &SiteHandler{Blogs: blogs}
}

// Picker lists every tenant.
func (h *SiteHandler) Picker(c echo.Context) error {
	p := page(c, "")
	p.Data = view.Picker{Themes: theme.All()}
	return c.Render(http.StatusOK, view.PagePicker, p)
}

func (h *SiteHandler) Home(c echo.Context) error {
	p := page(c, "")
	if p.Theme != nil {
		p.Title = p.Theme.Label
	}
	return c.Render(http.StatusOK, view.PageHome, p)
}

// BlogList shows live articles, or the built-in set when the backend has
// none to give. The fallback is silent: no banner is shown.
func (h *SiteHandler) BlogList(c echo.Context) error {
	q := blog.Query{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Search:   strings.TrimSpace(c.QueryParam("q")),
	}
	listing := h.Blogs.List(c.Request().Context(), q)

	p := page(c, "Blog")
	p.Data = view.BlogList{Articles: listing.Articles, Categories: blog.Categories, Query: q}
	if listing.Fallback {
		c.Response().Header().Set("X-Content-Source", "fallback")
	}
	return c.Render(http.StatusOK, view.PageBlog, p)
}

func (h *SiteHandler) BlogPost(c echo.Context) error {
	post, err := h.Blogs.Get(c.Request().Context(), c.Param("slug"))
	if errors.Is(err, blog.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	p := page(c, post.BannerTitle)
	p.Data = post
	return c.Render(http.StatusOK, view.PageBlogDetail, p)
}
