package model

// Blog mirrors the backend blog document. Field names follow the backend
// wire format, including the capitalised "Date".
type Blog struct {
	ID          string `json:"_id,omitempty"`
	BannerImage string `json:"bannerImage"`
	Date        string `json:"Date"`
	CategoryID  string `json:"categoryId"`
	CreatedBy   string `json:"createdBy"`
	BannerTitle string `json:"bannerTitle"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// BlogPage is one page of the blog listing as returned by the backend.
type BlogPage struct {
	Items []Blog
	Total int
}
