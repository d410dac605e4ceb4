package blog

import "github.com/iliyamo/register-my-marriage/internal/model"

// fallbackArticles is served whenever the live listing fails or is empty.
var fallbackArticles = []model.Blog{
	{
		ID:          "static-1",
		BannerTitle: "Why Every Married Couple in India Must Register Their Marriage",
		Description: "Despite India conducting over 10 million weddings every year, a staggering proportion remain legally unregistered. The consequences, from inheritance disputes to visa complications, can be severe. We explain why registration is not optional.",
		Date:        "2024-01-15",
		CreatedBy:   "VivahSetu Legal Team",
		CategoryID:  "legal",
		Slug:        "why-register-marriage-india",
	},
	{
		ID:          "static-2",
		BannerTitle: "Hindu Marriage Act vs Special Marriage Act: Which Applies to You?",
		Description: "Two of India's most important marriage laws govern millions of couples, but most people don't understand the difference. We break down who qualifies under each act, the procedural differences, and which route is faster.",
		Date:        "2024-01-22",
		CreatedBy:   "VivahSetu Legal Team",
		CategoryID:  "legal",
		Slug:        "hindu-marriage-act-vs-special-marriage-act",
	},
	{
		ID:          "static-3",
		BannerTitle: "The Indian Wedding Industry: A ₹5 Lakh Crore Market",
		Description: "India's wedding market is one of the largest in the world and it's growing at 15% annually. From destination weddings to digital invitations, we explore how the Indian marriage landscape is transforming.",
		Date:        "2024-02-05",
		CreatedBy:   "VivahSetu Editorial",
		CategoryID:  "insights",
		Slug:        "india-wedding-industry-overview",
	},
	{
		ID:          "static-4",
		BannerTitle: "Nikah Registration: Bridging Islamic Tradition and Indian Law",
		Description: "A Nikah holds deep religious significance, but without civil registration, couples face legal vulnerability. This guide explains exactly how Muslim couples can register their marriage under Indian law while preserving their religious customs.",
		Date:        "2024-02-18",
		CreatedBy:   "VivahSetu Legal Team",
		CategoryID:  "religion",
		Slug:        "nikah-registration-guide",
	},
	{
		ID:          "static-5",
		BannerTitle: "Documents Required for Marriage Registration in India: A Complete Checklist",
		Description: "One of the most common reasons marriage applications are rejected is incomplete documentation. Our comprehensive checklist covers every document you'll need, across all religions and all Indian states.",
		Date:        "2024-03-01",
		CreatedBy:   "VivahSetu Legal Team",
		CategoryID:  "guides",
		Slug:        "marriage-registration-documents-checklist",
	},
	{
		ID:          "static-6",
		BannerTitle: "Court Marriage vs Religious Marriage: Rights, Differences & What Couples Should Know",
		Description: "Many couples are confused about the difference between a court marriage and a religious ceremony. This article clarifies legal rights under each, addresses common misconceptions, and guides couples in choosing the right path.",
		Date:        "2024-03-14",
		CreatedBy:   "VivahSetu Editorial",
		CategoryID:  "guides",
		Slug:        "court-marriage-vs-religious-marriage",
	},
}

// Fallback returns a copy of the built-in article set.
func Fallback() []model.Blog {
	return append([]model.Blog(nil), fallbackArticles...)
}
