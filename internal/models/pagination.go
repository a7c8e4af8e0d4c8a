package models

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count with a ceiling division.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

type DashboardStats struct {
	TotalProperties  int        `json:"total_properties"`
	TotalUsers       int        `json:"total_users"`
	TotalAgents      int        `json:"total_agents"`
	TotalInquiries   int        `json:"total_inquiries"`
	RecentProperties []Property `json:"recent_properties"`
	RecentInquiries  []Inquiry  `json:"recent_inquiries"`
}
