package catalog

// ListResponse is a page of the public catalog
type ListResponse struct {
	Services []Listing `json:"services"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
