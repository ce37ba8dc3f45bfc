package iof

// PaginationInfo describes the position of a page within a listing.
type PaginationInfo struct {
	Page  int `json:"page"  yaml:"page"`
	Limit int `json:"limit" yaml:"limit"`
	Total int `json:"total" yaml:"total"`
	Pages int `json:"pages" yaml:"pages"`
}

// ListResponse is the envelope every paginated listing comes back in.
type ListResponse[T any] struct {
	Data       []T            `json:"data"       yaml:"data"`
	Pagination PaginationInfo `json:"pagination" yaml:"pagination"`
}

// HasNextPage reports whether pages remain after the current one.
func (r *ListResponse[T]) HasNextPage() bool {
	return r.Pagination.Page < r.Pagination.Pages
}

// NextPage returns the page number following the current page.
func (r *ListResponse[T]) NextPage() int {
	return r.Pagination.Page + 1
}
