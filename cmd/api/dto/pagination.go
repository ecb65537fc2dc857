package dto

import "feed-admin/paging"

// ListStateDTO is the wire form of a paged list owned by a view.
// PageIndex is 0-based. Error carries the last fetch failure, if any; the list
// keeps its last known-good items (or is empty after a failed reload).
//
// swagger:model ListState
// (Swagger generators may not fully support generics; handlers use concrete aliases.)
type ListStateDTO[T any] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	PageIndex  int    `json:"page_index"`
	PageSize   int    `json:"page_size"`
	IsLoading  bool   `json:"is_loading"`
	HasMore    bool   `json:"has_more"`
	Error      string `json:"error,omitempty"`
	Generation uint64 `json:"generation"`
}

// ListStateFrom maps a pager snapshot, converting each item with conv.
func ListStateFrom[T, D any](s paging.ListState[T], conv func(T) D) ListStateDTO[D] {
	items := make([]D, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, conv(it))
	}
	out := ListStateDTO[D]{
		Items:      items,
		Total:      s.Total,
		TotalPages: s.TotalPages,
		PageIndex:  s.PageIndex,
		PageSize:   s.PageSize,
		IsLoading:  s.IsLoading,
		HasMore:    s.HasMore(),
		Generation: s.Generation,
	}
	if s.LastError != nil {
		out.Error = s.LastError.Error()
	}
	return out
}
