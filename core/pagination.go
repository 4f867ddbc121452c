package core

const (
	// DefaultPageSize page size used when the caller gives none
	DefaultPageSize = 20
	// MaxPageSize upper bound of a requested page size
	MaxPageSize = 100
)

// Pagination page metadata
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedResult one page of assets
type PaginatedResult struct {
	Data       []*TokenizedAsset `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// Paginate cut page out of assets. total is the pre-truncation count.
func Paginate(assets []*TokenizedAsset, page, limit int) *PaginatedResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := len(assets)
	data := []*TokenizedAsset{}
	if start := (page - 1) * limit; start < total {
		end := start + limit
		if end > total {
			end = total
		}
		data = assets[start:end]
	}

	return &PaginatedResult{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}
}

// Unpaginated whole list as a single page, limit equals the result size
func Unpaginated(assets []*TokenizedAsset) *PaginatedResult {
	if assets == nil {
		assets = []*TokenizedAsset{}
	}

	return &PaginatedResult{
		Data: assets,
		Pagination: Pagination{
			Page:       1,
			Limit:      len(assets),
			Total:      len(assets),
			TotalPages: 1,
		},
	}
}
