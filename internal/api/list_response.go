package api

// ListResponse is one page of a collection plus the total number of rows
// visible to the caller.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count" example:"1"`
}

// Pagination is bound from ?limit=&skip=.
// swagger:model api.Pagination
type Pagination struct {
	Limit int `query:"limit" validate:"min=1,max=1000" example:"100"`
	Skip  int `query:"skip" validate:"min=0" example:"0"`
}

const DefaultLimit = 100
