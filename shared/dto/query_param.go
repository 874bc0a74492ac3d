package dto

import (
	"net/http"
	"plotdesk/shared/constant"
	"strconv"
)

// QueryParams carries the list-page controls every admin screen shares:
// free-text search plus pagination. Filtering happens in memory, so there is
// no sort key; the upstream order is preserved.
type QueryParams struct {
	Page   int    `json:"page"   validate:"omitempty"`
	Limit  int    `json:"limit"  validate:"omitempty"`
	Search string `json:"search" validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request. With
// `defaultRequest` set, missing page and limit fall back to the first page
// of ten records, matching the legacy screens.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	q.Search = queryParams.Get(constant.RequestParamSearch)

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
