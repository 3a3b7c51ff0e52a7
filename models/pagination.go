// SPDX-License-Identifier: Apache-2.0

package models

// Pagination describes the position of one page inside a collection.
// NextPage and PreviousPage are pointers so that they disappear from the
// JSON envelope when there is no such page.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	PageSize        int  `json:"pageSize"`
	TotalRecords    int  `json:"totalRecords"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	NextPage        *int `json:"nextPage,omitempty"`
	PreviousPage    *int `json:"previousPage,omitempty"`
}

// PaginatedResponse is the envelope returned by every listing endpoint.
type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPaginatedResponse assembles the envelope for one page of records.
// page and pageSize are assumed to be already clamped by the caller;
// totalRecords is the size of the whole collection, not of data.
//
// Data is never nil so that an empty page serialises as "data": [] rather
// than "data": null.
func NewPaginatedResponse[T any](data []T, page, pageSize, totalRecords int) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if totalRecords > 0 {
		totalPages = (totalRecords + pageSize - 1) / pageSize
	}

	pagination := Pagination{
		CurrentPage:     page,
		PageSize:        pageSize,
		TotalRecords:    totalRecords,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}

	if pagination.HasNextPage {
		next := page + 1
		pagination.NextPage = &next
	}
	if pagination.HasPreviousPage {
		previous := page - 1
		pagination.PreviousPage = &previous
	}

	return PaginatedResponse[T]{
		Data:       data,
		Pagination: pagination,
	}
}
