package dto

import (
	"ledger-copilot/internal/models"
)

// TransactionQuery contains optional filters for the transaction listing
type TransactionQuery struct {
	StartDate     string `query:"start_date" validate:"omitempty,iso_date"`
	EndDate       string `query:"end_date" validate:"omitempty,iso_date"`
	CategoryID    string `query:"category_id" validate:"omitempty,uuid"`
	Uncategorized bool   `query:"uncategorized"`
	Search        string `query:"search" validate:"omitempty,max=100"`
	Offset        int    `query:"offset" validate:"omitempty,min=0"`
	Limit         int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

// HasFilters reports whether any filter beyond the default listing was requested.
func (q *TransactionQuery) HasFilters() bool {
	return q.StartDate != "" || q.EndDate != "" || q.CategoryID != "" ||
		q.Uncategorized || q.Search != "" || q.Offset != 0 || q.Limit != 0
}

// TransactionResponse is the wire form of a tenant transaction
type TransactionResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Amount       string  `json:"amount"`
	Currency     string  `json:"currency"`
	PostedDate   string  `json:"posted_date"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:         t.ID.String(),
		Name:       t.Name,
		Amount:     t.Amount.StringFixed(2),
		Currency:   t.Currency,
		PostedDate: t.PostedDateString(),
	}

	if t.CategoryID != nil {
		id := t.CategoryID.String()
		resp.CategoryID = &id
	}
	if t.Category != nil {
		name := t.Category.Name
		resp.CategoryName = &name
	}

	return resp
}

// CategoryResponse is the wire form of a tenant category
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListCategoriesResponse represents the response for listing categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
