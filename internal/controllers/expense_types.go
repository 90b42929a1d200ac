package controllers

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// URIID is the id path parameter of the detail route.
type URIID struct {
	ID uint `uri:"id" binding:"required"` // ID of the expense
}

// ExpenseEditable represents all user configurable parameters of an expense.
//
// The form tags match the field names of the HTML expense form, the json
// tags are used by API clients.
type ExpenseEditable struct {
	Item        string          `json:"item" form:"item" binding:"required" example:"Weekly groceries"`             // What the expense was for
	Amount      decimal.Decimal `json:"amount" form:"amount" binding:"required" example:"42.17"`                    // Amount of money spent
	PaidTo      string          `json:"paidTo" form:"paid_to" binding:"required" example:"Corner store"`            // Recipient of the payment
	Category    string          `json:"category" form:"category" binding:"required" example:"groceries"`            // User-chosen category label
	Date        time.Time       `json:"date" form:"date" time_format:"2006-01-02" example:"2022-04-02" default:""`  // Date of the expense, defaults to the submission time
	Description string          `json:"description" form:"description" example:"Includes the birthday cake" default:""` // Free-form notes
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Item:        editable.Item,
		Amount:      editable.Amount,
		PaidTo:      editable.PaidTo,
		Category:    editable.Category,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`                                                    // List of expenses
	Count int              `json:"count" example:"100"`                                     // Number of expenses returned
	Error *string          `json:"error" example:"the specified resource ID is not valid"`  // The error, if any occurred
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`                                                    // Data for the expense
	Error *string         `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
}

// NewExpenseResponse is the empty form structure returned when the
// create route is requested with GET.
type NewExpenseResponse struct {
	Data ExpenseEditable `json:"data"` // Empty editable structure to fill in
}

// ExpenseQueryFilter contains the query parameters for the expense list.
type ExpenseQueryFilter struct {
	Category string `form:"category"`                   // By category label
	PaidTo   string `form:"paidTo"`                     // By recipient
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to all.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category: f.Category,
		PaidTo:   f.PaidTo,
	}
}
