package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single recorded expense.
type Expense struct {
	Model
	Item        string          `json:"item" example:"Weekly groceries"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.17"`
	PaidTo      string          `json:"paidTo" example:"Corner store"`
	Category    string          `json:"category" example:"groceries"`
	Date        time.Time       `json:"date" example:"2022-04-02T00:00:00Z"`
	Description string          `json:"description,omitempty" example:"Includes the birthday cake"`
}

// BeforeSave ensures consistency for the expense.
//
// It trims whitespace from all strings and rejects
// negative amounts. The date defaults to the time of
// submission and is always stored in UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	e.Item = strings.TrimSpace(e.Item)
	e.PaidTo = strings.TrimSpace(e.PaidTo)
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.Model.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}
