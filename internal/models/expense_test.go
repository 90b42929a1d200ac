package models_test

import (
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseCreate() {
	expense := suite.createTestExpense(models.Expense{
		Item:     "Weekly groceries",
		Amount:   decimal.NewFromFloat(42.17),
		PaidTo:   "Corner store",
		Category: "groceries",
	})

	assert.NotZero(suite.T(), expense.ID, "The database did not assign an ID")
	assert.True(suite.T(), expense.Amount.Equal(decimal.NewFromFloat(42.17)))
}

// TestExpenseDateDefault verifies that the date defaults to the submission
// time when it is not set.
func (suite *TestSuiteStandard) TestExpenseDateDefault() {
	expense := suite.createTestExpense(models.Expense{})

	assert.False(suite.T(), expense.Date.IsZero(), "Date was not defaulted")
	assert.LessOrEqual(suite.T(), time.Since(expense.Date), time.Minute, "Defaulted date is not recent: %s", expense.Date)
	assert.Equal(suite.T(), time.UTC, expense.Date.Location(), "Date is not in UTC")
}

func (suite *TestSuiteStandard) TestExpenseDateUTC() {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		suite.T().Skip("tzdata is not available")
	}

	expense := suite.createTestExpense(models.Expense{
		Date: time.Date(2023, 7, 14, 12, 0, 0, 0, berlin),
	})

	assert.Equal(suite.T(), time.UTC, expense.Date.Location())

	var dbExpense models.Expense
	err = models.DB.First(&dbExpense, expense.ID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), time.UTC, dbExpense.Date.Location())
}

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	expense := suite.createTestExpense(models.Expense{
		Item:        " Takeout  ",
		PaidTo:      "\tNoodle place ",
		Category:    " food ",
		Description: " ordered too much again\n",
	})

	assert.Equal(suite.T(), "Takeout", expense.Item)
	assert.Equal(suite.T(), "Noodle place", expense.PaidTo)
	assert.Equal(suite.T(), "food", expense.Category)
	assert.Equal(suite.T(), "ordered too much again", expense.Description)
}

func (suite *TestSuiteStandard) TestExpenseAmountNegative() {
	err := models.DB.Create(&models.Expense{
		Item:     "Refund",
		Amount:   decimal.NewFromFloat(-12.34),
		PaidTo:   "Nobody",
		Category: "errors",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrExpenseAmountNegative)

	var count int64
	models.DB.Model(&models.Expense{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "No record may be written when the amount is rejected")
}

// TestExpenseBulkInsert verifies that a trusted caller can add records
// directly through the database handle, e.g. for test setup.
func (suite *TestSuiteStandard) TestExpenseBulkInsert() {
	for i := 0; i < 100; i++ {
		_ = suite.createTestExpense(models.Expense{})
	}

	var count int64
	err := models.DB.Model(&models.Expense{}).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(100), count)
}

func (suite *TestSuiteStandard) TestExpenseNotFound() {
	var expense models.Expense
	err := models.DB.First(&expense, 194850943165).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.True(suite.T(), strings.Contains(err.Error(), "there is no expense"), "Error message is not user friendly: %s", err)
}
