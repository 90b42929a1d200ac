package models_test

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/directory/does/not/exist/database")
	assert.NotNil(suite.T(), err, "Connecting with an invalid path must fail")
}

// TestDatabaseClosed verifies that queries against a closed database
// return the general error instead of leaking driver internals.
func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	var expenses []models.Expense
	err := models.DB.Find(&expenses).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
