package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/controllers"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLogin() {
	r := test.Request(suite.T(), http.MethodPost, "/login", controllers.LoginRequest{
		Username: testUsername,
		Password: testPassword,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.LoginResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.NotNil(suite.T(), response.Data) {
		assert.Equal(suite.T(), testUsername, response.Data.Username)
	}

	assert.NotEmpty(suite.T(), r.Result().Cookies(), "Login did not establish a session cookie")
}

// TestLoginForm verifies that the login route accepts an HTML form
// submission.
func (suite *TestSuiteStandard) TestLoginForm() {
	form := url.Values{}
	form.Set("username", testUsername)
	form.Set("password", testPassword)

	r := test.Request(suite.T(), http.MethodPost, "/login", form.Encode(), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestLoginFailures verifies that all failed credential checks result in
// the same response, no matter which value was wrong.
func (suite *TestSuiteStandard) TestLoginFailures() {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"Wrong username", "notme", testPassword},
		{"Wrong password", testUsername, "wrong"},
		{"Both wrong", "notme", "wrong"},
		{"Empty password", testUsername, " "},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "/login", controllers.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			var response controllers.LoginResponse
			test.DecodeResponse(t, &r, &response)

			assert.Nil(t, response.Data)
			if assert.NotNil(t, response.Error) {
				assert.Equal(t, auth.ErrUnauthorized.Error(), *response.Error, "The error must not reveal which credential was wrong")
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLoginMissingFields() {
	tests := []struct {
		name string
		body string
	}{
		{"No username", `{ "password": "foobar" }`},
		{"No password", `{ "username": "testme" }`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "/login", tt.body, map[string]string{
				"Content-Type": "application/json",
			})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestLogout verifies that a session does not grant access to the create
// route anymore after logging out.
func (suite *TestSuiteStandard) TestLogout() {
	headers := suite.login()

	r := test.Request(suite.T(), http.MethodPost, "/logout", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The logout response carries the cleared session cookie
	headers = test.CookieHeaders(&r)

	r = test.Request(suite.T(), http.MethodPost, "/new-expense", controllers.ExpenseEditable{
		Item:     "test item",
		Amount:   decimal.NewFromFloat(1),
		PaidTo:   "test recipient",
		Category: "test category",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	assert.Equal(suite.T(), int64(0), suite.expenseCount())
}

// TestSessionGrantsAccess is the full flow: anonymous submission is
// denied, login succeeds, the same submission is accepted.
func (suite *TestSuiteStandard) TestSessionGrantsAccess() {
	expense := controllers.ExpenseEditable{
		Item:     "test item",
		Amount:   decimal.NewFromFloat(1234.56),
		PaidTo:   "test recipient",
		Category: "test category",
	}

	r := test.Request(suite.T(), http.MethodPost, "/new-expense", expense)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	headers := suite.login()

	r = test.Request(suite.T(), http.MethodPost, "/new-expense", expense, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var count int64
	err := models.DB.Model(&models.Expense{}).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)
}
