package controllers

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LoginRequest carries the credentials submitted to the login route.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"alice"` // Username to log in as
	Password string `json:"password" form:"password" binding:"required" example:"hunter2"` // Password for the user
}

type LoginResponse struct {
	Data  *LoginData `json:"data"`                                              // Data about the session
	Error *string    `json:"error" example:"the provided credentials are not valid"` // The error, if any occurred
}

type LoginData struct {
	Username string `json:"username" example:"alice"` // The logged-in username
}

// PostLogin returns the handler verifying submitted credentials against
// the gate and establishing the login session.
func PostLogin(gate auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var login LoginRequest
		err := httputil.BindData(c, &login)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), LoginResponse{
				Error: &e,
			})
			return
		}

		if err := gate.Verify(login.Username, login.Password); err != nil {
			e := err.Error()
			c.JSON(status(err), LoginResponse{
				Error: &e,
			})
			return
		}

		if err := auth.Login(c, login.Username); err != nil {
			log.Error().Err(err).Msg("login: session could not be saved")
			e := err.Error()
			c.JSON(http.StatusInternalServerError, LoginResponse{
				Error: &e,
			})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Data: &LoginData{
				Username: login.Username,
			},
		})
	}
}

// @Summary		Log out
// @Description	Removes the login state from the session
// @Tags			Session
// @Success		204
// @Router			/logout [post]
func PostLogout(c *gin.Context) {
	if err := auth.Logout(c); err != nil {
		log.Error().Err(err).Msg("logout: session could not be saved")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
