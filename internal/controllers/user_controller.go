package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voltswap_client/internal/middleware"
)

func (a *API) Profile(c *gin.Context) {
	accountID := middleware.AccountID(c)

	acc, err := a.Store.AccountByID(accountID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, acc)
}

func (a *API) UpdateProfile(c *gin.Context) {
	var body struct {
		Fullname string `json:"fullname"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	accountID := middleware.AccountID(c)

	acc, err := a.Store.UpdateAccount(accountID, body.Fullname, body.Phone)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, acc)
}

// AccountByID serves the kiosk's user-mode QR lookup.
func (a *API) AccountByID(c *gin.Context) {
	acc, err := a.Store.AccountByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, acc)
}
