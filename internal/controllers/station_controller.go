package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ListStations(c *gin.Context) {
	ok(c, http.StatusOK, a.Store.Stations())
}

func (a *API) GetStation(c *gin.Context) {
	st, err := a.Store.StationByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, st)
}
