package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voltswap_client/internal/middleware"
	"voltswap_client/internal/validate"
)

func (a *API) ListVehicles(c *gin.Context) {
	accountID := middleware.AccountID(c)

	vehicles := a.Store.VehiclesByAccount(accountID)
	ok(c, http.StatusOK, vehicles)
}

func (a *API) CreateVehicle(c *gin.Context) {
	var form validate.VehicleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle input: " + err.Error()})
		return
	}

	accountID := middleware.AccountID(c)

	vehicle, err := a.Store.CreateVehicle(accountID, form)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, vehicle)
}

func (a *API) UpdateVehicle(c *gin.Context) {
	var form validate.VehicleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle input: " + err.Error()})
		return
	}

	accountID := middleware.AccountID(c)
	id := c.Param("id")

	vehicle, err := a.Store.UpdateVehicle(accountID, id, form)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, vehicle)
}

func (a *API) DeleteVehicle(c *gin.Context) {
	accountID := middleware.AccountID(c)
	id := c.Param("id")

	if err := a.Store.DeleteVehicle(accountID, id); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, nil)
}

func (a *API) ListVehicleModels(c *gin.Context) {
	ok(c, http.StatusOK, a.Store.VehicleModels())
}
