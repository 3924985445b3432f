package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBooking serves the kiosk's booking-mode QR lookup. Validation
// (station match, expiry, status) happens in the kiosk flow controller,
// not here: the endpoint only resolves the scanned id.
func (a *API) GetBooking(c *gin.Context) {
	b, err := a.Store.BookingByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, b)
}
