package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voltswap_client/internal/api"
	"voltswap_client/internal/mockapi"
)

// API bundles the handlers of the development backend around one store.
type API struct {
	Store  *mockapi.Store
	Secret []byte
}

func New(store *mockapi.Store, jwtSecret string) *API {
	return &API{Store: store, Secret: []byte(jwtSecret)}
}

func ok(c *gin.Context, status int, payload interface{}) {
	body := gin.H{"success": true}
	if payload != nil {
		body["payload"] = payload
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, err error) {
	status := api.StatusOf(err)
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"success": false, "message": api.Message(err)})
}
