package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"voltswap_client/internal/middleware"
	"voltswap_client/internal/validate"
)

func (a *API) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	acc, err := a.Store.Authenticate(body.Email, body.Password)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := middleware.GenerateToken(a.Secret, acc.ID, acc.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not generate token"})
		return
	}

	ok(c, http.StatusOK, gin.H{"token": token, "user": acc})
}

func (a *API) Register(c *gin.Context) {
	var form validate.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	acc, err := a.Store.CreateAccount(form)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, acc)
}

func (a *API) RequestOTP(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	ch, err := a.Store.IssueOTP(body.Email)
	if err != nil {
		fail(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"email": body.Email, "code": ch.Code}).Info("OTP issued")

	ok(c, http.StatusOK, nil)
}

func (a *API) VerifyOTP(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required,len=6"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := a.Store.VerifyOTP(body.Email, body.OTP); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, nil)
}

func (a *API) ForgotPassword(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := a.Store.IssueResetToken(body.Email)
	if err != nil {
		fail(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"email": body.Email, "token": token}).Info("reset token issued")

	ok(c, http.StatusOK, nil)
}

func (a *API) ResetPassword(c *gin.Context) {
	var body struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := a.Store.ResetPassword(body.Token, body.Password); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, nil)
}
