package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

type UserHandler struct {
	svc port.AccountService
}

func NewUserHandler(svc port.AccountService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me returns the profile of the authenticated caller.
func (u *UserHandler) Me(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	user, err := u.svc.GetAccount(c.Request.Context(), callerID)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}

func (u *UserHandler) GetByID(c *gin.Context) {
	user, err := u.svc.GetAccount(c.Request.Context(), c.Param("id"))

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}
