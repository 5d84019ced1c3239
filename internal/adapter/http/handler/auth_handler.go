package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
	"todoapi/pkg/metrics"
)

type AuthHandler struct {
	svc     port.AccountService
	metrics *metrics.AppMetrics
}

func NewAuthHandler(svc port.AccountService, m *metrics.AppMetrics) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		metrics: m,
	}
}

func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindParams[request.SignUpRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, err := a.svc.Register(ctx, &params)

	if err != nil {
		slog.Error("Auth#Register", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	a.metrics.RecordUserOperation("register")

	helper.SendSuccess(c, http.StatusCreated, response.NewUserResponse(user))
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindParams[request.LoginRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, token, err := a.svc.Login(ctx, &params)

	if err != nil {
		slog.Error("Auth#Login", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	a.metrics.RecordUserOperation("login")

	c.JSON(http.StatusOK, response.LoginResponse{
		User:        response.NewUserResponse(user),
		AccessToken: token,
		TokenType:   "bearer",
	})
}
