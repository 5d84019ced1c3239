package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
	"todoapi/pkg/metrics"
)

type TodoHandler struct {
	svc     port.TodoService
	metrics *metrics.AppMetrics
}

func NewTodoHandler(svc port.TodoService, m *metrics.AppMetrics) *TodoHandler {
	return &TodoHandler{
		svc:     svc,
		metrics: m,
	}
}

func (t *TodoHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	callerID := c.GetString(middleware.ContextUserID)

	params, err := util.BindParams[request.CreateTodoRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Create(ctx, callerID, &params)

	if err != nil {
		slog.Error("Todo#Create", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	t.metrics.RecordTodoOperation("create")

	helper.SendSuccess(c, http.StatusCreated, response.NewTodoResponse(todo))
}

// List returns the caller's todos; ?status=completed|pending narrows
// the result.
func (t *TodoHandler) List(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	todos, err := t.svc.ListForUser(c.Request.Context(), callerID, c.Query("status"))

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, response.NewTodoListResponse(todos))
}

func (t *TodoHandler) Get(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	todo, err := t.svc.Get(c.Request.Context(), c.Param("id"), callerID)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo))
}

func (t *TodoHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	callerID := c.GetString(middleware.ContextUserID)

	params, err := util.BindParams[request.UpdateTodoRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Update(ctx, c.Param("id"), callerID, &params)

	if err != nil {
		slog.Error("Todo#Update", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	t.metrics.RecordTodoOperation("update")

	helper.SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo))
}

func (t *TodoHandler) Complete(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	todo, err := t.svc.Complete(c.Request.Context(), c.Param("id"), callerID)

	if err != nil {
		slog.Error("Todo#Complete", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	t.metrics.RecordTodoOperation("complete")

	helper.SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo))
}

func (t *TodoHandler) Delete(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	if err := t.svc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		helper.SendDomainError(c, err)
		return
	}

	t.metrics.RecordTodoOperation("delete")

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted successfully",
	})
}
