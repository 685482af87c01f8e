package goal

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fittrack/internal/api"
	"fittrack/internal/auth"
	"fittrack/internal/membership"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Create a goal
// @Description  Creates a fitness goal. Each tier caps the number of active (non-completed) goals; elite has no cap.
// @Tags         goals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Goal data"
// @Success      201      {object}  Goal
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  api.UpgradeRequiredResponse
// @Failure      500      {object}  gin.H
// @Router       /goals [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		var denial *membership.Denial
		if errors.As(err, &denial) {
			c.JSON(http.StatusForbidden, api.UpgradeRequiredResponse{
				Error:           denial.Message,
				Reason:          string(denial.Reason),
				UpgradeRequired: true,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary      List goals
// @Description  Returns the current user's goals, active first.
// @Tags         goals
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Goal
// @Failure      401  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /goals [get]
func (h *Handler) List(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goals, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Complete godoc
// @Summary      Complete a goal
// @Description  Marks a goal completed, freeing a slot against the tier's active goal limit.
// @Tags         goals
// @Security     BearerAuth
// @Produce      json
// @Param        goalID  path      int  true  "Goal ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  gin.H
// @Failure      404     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /goals/{goalID}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	h.mutate(c, h.service.Complete, "Goal completed")
}

// Delete godoc
// @Summary      Delete a goal
// @Description  Removes one of the current user's goals.
// @Tags         goals
// @Security     BearerAuth
// @Produce      json
// @Param        goalID  path      int  true  "Goal ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  gin.H
// @Failure      404     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /goals/{goalID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	h.mutate(c, h.service.Delete, "Goal deleted")
}

func (h *Handler) mutate(c *gin.Context, op func(ctx context.Context, userID, goalID int) error, message string) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goalID, err := strconv.Atoi(c.Param("goalID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID"})
		return
	}

	if err := op(c.Request.Context(), userID, goalID); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: message})
}
