package workout

import (
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
// @Summary      Log a workout
// @Description  Creates a workout entry. Free-tier accounts are limited to 5 workouts per trailing 7 days; premium and above also get an AI mood insight attached when available.
// @Tags         workouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Workout data"
// @Success      201      {object}  Workout
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  api.UpgradeRequiredResponse
// @Failure      500      {object}  gin.H
// @Router       /workouts [post]
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary      List workouts
// @Description  Returns the current user's workouts, newest first.
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Page size (default 50)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {array}   Workout
// @Failure      401     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /workouts [get]
func (h *Handler) List(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	workouts, err := h.service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workouts"})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// Delete godoc
// @Summary      Delete a workout
// @Description  Removes one of the current user's workouts.
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Param        workoutID  path      int  true  "Workout ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /workouts/{workoutID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workoutID, err := strconv.Atoi(c.Param("workoutID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, workoutID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Workout deleted"})
}
