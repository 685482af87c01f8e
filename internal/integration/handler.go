package integration

import (
	"errors"
	"net/http"

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

// ConnectGym godoc
// @Summary      Connect the partner gym
// @Description  Issues a Planet Fitness member card. Requires a premium membership or above.
// @Tags         integrations
// @Security     BearerAuth
// @Produce      json
// @Success      201  {object}  GymCard
// @Failure      403  {object}  api.UpgradeRequiredResponse
// @Failure      500  {object}  gin.H
// @Router       /integrations/gym/connect [post]
func (h *Handler) ConnectGym(c *gin.Context) {
	h.respond(c, http.StatusCreated, func(userID int) (interface{}, error) {
		return h.service.ConnectGym(c.Request.Context(), userID)
	})
}

// GymCard godoc
// @Summary      View the partner gym card
// @Tags         integrations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  GymCard
// @Failure      403  {object}  api.UpgradeRequiredResponse
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /integrations/gym/card [get]
func (h *Handler) GymCard(c *gin.Context) {
	h.respond(c, http.StatusOK, func(userID int) (interface{}, error) {
		return h.service.GetGymCard(c.Request.Context(), userID)
	})
}

// GymAnalytics godoc
// @Summary      Gym visit analytics
// @Description  Visit statistics for the connected gym. Requires a pro membership or above.
// @Tags         integrations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  GymAnalytics
// @Failure      403  {object}  api.UpgradeRequiredResponse
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /integrations/gym/analytics [get]
func (h *Handler) GymAnalytics(c *gin.Context) {
	h.respond(c, http.StatusOK, func(userID int) (interface{}, error) {
		return h.service.GetGymAnalytics(c.Request.Context(), userID)
	})
}

// ConnectFitness godoc
// @Summary      Connect a fitness tracker
// @Description  Links Apple Fitness to the account. Requires a premium membership or above.
// @Tags         integrations
// @Security     BearerAuth
// @Produce      json
// @Success      201  {object}  Connection
// @Failure      403  {object}  api.UpgradeRequiredResponse
// @Failure      500  {object}  gin.H
// @Router       /integrations/fitness/connect [post]
func (h *Handler) ConnectFitness(c *gin.Context) {
	h.respond(c, http.StatusCreated, func(userID int) (interface{}, error) {
		return h.service.ConnectFitness(c.Request.Context(), userID)
	})
}

// SyncFitness godoc
// @Summary      Sync tracker activity
// @Description  Pulls the last week of activity from the connected tracker. Premium gets steps; pro and above also get heart rate and calories.
// @Tags         integrations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  SyncResult
// @Failure      403  {object}  api.UpgradeRequiredResponse
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /integrations/fitness/sync [post]
func (h *Handler) SyncFitness(c *gin.Context) {
	h.respond(c, http.StatusOK, func(userID int) (interface{}, error) {
		return h.service.SyncFitness(c.Request.Context(), userID)
	})
}

func (h *Handler) respond(c *gin.Context, status int, op func(userID int) (interface{}, error)) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	payload, err := op(userID)
	if err != nil {
		var denial *membership.Denial
		switch {
		case errors.As(err, &denial):
			c.JSON(http.StatusForbidden, api.UpgradeRequiredResponse{
				Error:           denial.Message,
				Reason:          string(denial.Reason),
				UpgradeRequired: true,
			})
		case errors.Is(err, ErrNotConnected):
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not connected"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Integration request failed"})
		}
		return
	}

	c.JSON(status, payload)
}
