package membership

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fittrack/internal/auth"
)

// "membership_tier" accepts any case/whitespace variant of a known tier, so
// binding rejects bad tiers before the handler runs.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("membership_tier", func(fl validator.FieldLevel) bool {
			_, err := ParseTier(fl.Field().String())
			return err == nil
		})
	}
}

type Handler struct {
	engine   *Engine
	issuer   *Issuer
	resolver *Resolver
}

func NewHandler(engine *Engine, issuer *Issuer, resolver *Resolver) *Handler {
	return &Handler{engine: engine, issuer: issuer, resolver: resolver}
}

type RedeemRequest struct {
	Code       string `json:"code" binding:"required"`
	ForceApply bool   `json:"force_apply"`
}

type UpgradeRequest struct {
	Tier       string `json:"tier" binding:"required,membership_tier"`
	Code       string `json:"code" binding:"required"`
	ForceApply bool   `json:"force_apply"`
}

type GenerateKeysRequest struct {
	Tier         string `json:"tier" binding:"required,membership_tier"`
	DurationDays int    `json:"duration_days" binding:"required"`
	Count        int    `json:"count" binding:"required"`
}

// GetMembership godoc
// @Summary      Current membership
// @Description  Returns the effective tier and entitlements of the authenticated user.
// @Tags         membership
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Entitlement
// @Failure      401  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /membership [get]
func (h *Handler) GetMembership(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ent, err := h.resolver.Resolve(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve membership"})
		return
	}

	resp := gin.H{
		"tier":         ent.Tier,
		"entitlements": ent.Entitlements,
	}
	if ent.Record != nil {
		resp["expires_at"] = ent.Record.EndDate
		resp["remaining_days"] = RemainingDays(ent.Record)
		resp["time_remaining"] = FormatRemaining(ent.Record)
	}
	c.JSON(http.StatusOK, resp)
}

// Redeem godoc
// @Summary      Redeem a membership key
// @Description  Applies a membership key to the current user. Soft conflicts (key used by someone else, existing active subscription) come back bypassable; re-invoke with force_apply after user confirmation.
// @Tags         membership
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      RedeemRequest  true  "Key code and optional override flag"
// @Success      200      {object}  Result
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  Result
// @Failure      409      {object}  Result
// @Failure      410      {object}  Result
// @Failure      500      {object}  gin.H
// @Router       /membership/redeem [post]
func (h *Handler) Redeem(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.engine.Redeem(c.Request.Context(), userID, req.Code, req.ForceApply)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem key"})
		return
	}

	c.JSON(statusFor(res), res)
}

// Upgrade godoc
// @Summary      Upgrade to a specific tier
// @Description  Redeems a key for an explicitly requested tier. The key's tier must match exactly; an existing active subscription is replaced without a confirmation round-trip.
// @Tags         membership
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpgradeRequest  true  "Requested tier, key code and optional override flag"
// @Success      200      {object}  Result
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  Result
// @Failure      409      {object}  Result
// @Failure      410      {object}  Result
// @Failure      500      {object}  gin.H
// @Router       /membership/upgrade [post]
func (h *Handler) Upgrade(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, err := ParseTier(req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.engine.Upgrade(c.Request.Context(), userID, tier, req.Code, req.ForceApply)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade membership"})
		return
	}

	c.JSON(statusFor(res), res)
}

// GenerateKeys godoc
// @Summary      Issue membership keys
// @Description  Batch-generates keys sharing one tier and duration. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateKeysRequest  true  "Tier, duration in days, batch size"
// @Success      201      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/keys [post]
func (h *Handler) GenerateKeys(c *gin.Context) {
	var req GenerateKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, err := ParseTier(req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keys, err := h.issuer.Generate(c.Request.Context(), adminName(c), tier, req.DurationDays, req.Count)
	if err != nil {
		switch err {
		case ErrInvalidBatchSize, ErrInvalidTier, ErrInvalidDuration:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate keys"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"keys": keys, "count": len(keys)})
}

// RevokeKey godoc
// @Summary      Revoke a membership key
// @Description  Blocks all future applications of the key. Already-granted memberships are untouched. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        keyID  path      int  true  "Key ID"
// @Success      200    {object}  gin.H
// @Failure      400    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Failure      500    {object}  gin.H
// @Router       /admin/keys/{keyID}/revoke [post]
func (h *Handler) RevokeKey(c *gin.Context) {
	keyID, err := strconv.Atoi(c.Param("keyID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid key ID"})
		return
	}

	ok, err := h.issuer.Revoke(c.Request.Context(), adminName(c), keyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke key"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Key not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"revoked": true})
}

// ListKeys godoc
// @Summary      List membership keys
// @Description  Pages through issued keys, newest first. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Page size (default 50)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /admin/keys [get]
func (h *Handler) ListKeys(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	keys, err := h.issuer.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list keys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"keys": keys, "count": len(keys)})
}

func statusFor(res *Result) int {
	if res.Status != StatusRejected {
		return http.StatusOK
	}
	switch res.Reject {
	case RejectKeyNotFound:
		return http.StatusNotFound
	case RejectKeyRevoked:
		return http.StatusGone
	case RejectKeyAlreadyUsed:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func adminName(c *gin.Context) string {
	if email, ok := c.Get("user_email"); ok {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return "admin"
}
