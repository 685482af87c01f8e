package membership

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupHandlerRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := NewEngine(repo, staticDirectory{}, noopNotifier{})
	issuer := NewIssuer(repo, noopNotifier{})
	resolver := NewResolver(repo)
	handler := NewHandler(engine, issuer, resolver)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Set("user_email", "admin@fittrack.dev")
	})
	router.GET("/membership", handler.GetMembership)
	router.POST("/membership/redeem", handler.Redeem)
	router.POST("/membership/upgrade", handler.Upgrade)
	router.POST("/admin/keys", handler.GenerateKeys)
	router.POST("/admin/keys/:keyID/revoke", handler.RevokeKey)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlerRedeem_UnknownKeyIs404(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	repo.On("GetKeyByCode", mock.Anything, "PRO-DOESNOTEXIST").Return(nil, ErrKeyNotFound)

	w := postJSON(router, "/membership/redeem", RedeemRequest{Code: "PRO-DOESNOTEXIST"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var res Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, StatusRejected, res.Status)
	assert.Equal(t, RejectKeyNotFound, res.Reject)
	assert.False(t, res.Bypassable)
}

func TestHandlerRedeem_RevokedKeyIs410(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	repo.On("GetKeyByCode", mock.Anything, "PRO-REVOKEDKEY01").
		Return(&Key{ID: 1, Code: "PRO-REVOKEDKEY01", Tier: TierPro, DurationDays: 90, Revoked: true}, nil)

	w := postJSON(router, "/membership/redeem", RedeemRequest{Code: "PRO-REVOKEDKEY01"})
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestHandlerRedeem_UsedByOtherIs409Bypassable(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	other := 2
	repo.On("GetKeyByCode", mock.Anything, "PRO-CLAIMEDKEY01").
		Return(&Key{ID: 1, Code: "PRO-CLAIMEDKEY01", Tier: TierPro, DurationDays: 90, UsedBy: &other}, nil)

	w := postJSON(router, "/membership/redeem", RedeemRequest{Code: "PRO-CLAIMEDKEY01"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var res Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Bypassable)
}

func TestHandlerRedeem_FreshKeyApplied(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	key := &Key{ID: 1, Code: "PRO-FRESHKEY0001", Tier: TierPro, DurationDays: 90}
	repo.On("GetKeyByCode", mock.Anything, "PRO-FRESHKEY0001").Return(key, nil)
	repo.On("GetActiveMembership", mock.Anything, 1).Return(nil, ErrNoActiveMembership)
	repo.On("MarkKeyUsed", mock.Anything, "PRO-FRESHKEY0001", 1, false).Return(key, nil)
	repo.On("SupersedeMembership", mock.Anything, 1, TierPro, mock.Anything, &key.ID).
		Return(&Record{ID: 1, UserID: 1, Tier: TierPro, EndDate: time.Now().Add(90 * 24 * time.Hour), Active: true}, nil)

	w := postJSON(router, "/membership/redeem", RedeemRequest{Code: "PRO-FRESHKEY0001"})
	assert.Equal(t, http.StatusOK, w.Code)

	var res Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, StatusApplied, res.Status)
	assert.Equal(t, TierPro, res.Tier)
}

func TestHandlerUpgrade_BadTierRejectedByBinding(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	w := postJSON(router, "/membership/upgrade", UpgradeRequest{Tier: "platinum", Code: "PRO-FRESHKEY0001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "GetKeyByCode", mock.Anything, mock.Anything)
}

func TestHandlerGenerateKeys_InvalidBatchSize(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	w := postJSON(router, "/admin/keys", GenerateKeysRequest{Tier: "pro", DurationDays: 90, Count: 101})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "InsertKeys", mock.Anything, mock.Anything)
}

func TestHandlerGenerateKeys_Created(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	repo.On("InsertKeys", mock.Anything, mock.AnythingOfType("[]membership.Key")).
		Return([]Key{{ID: 1, Code: "PRE-AAAABBBBCCCCDDDD", Tier: TierPremium, DurationDays: 30}}, nil)

	w := postJSON(router, "/admin/keys", GenerateKeysRequest{Tier: "premium", DurationDays: 30, Count: 1})
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Count int   `json:"count"`
		Keys  []Key `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestHandlerRevokeKey_NotFound(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	repo.On("SetKeyRevoked", mock.Anything, 99).Return(false, nil)

	w := postJSON(router, "/admin/keys/99/revoke", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerGetMembership_IncludesTimeRemaining(t *testing.T) {
	repo := new(MockRepository)
	router := setupHandlerRouter(repo)

	repo.On("GetActiveMembership", mock.Anything, 1).
		Return(&Record{ID: 1, UserID: 1, Tier: TierPro, EndDate: time.Now().Add(10 * 24 * time.Hour), Active: true}, nil)

	req := httptest.NewRequest("GET", "/membership", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pro", body["tier"])
	assert.Equal(t, "10 days", body["time_remaining"])
}
