package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeMood(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ctx WorkoutContext
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ctx))
		assert.Equal(t, "running", ctx.Type)

		json.NewEncoder(w).Encode(insightResponse{Insight: "Strong effort, keep the streak going."})
	}))
	defer srv.Close()

	client := New(srv.URL)
	got, err := client.SummarizeMood(context.Background(), WorkoutContext{
		Type:            "running",
		DurationMinutes: 30,
		Intensity:       "high",
	})
	require.NoError(t, err)
	assert.Equal(t, "Strong effort, keep the streak going.", got)
}

func TestSummarizeMood_NotConfigured(t *testing.T) {
	client := New("")
	_, err := client.SummarizeMood(context.Background(), WorkoutContext{Type: "yoga"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSummarizeMood_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.SummarizeMood(context.Background(), WorkoutContext{Type: "yoga"})
	assert.Error(t, err)
}
