package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/taskstars/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProofVerifier(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req service.ProofRequest
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch req.TaskTitle {
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		case "overconfident":
			w.Write([]byte(`{"isVerified":true,"confidence":1.7,"feedback":"great"}`))
		default:
			w.Write([]byte(`{"isVerified":true,"confidence":0.82,"feedback":"bed looks made","suggestions":["fluff the pillow"]}`))
		}
	}))
	defer srv.Close()
	verifier := service.NewHTTPProofVerifier(srv.URL, time.Second)
	ctx := context.Background()

	t.Run("verified", func(t *testing.T) {
		v, err := verifier.Verify(ctx, &service.ProofRequest{TaskTitle: "Make your bed", ChildAge: 8, PhotoURL: "https://img/1.jpg"})
		require.NoError(t, err)
		assert.True(t, v.IsVerified)
		assert.InDelta(t, 0.82, v.Confidence, 1e-9)
		assert.Equal(t, []string{"fluff the pillow"}, v.Suggestions)
	})
	t.Run("confidence is clamped", func(t *testing.T) {
		v, err := verifier.Verify(ctx, &service.ProofRequest{TaskTitle: "overconfident", PhotoURL: "https://img/1.jpg"})
		require.NoError(t, err)
		assert.Equal(t, 1.0, v.Confidence)
	})
	t.Run("upstream error", func(t *testing.T) {
		_, err := verifier.Verify(ctx, &service.ProofRequest{TaskTitle: "broken", PhotoURL: "https://img/1.jpg"})
		assert.ErrorContains(t, err, "502")
	})
	t.Run("no photo", func(t *testing.T) {
		_, err := verifier.Verify(ctx, &service.ProofRequest{TaskTitle: "Make your bed"})
		assert.Error(t, err)
	})
}

func TestNoopProofVerifier(t *testing.T) {
	t.Parallel()
	v, err := service.NoopProofVerifier{}.Verify(context.Background(), &service.ProofRequest{})
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateProviderUsesLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+3", 3*60*60)
	clock := service.NewFixedClock(time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC))
	dates := service.NewDateProvider(clock, loc)
	assert.Equal(t, "2025-03-11", dates.Today().String())

	clock.Set(time.Date(2025, 3, 10, 20, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-10", dates.Today().String())
}
