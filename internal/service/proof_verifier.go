package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/taskstars/pkg/entity"
)

type proofResponse struct {
	IsVerified  bool     `json:"isVerified"`
	Confidence  float64  `json:"confidence"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// HTTPProofVerifier calls the photo analysis service over HTTP.
type HTTPProofVerifier struct {
	url    string
	client *http.Client
}

func NewHTTPProofVerifier(url string, timeout time.Duration) *HTTPProofVerifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProofVerifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (v *HTTPProofVerifier) Verify(ctx context.Context, req *ProofRequest) (*entity.Verification, error) {
	if req == nil || req.PhotoURL == "" {
		return nil, errors.New("proof verification needs a photo")
	}
	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, errors.New("encoding proof request error: " + err.Error())
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("building proof request error: " + err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := v.client.Do(httpReq)
	if err != nil {
		return nil, errors.New("proof verifier request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("proof verifier returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	var out proofResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.New("decoding proof response error: " + err.Error())
	}
	confidence := out.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return &entity.Verification{
		IsVerified:  out.IsVerified,
		Confidence:  confidence,
		Feedback:    out.Feedback,
		Suggestions: out.Suggestions,
	}, nil
}

// NoopProofVerifier is used when no analysis service is configured.
type NoopProofVerifier struct{}

func (NoopProofVerifier) Verify(context.Context, *ProofRequest) (*entity.Verification, error) {
	return nil, nil
}
