package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

// HTTPRefresher calls the unauthenticated refresh endpoint. The refresh secret
// travels as an HttpOnly cookie held by Client's cookie jar.
type HTTPRefresher struct {
	BaseURL string
	Client  *http.Client
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

func (r *HTTPRefresher) Refresh(ctx context.Context) (string, error) {
	url := strings.TrimRight(r.BaseURL, "/") + "/api/auth/refresh"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body refreshResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != http.StatusOK {
		return "", &domain.RemoteError{Status: resp.StatusCode, Message: body.Message}
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode refresh response: %w", decodeErr)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("refresh response carried no access token")
	}
	return body.AccessToken, nil
}
