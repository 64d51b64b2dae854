package phonecheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Validator is the pluggable external phone-existence check gated by the
// VALIDATE_PHONE flag.
type Validator interface {
	Validate(ctx context.Context, phone, countryCode string) (bool, error)
}

const defaultBaseURL = "http://apilayer.net/api/validate"

type NumVerifyClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewNumVerifyClient(apiKey string) *NumVerifyClient {
	return &NumVerifyClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type numVerifyResponse struct {
	Success *bool `json:"success"`
	Valid   bool  `json:"valid"`
}

func (c *NumVerifyClient) Validate(ctx context.Context, phone, countryCode string) (bool, error) {
	query := url.Values{}
	query.Set("access_key", c.apiKey)
	query.Set("number", phone)
	query.Set("country_code", countryCode)
	query.Set("format", "1")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s?%s", c.baseURL, query.Encode()),
		nil,
	)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, errors.New("phone validation returned non-2xx")
	}

	var body numVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}

	// A API devolve success=false quando o pedido em si falhou.
	if body.Success != nil && !*body.Success {
		return false, errors.New("phone validation request rejected")
	}

	return body.Valid, nil
}
