package abstractapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultEndpoint = "https://emailreputation.abstractapi.com/v1/"

// Enabled reports whether registration should consult the reputation service
// at all. When false, the local syntax validator is used instead.
func Enabled() bool {
	return os.Getenv("USE_EMAIL_REPUTATION") == "true"
}

// ReputationValidator screens registration emails through the Abstract
// reputation endpoint. Disposable addresses, role inboxes and addresses the
// service scores LOW are refused before an account is created.
type ReputationValidator struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewReputationValidator() (*ReputationValidator, error) {
	key := os.Getenv("ABSTRACT_EMAIL_API_KEY")
	if key == "" {
		return nil, errors.New("ABSTRACT_EMAIL_API_KEY not set")
	}
	return &ReputationValidator{
		apiKey:   key,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}, nil
}

type verdict struct {
	Reputation   string `json:"email_reputation"` // LOW, MEDIUM, HIGH
	IsDisposable bool   `json:"is_disposable_email"`
	IsRole       bool   `json:"is_role_email"`
}

func (v *ReputationValidator) Validate(ctx context.Context, email string) error {
	query := url.Values{}
	query.Set("api_key", v.apiKey)
	query.Set("email", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("email reputation lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email reputation service error: %s", resp.Status)
	}

	var result verdict
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("email reputation lookup: %w", err)
	}

	switch {
	case result.IsDisposable:
		return errors.New("disposable email is not allowed")
	case result.IsRole:
		return errors.New("role-based email is not allowed")
	case result.Reputation == "LOW":
		return errors.New("email reputation is too low")
	}
	return nil
}
