package abstractapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator(handler http.HandlerFunc) (*ReputationValidator, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &ReputationValidator{
		apiKey:   "test-key",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: time.Second},
	}, srv
}

func TestValidateAcceptsCleanAddress(t *testing.T) {
	v, srv := testValidator(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "awa@example.com", r.URL.Query().Get("email"))
		w.Write([]byte(`{"email_reputation":"HIGH","is_disposable_email":false,"is_role_email":false}`))
	})
	defer srv.Close()

	require.NoError(t, v.Validate(context.Background(), "awa@example.com"))
}

func TestValidateRejectsDisposable(t *testing.T) {
	v, srv := testValidator(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email_reputation":"HIGH","is_disposable_email":true}`))
	})
	defer srv.Close()

	err := v.Validate(context.Background(), "x@mailinator.com")
	assert.EqualError(t, err, "disposable email is not allowed")
}

func TestValidateRejectsLowReputation(t *testing.T) {
	v, srv := testValidator(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email_reputation":"LOW"}`))
	})
	defer srv.Close()

	err := v.Validate(context.Background(), "x@example.com")
	assert.EqualError(t, err, "email reputation is too low")
}

func TestValidateServiceError(t *testing.T) {
	v, srv := testValidator(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	assert.Error(t, v.Validate(context.Background(), "x@example.com"))
}
