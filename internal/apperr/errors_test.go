package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{"invalid request", InvalidRequest("bad"), http.StatusBadRequest},
		{"configuration", Configuration("missing key"), http.StatusInternalServerError},
		{"upstream mirrors status", Upstream("up", http.StatusTooManyRequests, nil, nil), http.StatusTooManyRequests},
		{"upstream without error status", Upstream("up", http.StatusOK, nil, nil), http.StatusBadGateway},
		{"delivery", Delivery("send", errors.New("smtp down")), http.StatusInternalServerError},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		orig := Configuration("API key not configured")
		got := From(fmt.Errorf("reply: %w", orig))
		assert.Same(t, orig, got)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		cause := errors.New("dial tcp: timeout")
		got := From(cause)
		require.NotNil(t, got)
		assert.Equal(t, KindInternal, got.Kind)
		assert.Equal(t, "Internal server error", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("submit: %w", Delivery("Failed to send email", errors.New("550")))
	assert.True(t, IsKind(err, KindDelivery))
	assert.False(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(errors.New("x"), KindDelivery))
}

func TestClientFault(t *testing.T) {
	assert.True(t, InvalidRequest("x").ClientFault())
	assert.False(t, Internal(nil).ClientFault())
}
