package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticResolverReturnsFixedMapping(t *testing.T) {
	r := NewStaticResolver()

	resolution, err := r.Resolve(context.Background(), "0101901234")
	require.NoError(t, err)
	require.True(t, resolution.Success)
	require.Equal(t, "SW001", resolution.SwitchNumber)
	require.Equal(t, "P001", resolution.PortNumber)
}

func TestHTTPResolverDecodesResponse(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"switch_number":"SW042","port_number":"P007","success":true,"message":"Success"}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, srv.Client(), zap.NewNop())
	resolution, err := r.Resolve(context.Background(), "0101901234")
	require.NoError(t, err)
	require.Equal(t, "/switch-port/0101901234", gotPath)
	require.Equal(t, "SW042", resolution.SwitchNumber)
	require.Equal(t, "P007", resolution.PortNumber)
	require.True(t, resolution.Success)
}

func TestHTTPResolverPassesThroughNoMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"switch_number":"","port_number":"","success":false,"message":"no mapping for identifier"}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, srv.Client(), zap.NewNop())
	resolution, err := r.Resolve(context.Background(), "0101901234")
	require.NoError(t, err)
	require.False(t, resolution.Success)
	require.Equal(t, "no mapping for identifier", resolution.Message)
}

func TestHTTPResolverFailsOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, srv.Client(), zap.NewNop())
	_, err := r.Resolve(context.Background(), "0101901234")
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}
