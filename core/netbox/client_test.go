package netbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{URL: srv.URL, PageSize: 2, AuthScheme: "Token"}, "secret", nil)
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{URL: ""}, "token", nil)
	assert.Error(t, err)

	_, err = NewClient(Config{URL: "https://netbox.example.com"}, "", nil)
	assert.Error(t, err)

	c, err := NewClient(Config{URL: "https://netbox.example.com/api/"}, "token", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://netbox.example.com", c.baseURL)
	assert.Equal(t, 1000, c.pageSize)
	assert.Equal(t, "Token", c.scheme)
}

func TestSanitizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"https://nb.example.com":       "https://nb.example.com",
		"https://nb.example.com/":      "https://nb.example.com",
		" https://nb.example.com/api ": "https://nb.example.com",
		"https://nb.example.com/api/":  "https://nb.example.com",
		"https://nb.example.com/nb":    "https://nb.example.com/nb",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeBaseURL(in), in)
	}
}

func TestListDevices_FollowsPagination(t *testing.T) {
	var calls int32
	var client *APIClient
	client = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api/dcim/devices/", r.URL.Path)
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			next := client.baseURL + "/api/dcim/devices/?limit=2&offset=2"
			_, _ = fmt.Fprintf(w, `{"count":3,"next":%q,"results":[{"id":1,"name":"sw1"},{"id":2,"name":"sw2"}]}`, next)
			return
		}
		assert.Equal(t, "2", r.URL.Query().Get("offset"))
		_, _ = io.WriteString(w, `{"count":3,"next":null,"results":[{"id":3,"name":null,"display":"Unnamed device"}]}`)
	})

	devices, err := client.ListDevices(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, devices, 3)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, "sw1", devices[0].DisplayName())
	assert.Equal(t, "Unnamed device", devices[2].DisplayName())
}

func TestListPrefixes_PassesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ipam/prefixes/", r.URL.Path)
		assert.Equal(t, "10.1.", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `{"count":0,"next":null,"results":[]}`)
	})

	prefixes, err := client.ListPrefixes(context.Background(), Search("10.1."))
	require.NoError(t, err)
	assert.NotNil(t, prefixes)
	assert.Empty(t, prefixes)
}

func TestList_ErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"detail":"Invalid token"}`)
	})

	_, err := client.ListVLANs(context.Background(), nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "Invalid token")
}

func TestList_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"count":0,"next":null,"results":[]}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListCircuits(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdateDevice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/dcim/devices/42/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new-name", body["name"])

		_, _ = io.WriteString(w, `{"id":42,"name":"new-name"}`)
	})

	device, err := client.UpdateDevice(context.Background(), 42, map[string]any{"name": "new-name"})
	require.NoError(t, err)
	assert.Equal(t, 42, device.ID)
	assert.Equal(t, "new-name", device.DisplayName())
}

func TestDeleteDevices_Bulk(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/dcim/devices/", r.URL.Path)

		var body []map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []map[string]int{{"id": 1}, {"id": 2}}, body)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteDevices(context.Background(), []int{1, 2}))
}

func TestDeleteIPAddresses_EmptyIsNoop(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL)
	})

	assert.NoError(t, client.DeleteIPAddresses(context.Background(), nil))
}
