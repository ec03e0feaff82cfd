package routes_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjamingraedig-oviva/cache-control-demo/internal/http/routes"
)

// TestSmokeTest walks the demo the way a revalidating cache would: fetch,
// store the validators, revalidate, invalidate, revalidate again.
func TestSmokeTest(t *testing.T) {
	s := routes.New(routes.ServerOptions{})
	srv := httptest.NewServer(s.Router)
	defer srv.Close()

	client := srv.Client()

	// initial fetch carries both validators
	res, err := client.Get(srv.URL + "/combined-strategy")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	etag := res.Header.Get("ETag")
	lastModified := res.Header.Get("Last-Modified")
	require.NotEmpty(t, etag)
	require.NotEmpty(t, lastModified)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "combined-strategy", body["cacheStrategy"])

	// revalidation succeeds, representation unchanged
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/combined-strategy", nil)
	require.NoError(t, err)
	req.Header.Set("If-None-Match", etag)

	res, err = client.Do(req)
	require.NoError(t, err)
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusNotModified, res.StatusCode)
	require.Empty(t, b)

	// an update invalidates the stored validators
	res, err = client.Get(srv.URL + "/update-data")
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, err = client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEqual(t, etag, res.Header.Get("ETag"))
}
