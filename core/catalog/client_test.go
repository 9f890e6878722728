package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitinventory/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return catalog.NewClient(catalog.Config{BaseURL: srv.URL, TimeoutSeconds: 5})
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalog/search", r.URL.Path)
		assert.Equal(t, "653", r.URL.Query().Get("category"))
		assert.Equal(t, "Universal 4", r.URL.Query().Get("text"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"OK","results":[{"ticket_id":"548885","title":"Universal 4"}]}`)
	})

	resp, err := client.Search(context.Background(), "653", "Universal 4")
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusOK, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "548885", resp.Results[0].TicketID)
}

func TestClient_PartsList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalog/partslist/548885", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"OK","cPages":3,"results":[{"ticket_id":"10","ft_count":"4"}]}`)
	})

	resp, err := client.PartsList(context.Background(), 548885, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.CPages)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "4", resp.Results[0].Count)
}

func TestClient_HTTPErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "653", "x")
	assert.ErrorContains(t, err, "500")

	_, err = client.PartsList(context.Background(), 1, 1)
	assert.ErrorContains(t, err, "500")
}

func TestClient_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":`)
	})

	_, err := client.PartsList(context.Background(), 1, 1)
	assert.Error(t, err)
}

func TestClient_ContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "653", "x")
	assert.Error(t, err)
}
