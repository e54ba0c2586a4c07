package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ganot/segboard/internal/dashboard"
	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/domain/segment"
	"github.com/ganot/segboard/internal/repository"
	"github.com/ganot/segboard/internal/repository/mocks"
	"github.com/ganot/segboard/internal/transport"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, records []dataset.CustomerRecord, loadErr error) *httptest.Server {
	t.Helper()
	source := &mocks.DatasetSource{}
	source.On("Load", mock.Anything).Return(records, loadErr)
	store := dataset.NewStore(source, nil)
	svc := dashboard.NewService(store, segment.NewService(nil), nil)

	server := httptest.NewServer(transport.NewServer(svc, nil))
	t.Cleanup(server.Close)
	return server
}

func testRecords() []dataset.CustomerRecord {
	return []dataset.CustomerRecord{
		{CustomerID: "1", Cluster: "3", Recency: 10, Frequency: 12, Monetary: 5000},
		{CustomerID: "2", Cluster: "1", Recency: 40, Frequency: 5, Monetary: 1500},
		{CustomerID: "3", Cluster: "1", Recency: 50, Frequency: 4, Monetary: 1200},
	}
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, testRecords(), nil)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetPersonas(t *testing.T) {
	server := newTestServer(t, testRecords(), nil)

	resp, err := http.Get(server.URL + "/api/personas")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Personas []string `json:"personas"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, []string{"High-Value Champions 🏆", "Loyal & Regular 🌟"}, body.Personas)
}

func TestGetDashboardAllPersonas(t *testing.T) {
	server := newTestServer(t, testRecords(), nil)

	resp, err := http.Get(server.URL + "/api/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view dashboard.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	require.Len(t, view.KPIs, 3)
	require.Equal(t, 3.0, view.KPIs[0].Value)
	require.Len(t, view.Summary.Rows, 2)
	require.Len(t, view.Charts, 3)
	require.NotNil(t, view.Scatter)
}

func TestGetDashboardFiltered(t *testing.T) {
	server := newTestServer(t, testRecords(), nil)

	resp, err := http.Get(server.URL + "/api/dashboard?personas=" + "Loyal+%26+Regular+%F0%9F%8C%9F")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view dashboard.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	require.Equal(t, 2.0, view.KPIs[0].Value)
	require.Len(t, view.Summary.Rows, 1)
}

func TestGetDashboardEmptySelection(t *testing.T) {
	server := newTestServer(t, testRecords(), nil)

	resp, err := http.Get(server.URL + "/api/dashboard?personas=")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var apiErr struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	require.Equal(t, "EMPTY_SELECTION", apiErr.Code)
}

func TestGetDashboardDataNotFound(t *testing.T) {
	server := newTestServer(t, nil, repository.ErrNotFound)

	resp, err := http.Get(server.URL + "/api/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var apiErr struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	require.Equal(t, "DATA_NOT_FOUND", apiErr.Code)
}
