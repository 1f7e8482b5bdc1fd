package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andescapital/cxc-etl/internal/logging"
)

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 2 * time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 10 * time.Second},
		{9, 10 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, backoffDelay(tt.attempt), "attempt=%d", tt.attempt)
	}
}

func TestGetRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "valor", r.Header.Get("X-Extra"))
		w.Write([]byte(`[{"CodigoLiquidacion":"LIQ1","Monto":100.5}]`))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, 1, &logging.MockLogger{})
	records, err := client.GetRecords(context.Background(), server.URL, map[string]string{"X-Extra": "valor"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LIQ1", records[0]["CodigoLiquidacion"])
}

func TestGetRecordsVacioConAdvertencia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	logger := &logging.MockLogger{}
	client := NewClient(5*time.Second, 1, logger)

	records, err := client.GetRecords(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotEmpty(t, logger.EntriesByLevel("WARN"))
}

func TestGetRecordsRespuestaNoArreglo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"algo"}`))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, 1, &logging.MockLogger{})
	_, err := client.GetRecords(context.Background(), server.URL, nil)
	assert.Error(t, err)
}

func TestDoReintentaHastaExito(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"ok":true}]`))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, 3, &logging.MockLogger{})
	// Shrink the waits so the test stays fast.
	client.http.Timeout = time.Second

	start := time.Now()
	records, err := client.GetRecords(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	// Two retries waited at least the clamped minimum each.
	assert.GreaterOrEqual(t, time.Since(start), 4*time.Second)
}

func TestDoAgotaIntentos(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, 2, &logging.MockLogger{})
	_, err := client.GetRecords(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 intentos")
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestDoRespetaContextoCancelado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(5*time.Second, 3, &logging.MockLogger{})

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := client.GetRecords(ctx, server.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
