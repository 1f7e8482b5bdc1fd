package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andescapital/cxc-etl/internal/logging"
)

func servidorWebservice(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["username"] != "usuario" || creds["password"] != "secreto" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	})

	mux.HandleFunc("/cxc/acumulado", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[{"CodigoLiquidacion":"LIQ1"}]`))
	})

	return httptest.NewServer(mux)
}

func TestWebserviceObtenerConToken(t *testing.T) {
	server := servidorWebservice(t)
	defer server.Close()

	client := NewClient(5*time.Second, 1, &logging.MockLogger{})
	ws := NewWebservice(server.URL, "usuario", "secreto", client, &logging.MockLogger{})

	records, err := ws.ObtenerAcumulado(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LIQ1", records[0]["CodigoLiquidacion"])
}

func TestWebserviceCredencialesInvalidas(t *testing.T) {
	server := servidorWebservice(t)
	defer server.Close()

	client := NewClient(5*time.Second, 1, &logging.MockLogger{})
	ws := NewWebservice(server.URL, "usuario", "equivocado", client, &logging.MockLogger{})

	_, err := ws.ObtenerAcumulado(context.Background())
	assert.Error(t, err)
}

func TestWebserviceTokenVacio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": ""})
	}))
	defer server.Close()

	client := NewClient(5*time.Second, 1, &logging.MockLogger{})
	ws := NewWebservice(server.URL, "usuario", "secreto", client, &logging.MockLogger{})

	_, err := ws.ObtenerAcumulado(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}
