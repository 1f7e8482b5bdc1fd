package fetch

import (
	"context"
	"fmt"

	"andescapital/cxc-etl/internal/logging"
)

// tokenResponse is the shape of the webservice token endpoint's reply.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Webservice is the adapter for the token-authenticated operations
// webservice. A bearer token is exchanged before each data call and held
// only for the adapter instance's lifetime.
type Webservice struct {
	baseURL  string
	username string
	password string
	client   *Client
	logger   logging.Logger

	token string
}

// NewWebservice creates the webservice adapter.
func NewWebservice(baseURL, username, password string, client *Client, logger logging.Logger) *Webservice {
	return &Webservice{
		baseURL:  baseURL,
		username: username,
		password: password,
		client:   client,
		logger:   logger,
	}
}

// autenticar exchanges the credentials for a bearer token.
func (w *Webservice) autenticar(ctx context.Context) error {
	var resp tokenResponse
	err := w.client.PostJSON(ctx, w.baseURL+"/token", map[string]string{
		"username": w.username,
		"password": w.password,
	}, &resp)
	if err != nil {
		return fmt.Errorf("error autenticando contra el webservice: %w", err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("el webservice devolvió un token vacío")
	}
	w.token = resp.AccessToken
	return nil
}

// obtener authenticates and fetches one data endpoint.
func (w *Webservice) obtener(ctx context.Context, path string) ([]map[string]interface{}, error) {
	if err := w.autenticar(ctx); err != nil {
		return nil, err
	}

	records, err := w.client.GetRecords(ctx, w.baseURL+path, map[string]string{
		"Authorization": "Bearer " + w.token,
	})
	if err != nil {
		return nil, fmt.Errorf("error consultando %s: %w", path, err)
	}

	w.logger.Info("fuente webservice consultada",
		logging.F("path", path),
		logging.F("records", len(records)))
	return records, nil
}

// ObtenerAcumulado fetches the accumulated-operations dataset.
func (w *Webservice) ObtenerAcumulado(ctx context.Context) ([]map[string]interface{}, error) {
	return w.obtener(ctx, "/cxc/acumulado")
}

// ObtenerPagos fetches the payments dataset.
func (w *Webservice) ObtenerPagos(ctx context.Context) ([]map[string]interface{}, error) {
	return w.obtener(ctx, "/cxc/pagos")
}

// ObtenerDevoluciones fetches the refunds dataset.
func (w *Webservice) ObtenerDevoluciones(ctx context.Context) ([]map[string]interface{}, error) {
	return w.obtener(ctx, "/cxc/devoluciones")
}

// ObtenerTipoCambio fetches the daily exchange-rate history.
func (w *Webservice) ObtenerTipoCambio(ctx context.Context) ([]map[string]interface{}, error) {
	return w.obtener(ctx, "/kpi/tipocambio")
}

// ObtenerKPI fetches the raw KPI operation stream.
func (w *Webservice) ObtenerKPI(ctx context.Context) ([]map[string]interface{}, error) {
	return w.obtener(ctx, "/kpi/operaciones")
}
