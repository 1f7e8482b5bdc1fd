package fetch

import (
	"context"
	"fmt"

	"andescapital/cxc-etl/internal/logging"
)

// SheetURLs holds the Apps-Script endpoint for each spreadsheet-backed
// source.
type SheetURLs struct {
	FueraSistemaPEN  string
	FueraSistemaUSD  string
	SectorPagadores  string
	FondoCrecer      string
	FondoPromocional string
	Referidos        string
}

// Sheets is the adapter for the spreadsheet-backed sources. The endpoints
// are plain GETs returning JSON arrays; the data is treated as untrusted
// and goes through the same validator layer as the webservice.
type Sheets struct {
	urls   SheetURLs
	client *Client
	logger logging.Logger
}

// NewSheets creates the sheet-source adapter.
func NewSheets(urls SheetURLs, client *Client, logger logging.Logger) *Sheets {
	return &Sheets{urls: urls, client: client, logger: logger}
}

func (s *Sheets) obtener(ctx context.Context, name, url string) ([]map[string]interface{}, error) {
	if url == "" {
		return nil, fmt.Errorf("fuente %s sin URL configurada", name)
	}

	records, err := s.client.GetRecords(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error consultando hoja %s: %w", name, err)
	}

	s.logger.Info("fuente de hoja consultada",
		logging.F("sheet", name),
		logging.F("records", len(records)))
	return records, nil
}

// ObtenerFueraSistemaPEN fetches the out-of-system operations in soles.
func (s *Sheets) ObtenerFueraSistemaPEN(ctx context.Context) ([]map[string]interface{}, error) {
	return s.obtener(ctx, "fuera_sistema_pen", s.urls.FueraSistemaPEN)
}

// ObtenerFueraSistemaUSD fetches the out-of-system operations in dollars.
func (s *Sheets) ObtenerFueraSistemaUSD(ctx context.Context) ([]map[string]interface{}, error) {
	return s.obtener(ctx, "fuera_sistema_usd", s.urls.FueraSistemaUSD)
}

// ObtenerSectorPagadores fetches the payer-to-sector mapping.
func (s *Sheets) ObtenerSectorPagadores(ctx context.Context) ([]map[string]interface{}, error) {
	return s.obtener(ctx, "sector_pagadores", s.urls.SectorPagadores)
}

// ObtenerFondoCrecer fetches the Fondo Crecer guarantee table.
func (s *Sheets) ObtenerFondoCrecer(ctx context.Context) ([]map[string]interface{}, error) {
	return s.obtener(ctx, "fondo_crecer", s.urls.FondoCrecer)
}

// ObtenerFondoPromocional fetches the promotional-fund membership list.
func (s *Sheets) ObtenerFondoPromocional(ctx context.Context) ([]map[string]interface{}, error) {
	return s.obtener(ctx, "fondo_promocional", s.urls.FondoPromocional)
}

// ObtenerReferidos fetches the referral table.
func (s *Sheets) ObtenerReferidos(ctx context.Context) ([]map[string]interface{}, error) {
	return s.obtener(ctx, "referidos", s.urls.Referidos)
}
