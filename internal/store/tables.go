package store

// Target table names.
const (
	TablaAcumulado    = "cxc_acumulado_dim"
	TablaPagos        = "cxc_pagos_fact"
	TablaDevoluciones = "cxc_devoluciones_fact"
	TablaKPI          = "kpi_operaciones"
	TablaComisiones   = "kpi_comisiones"
)

// Columnas lists the writable columns of each target table. Rows are
// filtered to this set before insertion, so extra derived fields on the
// in-memory records never break the statement.
var Columnas = map[string][]string{
	TablaAcumulado: {
		"IdLiquidacionCab", "IdLiquidacionDet", "CodigoLiquidacion",
		"NroDocumento", "RUCCliente", "RazonSocialCliente",
		"RUCPagador", "RazonSocialPagador", "Moneda", "TipoOperacion",
		"Ejecutivo", "NetoConfirmado", "MontoDesembolso",
		"FechaOperacion", "FechaConfirmado", "FueraSistema",
		"TipoPago", "MontoPago", "SaldoDeuda", "Sector", "GrupoEco",
		"SaldoTotal", "SaldoTotalPen", "TipoPagoReal",
		"EstadoCuenta", "EstadoReal",
	},
	TablaPagos: {
		"IdLiquidacionPago", "IdLiquidacionDet", "FechaPago",
		"TipoPago", "MontoPago", "SaldoDeuda",
	},
	TablaDevoluciones: {
		"IdLiquidacionDevolucion", "IdLiquidacionDet",
		"MontoDevolucion", "EstadoDevolucion",
	},
	TablaKPI: {
		"IdLiquidacionCab", "IdLiquidacionDet", "CodigoLiquidacion",
		"NroDocumento", "RUCCliente", "RazonSocialCliente",
		"RUCPagador", "RazonSocialPagador", "Moneda", "TipoOperacion",
		"Ejecutivo", "FueraSistema", "FechaOperacion",
		"DiasEfectivo", "NetoConfirmado", "MontoDesembolso",
		"TipoCambioVenta", "NetoConfirmadoSoles", "MontoDesembolsoSoles",
		"TotalIngresos", "TotalIngresosSoles", "CostosFondo",
		"CostosFondoSoles", "Utilidad", "Mes", "MesSemana", "Referencia",
	},
	TablaComisiones: {
		"Ejecutivo", "CodigoLiquidacion", "RUCCliente", "RUCPagador",
		"TipoOperacion", "Mes", "Tipo", "Detalle",
		"UtilidadTotalSoles", "Tasa", "MontoComision",
	},
}
