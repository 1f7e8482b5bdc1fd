// Package root contains the root command for the application
package root

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"andescapital/cxc-etl/internal/catalogos"
	"andescapital/cxc-etl/internal/config"
	"andescapital/cxc-etl/internal/etl"
	"andescapital/cxc-etl/internal/fetch"
	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/store"
)

// CommonFlags holds the flags shared by every pipeline command.
type CommonFlags struct {
	FechaCorte string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cxc-etl",
		Short: "ETL de cuentas por cobrar, KPI y comisiones.",
		Long: `cxc-etl reconcilia las operaciones de factoring con sus pagos y
devoluciones, deriva los indicadores de rentabilidad y clasifica las
comisiones de los ejecutivos, reemplazando las tablas destino en cada
corrida.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
		},
	}

	// SharedFlags are accessible to all subcommands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.FechaCorte, "fecha-corte", "f", "",
		"Fecha de corte YYYY-MM-DD para derivar estados (por defecto, hoy)")
}

// FechaCorte resolves the cutoff date flag. An empty flag defaults to
// today at UTC midnight.
func FechaCorte() (time.Time, error) {
	if SharedFlags.FechaCorte == "" {
		hoy := time.Now().UTC().Truncate(24 * time.Hour)
		Log.WithField("fecha_corte", hoy.Format("2006-01-02")).
			Info("Sin fecha de corte explícita, se usa la fecha actual")
		return hoy, nil
	}
	fecha, err := time.Parse("2006-01-02", SharedFlags.FechaCorte)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha de corte inválida %q: %w", SharedFlags.FechaCorte, err)
	}
	return fecha, nil
}

// NewProcessor builds the pipeline from configuration. When no database
// DSN is configured the processor runs without persistence.
func NewProcessor() (*etl.Processor, *config.Config, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewLogrusAdapterFromLogger(Log)

	codigos, err := catalogos.LoadCodigos(cfg.ETL.CodigosFile, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cargando códigos: %w", err)
	}
	ejecutivos, err := catalogos.LoadEjecutivos(cfg.ETL.EjecutivosFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cargando ejecutivos: %w", err)
	}

	client := fetch.NewClient(
		time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second,
		cfg.HTTP.MaxAttempts,
		logger,
	)
	webservice := fetch.NewWebservice(
		cfg.Webservice.BaseURL, cfg.Webservice.Username, cfg.Webservice.Password,
		client, logger,
	)
	sheets := fetch.NewSheets(fetch.SheetURLs{
		FueraSistemaPEN:  cfg.Sheets.FueraSistemaPENURL,
		FueraSistemaUSD:  cfg.Sheets.FueraSistemaUSDURL,
		SectorPagadores:  cfg.Sheets.SectorPagadoresURL,
		FondoCrecer:      cfg.Sheets.FondoCrecerURL,
		FondoPromocional: cfg.Sheets.FondoPromocionalURL,
		Referidos:        cfg.Sheets.ReferidosURL,
	}, client, logger)

	var sink etl.TableSink
	if cfg.Database.DSN != "" {
		db, err := store.New(cfg.Database.DSN, 10, 5)
		if err != nil {
			return nil, nil, fmt.Errorf("conectando a la base de datos: %w", err)
		}
		sink = store.NewSink(db, cfg.Database.ChunkSize, logger)
	} else {
		logger.Warn("CXC_DATABASE_DSN no configurado, la corrida no persistirá")
	}

	return etl.NewProcessor(
		webservice, sheets, sink,
		codigos, ejecutivos,
		cfg.ETL.TipoCambioFallback,
		logger,
	), cfg, nil
}
