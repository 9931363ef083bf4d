package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hvac_hub/internal/handlers"
	"hvac_hub/internal/logger"
	"hvac_hub/internal/repository"
	"hvac_hub/internal/repository/db"
	"hvac_hub/internal/server"
	"hvac_hub/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env first; absence is normal in production
	envErr := godotenv.Load()

	cfgErr := loadConfig()
	log := logger.Get(viper.GetString("log.level"))
	if envErr != nil {
		log.Debugw("no .env file, using process environment")
	}
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	loc, err := time.LoadLocation(viper.GetString("schedule.timezone"))
	if err != nil {
		log.Fatalw("invalid schedule.timezone", "err", err, "value", viper.GetString("schedule.timezone"))
	}

	// reading log backend
	readings, closeReadings, err := openReadingLog(loc, log)
	if err != nil {
		log.Fatalw("failed to open reading log", "err", err)
	}
	defer closeReadings()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := readings.Init(ctx); err != nil {
		log.Fatalw("failed to init reading log", "err", err)
	}

	// optional time-series mirror
	var mirrors []repository.ReadingSink
	if url := viper.GetString("influx.url"); url != "" {
		influx := repository.NewReadingInflux(url,
			viper.GetString("influx.token"),
			viper.GetString("influx.org"),
			viper.GetString("influx.bucket"))
		defer influx.Close()
		mirrors = append(mirrors, influx)
		log.Infow("influx mirror enabled", "url", url, "bucket", viper.GetString("influx.bucket"))
	}

	// wire dependencies
	repos := repository.NewRepository(readings, mirrors...)
	services := service.NewService(repos, log, service.Options{Location: loc})
	apiHandler := handlers.NewHandler(services, log)

	if viper.GetBool("simulator.enabled") {
		tick := viper.GetDuration("simulator.tick")
		log.Infow("device simulator enabled", "tick", tick)
		go services.Simulator.Run(ctx, tick)
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openReadingLog picks the backend named by readings.driver.
func openReadingLog(loc *time.Location, log *logger.Logger) (repository.ReadingLog, func(), error) {
	switch driver := viper.GetString("readings.driver"); driver {
	case "csv", "":
		path := viper.GetString("readings.csv_path")
		log.Infow("reading log: csv", "path", path)
		return repository.NewReadingCSV(path, loc), func() {}, nil
	case "sqlite":
		conn, err := openDB(log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if cerr := conn.Close(); cerr != nil {
				log.Errorw("failed to close sqlite", "err", cerr)
			}
		}
		return repository.NewReadingSQLite(conn), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown readings.driver %q (want csv or sqlite)", driver)
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("reading log: sqlite", "path", dbPath)
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
