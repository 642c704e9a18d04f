/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	eventsService "github.com/wso2/research-consent-ledger/internal/events/service"
	"github.com/wso2/research-consent-ledger/internal/events/publisher"
	"github.com/wso2/research-consent-ledger/internal/events/store"
	healthProvider "github.com/wso2/research-consent-ledger/internal/health_check/provider"
	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/clock"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	"github.com/wso2/research-consent-ledger/internal/system/constants"
	"github.com/wso2/research-consent-ledger/internal/system/database/provider"
	"github.com/wso2/research-consent-ledger/internal/system/log"
	"github.com/wso2/research-consent-ledger/internal/system/managers"
	"github.com/wso2/research-consent-ledger/internal/system/security"
	"github.com/wso2/research-consent-ledger/internal/system/workers"
)

const (
	shutdownTimeout = 15 * time.Second
	journalTimeout  = 10 * time.Second
)

func main() {
	ledgerHome := getLedgerHome()

	envFiles, err := filepath.Glob(filepath.Join(ledgerHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file
	ledgerConfig, err := config.LoadConfig(ledgerHome, constants.DeploymentConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize runtime configurations.
	if err := config.InitializeRuntime(ledgerHome, ledgerConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := log.InitWithFormat(ledgerConfig.Log.LogLevel, ledgerConfig.Log.Format, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	settings, err := ledger.SettingsFromConfig(ledgerConfig.Ledger)
	if err != nil {
		logger.Fatal("Invalid ledger configuration.", log.Error(err))
	}

	journal, err := openJournal(ledgerHome, ledgerConfig)
	if err != nil {
		logger.Fatal("Failed to open the event journal.", log.Error(err))
	}
	defer func() {
		if err := journal.Close(); err != nil {
			logger.Warn("Failed to close the event journal.", log.Error(err))
		}
	}()

	sinks := []workers.EventSink{workers.JournalSink{Journal: journal}}
	var kafkaPublisher *publisher.KafkaPublisher
	if ledgerConfig.Kafka.Enabled {
		kafkaPublisher = publisher.NewKafkaPublisher(ledgerConfig.Kafka)
		sinks = append(sinks, kafkaPublisher)
		logger.Info("Publishing ledger events to Kafka.", log.String("topic", ledgerConfig.Kafka.Topic))
	}

	// Initialize event queue
	worker := workers.NewEventWorker(ledgerConfig.Worker.QueueSize, sinks...)
	worker.Start()

	ledgerService := ledger.Initialize(settings, clock.SystemClock{}, worker)
	if err := resumeSequence(ledgerService, journal); err != nil {
		logger.Fatal("Failed to read the event journal.", log.Error(err))
	}
	events := eventsService.NewEventsService(journal)
	healthProvider.InitializeHealthCheck(events, ledgerService)

	serverAddr := fmt.Sprintf("%s:%d", ledgerConfig.Addr.Host, ledgerConfig.Addr.Port)
	mux := initMultiplexer(ledgerService, events, ledgerConfig.Auth)
	handler := enableCORS(ledgerConfig.Auth.CORSAllowedOrigins, security.WithTrace(mux))

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log.String("address", serverAddr), log.Error(err))
	}
	server := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		logger.Info("Research consent ledger started.", log.String("address", serverAddr),
			log.String("owner", settings.Owner.Hex()), log.String("journal", ledgerConfig.Journal.Driver))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve requests.", log.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("HTTP server did not shut down cleanly.", log.Error(err))
	}
	if err := worker.Stop(ctx); err != nil {
		logger.Warn("Event worker did not drain before shutdown.", log.Error(err))
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Warn("Failed to close the Kafka writer.", log.Error(err))
		}
	}
	logger.Info("Research consent ledger stopped.")
}

// openJournal opens the event journal selected by journal.driver.
// resumeSequence continues event numbering after the events a durable journal already holds.
// Ledger state itself is not replayed.
func resumeSequence(l *ledger.Ledger, journal store.Journal) error {

	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	last, err := journal.LastSequence(ctx)
	if err != nil {
		return err
	}
	l.ResumeAfter(last)
	return nil
}

func openJournal(ledgerHome string, cfg *config.Config) (store.Journal, error) {

	switch cfg.Journal.Driver {
	case config.JournalMemory:
		return store.NewMemoryJournal(), nil
	case config.JournalPostgres:
		dbClient, err := provider.NewDBProvider().GetDBClient()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "postgres journal")
		}
		if err := dbClient.InitDatabase(ledgerHome, constants.PostgresSchemaScript); err != nil {
			_ = dbClient.Close()
			return nil, pkgerrors.Wrap(err, "postgres journal schema")
		}
		return store.NewPostgresJournal(dbClient), nil
	case config.JournalLevelDB:
		path := cfg.LevelDB.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(ledgerHome, path)
		}
		journal, err := store.OpenLevelDBJournal(path)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "leveldb journal")
		}
		return journal, nil
	case config.JournalMongoDB:
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()
		journal, err := store.ConnectMongoJournal(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Collection)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "mongodb journal")
		}
		return journal, nil
	default:
		return nil, pkgerrors.Errorf("unsupported journal driver %q", cfg.Journal.Driver)
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(ledgerService ledger.Service, events eventsService.EventsServiceInterface,
	authConfig config.AuthConfig) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, ledgerService, events, authConfig)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services.", log.Error(err))
	}
	return mux
}

func enableCORS(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, "+constants.TraceIDHeader)
			w.Header().Set("Access-Control-Expose-Headers", constants.TraceIDHeader)
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getLedgerHome() string {

	// Parse project directory from command line arguments.
	homeFlag := flag.String("ledgerHome", "", "Path to the research consent ledger home directory")
	flag.Parse()

	if *homeFlag != "" {
		return *homeFlag
	}
	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}
