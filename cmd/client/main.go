package main

import (
	"fmt"

	"github.com/jmoliner/herdsync/internal/adapter"
	"github.com/jmoliner/herdsync/internal/client"
	"github.com/jmoliner/herdsync/internal/config"
	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/internal/service"
	"github.com/jmoliner/herdsync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("herdsync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	syncAPI, err := adapter.NewHTTPSyncAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create sync adapter")
	}

	reachability, err := adapter.NewHealthReachability(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create reachability probe")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log, service.Consolidate)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, syncAPI, reachability, log)

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
