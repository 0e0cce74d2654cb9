package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/velolab/paceline/internal/config"
	"github.com/velolab/paceline/internal/db"
	"github.com/velolab/paceline/internal/ftp"
	"github.com/velolab/paceline/internal/logging"
	"github.com/velolab/paceline/internal/progression"
	"github.com/velolab/paceline/internal/rides"
	"github.com/velolab/paceline/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// one-shot tool: estimate and store initial progression levels for a user
// from their ride history
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userID := flag.String("user", "", "id of the user to seed progression levels for")
	flag.Parse()

	if *userID == "" {
		fmt.Println("user id not given, use -user")
		os.Exit(1)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: "",
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	metricsManager := metrics.NewManager("paceline", "seed", metrics.SetupPrometheus())

	seeder := progression.NewSeeder(
		rides.NewRepo(dbPool),
		ftp.NewRepo(dbPool),
		progression.NewStore(dbPool),
		metricsManager,
	)

	result, err := seeder.Seed(ctx, *userID)
	if err != nil {
		log.Fatalf("seed progression levels for [%s]: %s", *userID, err)
	}

	if len(result.Seeded) == 0 {
		fmt.Printf("nothing seeded for user %s (used %d rides)\n", *userID, result.RidesUsed)
		return
	}

	fmt.Printf("seeded %d zones for user %s from %d rides:\n", len(result.Seeded), *userID, result.RidesUsed)
	for zone, level := range result.Seeded {
		fmt.Printf("  %-12s -> %.1f\n", zone, level)
	}
}
