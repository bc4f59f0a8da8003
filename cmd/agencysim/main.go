// Command agencysim runs the ghost-agency simulation with its HTTP API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/talgya/ghost-agency/internal/agency"
	"github.com/talgya/ghost-agency/internal/api"
	"github.com/talgya/ghost-agency/internal/catalog"
	"github.com/talgya/ghost-agency/internal/config"
	"github.com/talgya/ghost-agency/internal/engine"
	"github.com/talgya/ghost-agency/internal/entropy"
	"github.com/talgya/ghost-agency/internal/persistence"
)

func main() {
	var (
		seed        = flag.Int64("seed", 42, "world seed (0 = random)")
		configPath  = flag.String("config", "", "balance config YAML (optional)")
		catalogPath = flag.String("catalog", "", "equipment catalog YAML (optional)")
		dbPath      = flag.String("db", "data/agency.db", "audit archive path")
		port        = flag.Int("port", 8080, "HTTP API port")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Ghost Agency — paranormal investigation simulation")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load balance config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		slog.Info("balance config loaded", "path", *configPath)
	}

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		slog.Error("failed to load equipment catalog", "error", err)
		os.Exit(1)
	}

	var src *entropy.Source
	if *seed == 0 {
		src = entropy.NewFromCrypto()
		slog.Info("using random seed")
	} else {
		src = entropy.New(*seed)
		slog.Info("using fixed seed", "seed", *seed)
	}

	// ── Archive ───────────────────────────────────────────────────────
	os.MkdirAll("data", 0755)
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open archive", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("archive opened", "path", *dbPath)

	if err := db.SaveMeta("seed", fmt.Sprintf("%d", *seed)); err != nil {
		slog.Warn("failed to record seed", "error", err)
	}

	// ── Agency ────────────────────────────────────────────────────────
	ag := agency.New(cfg, src, cat, *seed)
	for _, r := range ag.Map.Regions {
		slog.Info("region", "name", r.Name, "fear_mult", fmt.Sprintf("%.2f", r.Modifiers.FearMult),
			"difficulty", r.Mission.Difficulty)
	}

	// Two agents on the books from day one.
	for i := 0; i < 2; i++ {
		if a, ok := ag.HireRandomAgent(); ok {
			slog.Info("hired", "name", a.Name, "stats", a.TotalStats())
		}
	}

	// ── Engine + API ──────────────────────────────────────────────────
	eng := engine.NewEngine()

	hub := api.NewHub()
	go hub.Run()

	server := &api.Server{
		Agency:   ag,
		Eng:      eng,
		DB:       db,
		Hub:      hub,
		Port:     *port,
		AdminKey: os.Getenv("AGENCY_ADMIN_KEY"),
	}
	server.Start()

	eng.OnDay = func(tick uint64) {
		server.RunDay()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("\nThe agency is open: %d agents, %d regions, $%d in the bank.\n",
		len(ag.Roster), len(ag.Map.Regions), ag.Funds)
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", *port)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	slog.Info("final archive flush...")
	server.FlushEvents()

	fmt.Println("Simulation stopped.")
}
