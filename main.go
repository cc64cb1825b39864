package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/csvload"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/election"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/receipt"
	"github.com/danielhkuo/quickly-tally/report"
	"github.com/danielhkuo/quickly-tally/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	switch {
	case cfg.Serve:
		err = serve(cfg)
	case cfg.History > 0:
		err = history(cfg)
	case cfg.Issue > 0:
		err = issueKeys(cfg)
	case cfg.ReceiptKey != "":
		err = checkReceipt(cfg)
	default:
		err = compute(cfg)
	}
	if err != nil {
		slog.Error("quickly-tally failed", "error", err)
		os.Exit(1)
	}
}

// openArchive connects to the result archive and makes sure the schema exists
func openArchive(cfg cliparse.Config) (*sql.DB, error) {
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(dbConn); err != nil {
		dbConn.Close()
		return nil, err
	}
	slog.Debug("Database schema ready", "type", cfg.DatabaseType)
	return dbConn, nil
}

func serve(cfg cliparse.Config) error {
	dbConn, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	server := http.Server{
		Handler:           router.NewRouter(dbConn, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("Listening", "port", cfg.Port, "database", cfg.DatabaseType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server closed: %w", err)
	}
	slog.Info("Server closed")
	return nil
}

func history(cfg cliparse.Config) error {
	dbConn, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	snaps, err := db.ListSnapshots(context.Background(), dbConn, cfg.History)
	if err != nil {
		return err
	}
	return report.WriteHistory(os.Stdout, snaps)
}

func checkReceipt(cfg cliparse.Config) error {
	b, err := csvload.BallotFile(cfg.Input, cfg.Skip)
	if err != nil {
		return err
	}

	voter, err := receipt.Check(b, cfg.ReceiptColumn, cfg.ReceiptKey)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ballot found on row %d\n", voter+1)
	for c := 0; c < b.Candidates(); c++ {
		rank := b.Rank(voter, c)
		if rank == ballot.NoOpinion {
			fmt.Fprintf(os.Stdout, "  %s: no opinion\n", b.Label(c))
			continue
		}
		fmt.Fprintf(os.Stdout, "  %s: %d\n", b.Label(c), rank)
	}
	return nil
}

// issueKeys prints key,digest rows; the digests go in the ballot file and
// the keys go to the voters.
func issueKeys(cfg cliparse.Config) error {
	pairs, err := receipt.Issue(cfg.Issue)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"key", "digest"})
	for _, p := range pairs {
		w.Write([]string{p.Key, p.Digest})
	}
	w.Flush()
	return w.Error()
}

func compute(cfg cliparse.Config) error {
	in, err := loadInput(cfg)
	if err != nil {
		return err
	}

	var snaps []models.ResultSnapshot
	if cfg.Method == election.MethodAll {
		snaps, err = election.RunAll(in)
	} else {
		var snap models.ResultSnapshot
		snap, err = election.Run(cfg.Method, in)
		snaps = []models.ResultSnapshot{snap}
	}
	if err != nil {
		return err
	}

	color := report.UseColor(os.Stdout)
	for i, snap := range snaps {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		if err := report.Write(os.Stdout, snap, color); err != nil {
			return err
		}
	}

	if cfg.DatabaseURL == "" {
		return nil
	}
	return archive(cfg, snaps)
}

func loadInput(cfg cliparse.Config) (election.Input, error) {
	if cfg.InputKind == cliparse.KindDuel {
		d, err := csvload.DuelFile(cfg.Input)
		if err != nil {
			return election.Input{}, err
		}
		return election.Input{Duel: d}, nil
	}

	b, err := csvload.BallotFile(cfg.Input, cfg.Skip)
	if err != nil {
		return election.Input{}, err
	}
	return election.Input{Ballot: b}, nil
}

func archive(cfg cliparse.Config, snaps []models.ResultSnapshot) error {
	dbConn, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	ctx := context.Background()
	for _, snap := range snaps {
		if err := db.SaveSnapshot(ctx, dbConn, snap); err != nil {
			return err
		}
		slog.Info("result archived", "snapshot_id", snap.ID, "method", snap.Method)
	}
	return nil
}
