// Command responses collects exported responses.csv files into an archive
// and renders a class report from it.
//
//	responses [-driver sqlite|postgres] [-dsn DSN] ingest FILE.csv...
//	responses [-driver ...] [-dsn ...] report [-o DIR]
//	responses [-driver ...] [-dsn ...] sources
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/woophysics/lessons/internal/archive"
	"github.com/woophysics/lessons/internal/config"
	"github.com/woophysics/lessons/internal/db"
	"github.com/woophysics/lessons/internal/formative"
	"github.com/woophysics/lessons/internal/logging"
	"github.com/woophysics/lessons/internal/report"
	"github.com/woophysics/lessons/internal/storage"
)

var errUsage = errors.New("usage: responses [-driver D] [-dsn DSN] ingest FILE.csv... | report [-o DIR] | sources")

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logger.Error("responses", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("responses", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	driver := fs.String("driver", cfg.ArchiveDriver, "archive driver: sqlite or postgres")
	dsn := fs.String("dsn", cfg.ArchiveDSN, "archive DSN")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	octx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	conn, err := db.Open(octx, db.Driver(*driver), *dsn)
	if err != nil {
		return err
	}
	defer conn.Close()
	a := archive.New(conn)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "ingest":
		return ingest(ctx, a, logger, rest, out)
	case "report":
		return writeReport(ctx, a, cfg.ReportDir, rest, out)
	case "sources":
		return listSources(ctx, a, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func ingest(ctx context.Context, a *archive.Archive, logger *zap.Logger, files []string, out io.Writer) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: ingest needs at least one file", errUsage)
	}
	for _, path := range files {
		recs, err := readExport(path)
		if err != nil {
			return err
		}
		src, err := a.Ingest(ctx, filepath.Base(path), recs)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}
		logger.Info("ingested", zap.String("file", path), zap.String("source", src.ID), zap.Int("records", src.RecordCount))
		fmt.Fprintf(out, "%s\t%s\t%d records\n", src.ID, src.Name, src.RecordCount)
	}
	return nil
}

func readExport(path string) ([]formative.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := formative.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func writeReport(ctx context.Context, a *archive.Archive, defDir string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dir := fs.String("o", defDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rep, err := report.Build(ctx, a, len(formative.DefaultItems()))
	if err != nil {
		return err
	}
	store, err := storage.NewFSStore(*dir)
	if err != nil {
		return err
	}
	where, err := report.Save(store, rep)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, where)
	return nil
}

func listSources(ctx context.Context, a *archive.Archive, out io.Writer) error {
	sources, err := a.Sources(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRECORDS\tINGESTED")
	for _, s := range sources {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.ID, s.Name, s.RecordCount, s.IngestedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
