package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"address-autocomplete/internal/address"
	"address-autocomplete/internal/config"
	"address-autocomplete/internal/models"
	"address-autocomplete/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// rejected is a place that decomposed into an address that fails validation.
type rejected struct {
	Index  int
	Record models.AddressRecord
	Errors map[models.Field]string
}

func main() {
	file := flag.String("file", "", "Path to a JSON array of Places results to import")
	dryRun := flag.Bool("dry-run", false, "Decompose and validate only, do not write to the database")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	places, err := parsePlaces(*file)
	if err != nil {
		fmt.Printf("Error parsing places: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d places\n", len(places))

	records, bad := decompose(places)
	for _, r := range bad {
		fmt.Printf("Skipping place %d (%q): %s\n", r.Index, r.Record.AddressLine1, describe(r.Errors))
	}
	fmt.Printf("%d valid, %d rejected\n", len(records), len(bad))

	if *dryRun || len(records) == 0 {
		return
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is required to import")
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure table exists
	if err := repo.CreateSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	before, err := repo.CountSubmissions(ctx)
	if err != nil {
		fmt.Printf("Error counting submissions: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	if _, err := repo.CopySubmissions(ctx, records); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	after, err := repo.CountSubmissions(ctx)
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}
	if after-before != int64(len(records)) {
		fmt.Printf("Error verifying import: record count mismatch: expected %d new rows, got %d\n", len(records), after-before)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

func parsePlaces(filePath string) ([]models.Place, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return readPlaces(f)
}

func readPlaces(r io.Reader) ([]models.Place, error) {
	var places []models.Place
	if err := json.NewDecoder(r).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode places: %w", err)
	}
	return places, nil
}

// decompose turns places into records, splitting off the ones that would not
// pass the form's validation.
func decompose(places []models.Place) ([]models.AddressRecord, []rejected) {
	var (
		ok  []models.AddressRecord
		bad []rejected
	)
	for i, p := range places {
		rec := address.DecomposePlace(p)
		if errs := address.Validate(rec); len(errs) > 0 {
			bad = append(bad, rejected{Index: i, Record: rec, Errors: errs})
			continue
		}
		ok = append(ok, rec)
	}
	return ok, bad
}

func describe(errs map[models.Field]string) string {
	msgs := make([]string, 0, len(errs))
	for _, m := range errs {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
