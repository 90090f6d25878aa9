package cmd

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Will-Wei7/iclr-analysis/authors"
	"github.com/Will-Wei7/iclr-analysis/store"
)

var profilesLimit int

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Fetch author profiles from OpenReview",
	Long: `Look up each unique first author on OpenReview and record their
profile: emails, current position, and education history. Results are
cached in a local sqlite database, so an interrupted run resumes where
it left off. Authors without a findable profile get an empty record.`,
	RunE: runProfiles,
}

func init() {
	profilesCmd.Flags().IntVar(&profilesLimit, "limit", 0, "Fetch at most N authors (0 = all)")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names, err := readAuthorNames(cfg.UniqueAuthorsFile())
	if err != nil {
		return err
	}
	if profilesLimit > 0 && len(names) > profilesLimit {
		names = names[:profilesLimit]
	}
	slog.Info("fetching author profiles", "authors", len(names))

	cache, err := store.Open(cfg.ProfileCacheFile())
	if err != nil {
		return err
	}
	defer cache.Close()

	if cached, err := cache.Len(); err == nil && cached > 0 {
		slog.Info("resuming from profile cache", "cached", cached)
	}

	client := newClient(cfg)

	workers := cfg.API.Workers
	if workers < 1 {
		workers = 1
	}

	// Profiles are independent, so lookups fan out across a bounded
	// worker group; the cache is guarded because modernc sqlite runs a
	// single connection.
	records := make([]*authors.Author, len(names))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			mu.Lock()
			cached, ok, err := cache.Get(name)
			mu.Unlock()
			if err != nil {
				return err
			}
			if ok {
				records[i] = cached
				return nil
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			a, err := client.SearchProfile(ctx, name)
			if err != nil {
				// Keep the empty record for this run but leave the
				// cache alone, so the author is retried next run.
				slog.Warn("profile lookup failed, will retry on next run", "author", name, "error", err)
				records[i] = a
				return nil
			}

			mu.Lock()
			err = cache.Put(a)
			mu.Unlock()
			if err != nil {
				return err
			}

			records[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("fetching profiles: %w", err)
	}

	table := authors.NewTable(records)

	f, err := os.Create(cfg.AuthorProfilesFile())
	if err != nil {
		return fmt.Errorf("creating author profiles file: %w", err)
	}
	defer f.Close()
	if err := authors.WriteCSV(f, table); err != nil {
		return err
	}

	withEmail, withEducation := 0, 0
	for _, a := range records {
		if a.EmailPrimary != "" {
			withEmail++
		}
		if a.EducationBackground != "" {
			withEducation++
		}
	}
	slog.Info("wrote author profiles",
		"path", cfg.AuthorProfilesFile(),
		"authors", len(records),
		"withEmail", withEmail,
		"withEducation", withEducation)

	return nil
}

func readAuthorNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening unique authors file (run the authors stage first): %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing unique authors file: %w", err)
	}

	var names []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
