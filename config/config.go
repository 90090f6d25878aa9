// Package config loads the pipeline configuration: file locations,
// conference years, and API settings. Settings live in a YAML file; an
// optional .env file supplies environment overrides before flags apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full pipeline configuration.
type Config struct {
	// DataDir holds the per-year scraped paper files.
	DataDir string `yaml:"data_dir"`

	// OutputDir receives every pipeline output.
	OutputDir string `yaml:"output_dir"`

	// UniversitiesFile is the world universities and domains directory.
	UniversitiesFile string `yaml:"universities_file"`

	// TOEFLFile is the country-to-TOEFL-requirement table.
	TOEFLFile string `yaml:"toefl_file"`

	// Years lists the conference years to process, in order.
	Years []int `yaml:"years"`

	// PaperFiles overrides the per-year paper file name (relative to
	// DataDir unless absolute).
	PaperFiles map[int]string `yaml:"paper_files"`

	API API `yaml:"api"`
}

// API holds OpenReview client settings.
type API struct {
	V1BaseURL       string `yaml:"v1_base_url"`
	V2BaseURL       string `yaml:"v2_base_url"`
	Workers         int    `yaml:"workers"`
	RateLimitMillis int    `yaml:"rate_limit_ms"`
}

// Default returns the configuration used when no file is given, mirroring
// the layout the scraper produced.
func Default() *Config {
	return &Config{
		DataDir:          filepath.Join("data", "iclr_data"),
		OutputDir:        "output",
		UniversitiesFile: "world_universities_and_domains.json",
		TOEFLFile:        "country_region_toefl.csv",
		Years:            []int{2018, 2019, 2020, 2021, 2022, 2023, 2024, 2025},
		API: API{
			Workers:         4,
			RateLimitMillis: 50,
		},
	}
}

// Load reads the YAML config at path, layered over the defaults. An empty
// path returns the defaults. A .env file in the working directory is
// loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// PaperFile returns the scraped paper file for a year. 2024 onward the
// scraper produced parquet; earlier years are CSV.
func (c *Config) PaperFile(year int) string {
	if name, ok := c.PaperFiles[year]; ok {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(c.DataDir, name)
	}
	if year >= 2024 {
		return filepath.Join(c.DataDir, fmt.Sprintf("iclr%d.parquet", year%100))
	}
	return filepath.Join(c.DataDir, fmt.Sprintf("iclr_%d_detailed.csv", year))
}

// UniqueAuthorsFile is the extracted first-author list.
func (c *Config) UniqueAuthorsFile() string {
	return filepath.Join(c.OutputDir, "unique_first_authors.csv")
}

// AuthorProfilesFile is the fetched profile table.
func (c *Config) AuthorProfilesFile() string {
	return filepath.Join(c.OutputDir, "author_profiles.csv")
}

// LabeledProfilesFile is the profile table with language labels.
func (c *Config) LabeledProfilesFile() string {
	return filepath.Join(c.OutputDir, "author_profiles_with_language.csv")
}

// ProfileCacheFile is the sqlite fetch-resume cache.
func (c *Config) ProfileCacheFile() string {
	return filepath.Join(c.OutputDir, "profile_cache.db")
}

// MergedFile is the per-year paper table joined with labels.
func (c *Config) MergedFile(year int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("iclr_%d_with_language.csv", year))
}

// TokenizedDir holds the tokenized parquet outputs.
func (c *Config) TokenizedDir() string {
	return filepath.Join(c.OutputDir, "tokenized_data")
}

// TokenizedFile names one tokenized output; suffix distinguishes the
// language groups ("", "_english", "_non_english").
func (c *Config) TokenizedFile(year int, suffix string) string {
	return filepath.Join(c.TokenizedDir(), fmt.Sprintf("%d_1%s.parquet", year, suffix))
}
