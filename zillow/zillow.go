// Package zillow downloads the Zillow Home Value Index (ZHVI) state CSV and
// writes it to the pipeline's well-known data location.
//
// It is a deliberately thin collaborator: its only contract with the loader
// is "a file exists at that location afterwards".
package zillow

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultURL is the published location of the ZHVI all-homes smoothed,
// seasonally adjusted, by-state time series.
const DefaultURL = "https://files.zillowstatic.com/research/public_csvs/zhvi/State_zhvi_uc_sfrcondo_tier_0.33_0.67_sm_sa_month.csv"

// Config holds the provider settings, read from ZILLOW_* environment
// variables with sensible defaults.
type Config struct {
	URL     string        `envconfig:"URL"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// ConfigFromEnv reads the provider configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var c Config
	if err := envconfig.Process("zillow", &c); err != nil {
		return Config{}, fmt.Errorf("cannot read zillow configuration: %w", err)
	}
	if c.URL == "" {
		c.URL = DefaultURL
	}
	return c, nil
}

// Fetch downloads the index CSV to dst, creating parent directories as
// needed. The file is written to a temporary name and renamed into place so
// a failed download never leaves a truncated file at the well-known
// location.
func (c Config) Fetch(dst string) error {
	log.Println("Downloading ZHVI data from", c.URL)

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Get(c.URL)
	if err != nil {
		return fmt.Errorf("cannot download ZHVI data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot download ZHVI data: received status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("cannot create data directory for %q: %w", dst, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".zhvi-*.csv")
	if err != nil {
		return fmt.Errorf("cannot create temporary download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write ZHVI data to %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temporary download file: %w", err)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("cannot move downloaded ZHVI data into place: %w", err)
	}
	log.Println("Saved ZHVI data to", dst)
	return nil
}
