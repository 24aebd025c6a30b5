package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/sebasfavaron/ml-scraper/pkg/pricehistory"
)

// EnvPassword names the variable carrying the upload password; it stays out
// of the config file
const EnvPassword = "SFTP_PASS"

// SourceConfig describes one marketplace listing to scrape
type SourceConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
	Pages  int               `yaml:"pages"`
}

type marketplaceConfig struct {
	BaseURL string         `yaml:"base_url"`
	Sources []SourceConfig `yaml:"sources"`
}

type trackerConfig struct {
	BaseURL   string `yaml:"base_url"`
	PromosURL string `yaml:"promos_url"`
}

type cacheConfig struct {
	Path     string `yaml:"path"`
	TTLHours int    `yaml:"ttl_hours"`
}

type reportConfig struct {
	OutputPath string `yaml:"output_path"`
	CSVPath    string `yaml:"csv_path"`
	TopN       int    `yaml:"top_n"`
}

type sftpConfig struct {
	Host       string `yaml:"host"`
	User       string `yaml:"user"`
	Port       int    `yaml:"port"`
	RemotePath string `yaml:"remote_path"`
	password   string
}

// File contains all settings for an OfferService instance
type File struct {
	Marketplace marketplaceConfig       `yaml:"marketplace"`
	Tracker     trackerConfig           `yaml:"tracker"`
	Analysis    pricehistory.Thresholds `yaml:"analysis"`
	Cache       cacheConfig             `yaml:"cache"`
	Report      reportConfig            `yaml:"report"`
	SFTP        sftpConfig              `yaml:"sftp"`
}

// New reads a config file and fills in defaults for everything optional
func New(filePath string) (cfg *File, err error) {
	cfg = new(File)
	cfg.Analysis = pricehistory.DefaultThresholds()

	yamlFile, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, err
	}

	if err = yaml.Unmarshal(yamlFile, &cfg); err != nil {
		return cfg, err
	}

	if cfg.Report.TopN <= 0 {
		cfg.Report.TopN = 3
	}
	if cfg.Report.OutputPath == "" {
		cfg.Report.OutputPath = "ofertas.html"
	}

	// the password only matters when an upload target is configured
	if cfg.SFTP.Host != "" {
		cfg.SFTP.password = os.Getenv(EnvPassword)
		if cfg.SFTP.password == "" {
			return cfg, fmt.Errorf("Couldn't find env variable: %s", EnvPassword)
		}
	}

	return cfg, nil
}

// GetSources returns the configured marketplace listings - error if none
func (cfg *File) GetSources() ([]SourceConfig, error) {
	if len(cfg.Marketplace.Sources) == 0 {
		return nil, fmt.Errorf("No sources configured")
	}
	return cfg.Marketplace.Sources, nil
}

// GetCacheTTL returns where to keep the page cache and for how long
func (cfg *File) GetCacheTTL() (path string, ttl time.Duration) {
	ttlHours := cfg.Cache.TTLHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return cfg.Cache.Path, time.Duration(ttlHours) * time.Hour
}

// GetSFTP returns host, port, username, password, remote path, and error
func (cfg *File) GetSFTP() (string, int, string, string, string, error) {
	if cfg.SFTP.Host == "" {
		return "", 0, "", "", "", fmt.Errorf("Couldn't load SFTP config")
	}
	port := cfg.SFTP.Port
	if port == 0 {
		port = 22
	}
	return cfg.SFTP.Host, port, cfg.SFTP.User, cfg.SFTP.password, cfg.SFTP.RemotePath, nil
}

// UploadConfigured reports whether a publish target is set
func (cfg *File) UploadConfigured() bool {
	return cfg.SFTP.Host != ""
}
