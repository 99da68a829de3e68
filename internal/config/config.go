package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	AppName    = "InkAtlas"
	AppVersion = "1.0.0"
)

// DefaultHistoryRetention is how long search history records are kept
// before the pruner deletes them.
const DefaultHistoryRetention = 30 * 24 * time.Hour

type Config struct {
	Addr             string
	DBPath           string
	DataDir          string
	StaticDir        string
	LogLevel         string
	HistoryRetention time.Duration
	// NodeID distinguishes instances when generating history record IDs.
	NodeID int64
}

func Load() Config {
	addr := os.Getenv("INKATLAS_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("INKATLAS_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("INKATLAS_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "inkatlas.db")
	}
	staticDir := os.Getenv("INKATLAS_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	retention := DefaultHistoryRetention
	if v := os.Getenv("INKATLAS_HISTORY_RETENTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			retention = time.Duration(days) * 24 * time.Hour
		}
	}

	nodeID := int64(1)
	if v := os.Getenv("INKATLAS_NODE_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id >= 0 {
			nodeID = id
		}
	}

	return Config{
		Addr:             addr,
		DBPath:           filepath.Clean(path),
		DataDir:          filepath.Clean(dataDir),
		StaticDir:        filepath.Clean(staticDir),
		LogLevel:         os.Getenv("INKATLAS_LOG_LEVEL"),
		HistoryRetention: retention,
		NodeID:           nodeID,
	}
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
