package wyscout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DataFile reads a JSON export below the data directory. Paths that are not
// .json files inside the directory read as ErrFileNotFound.
func (a *App) DataFile(rel string) ([]byte, error) {
	if a.cfg.DataDir == "" || !strings.HasSuffix(rel, ".json") || strings.Contains(rel, "..") {
		return nil, ErrFileNotFound
	}

	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return nil, ErrFileNotFound
	}

	data, err := os.ReadFile(filepath.Join(a.cfg.DataDir, local))
	if err != nil {
		log.Debug().Err(err).Str("path", rel).Msg("Wyscout data file unreadable")
		return nil, ErrFileNotFound
	}
	return data, nil
}
