// Package queries loads named query texts from the configuration directory.
package queries

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Michaelcode2/product-api-service/internal/config"
)

// Store resolves query names to their externally maintained text. The text
// is business configuration, not code: operators tune it without a rebuild.
type Store interface {
	// Load returns the UTF-8 query text for name. Re-reads the file on
	// every call so a config update lands on the next request.
	Load(name string) (string, error)
}

type fileStore struct {
	dir string
}

func NewStore(cfg *config.Config) Store {
	return &fileStore{dir: cfg.ERP.QueryDir}
}

func (s *fileStore) Load(name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid query name %q", name)
	}
	path := filepath.Join(s.dir, name+".sql")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load query %q: %w", name, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("query %q is empty", name)
	}
	return text, nil
}
