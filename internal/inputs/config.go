package inputs

import (
	"os"
	"path/filepath"

	"codeberg.org/mutker/puzzlebench/internal/errors"
)

const (
	// File system permissions and paths
	defaultDirPerm  = 0o755
	defaultFileName = "inputs.db"
	backupDirName   = "backups"
)

type Config struct {
	DBPath string
	// BackupDir receives a copy of the database before a schema change.
	// Defaults to a "backups" directory next to DBPath.
	BackupDir       string
	BackupOnMigrate bool
}

// DefaultConfig places the database in the user cache directory.
func DefaultConfig() Config {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return Config{
		DBPath:          filepath.Join(dir, "puzzlebench", defaultFileName),
		BackupOnMigrate: true,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}
	return nil
}

func (c Config) backupDir() string {
	if c.BackupDir != "" {
		return c.BackupDir
	}

	return filepath.Join(filepath.Dir(c.DBPath), backupDirName)
}
