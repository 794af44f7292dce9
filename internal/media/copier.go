package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"keepsake/internal/fileutil"
	"keepsake/internal/logging"
)

// allowedExtensions lists the file endings recognized as site media. The
// match is a case-sensitive suffix test on the filename, exactly what the
// export writes.
var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".mp4", ".webp"}

// Copier flattens the export's media tree into <output>/media.
type Copier struct {
	sourceDir string
	outputDir string
	logger    *slog.Logger
}

// NewCopier returns a Copier that copies recognized files from the export
// media tree rooted at sourceDir into outputDir/media.
func NewCopier(sourceDir, outputDir string, logger *slog.Logger) *Copier {
	return &Copier{
		sourceDir: sourceDir,
		outputDir: outputDir,
		logger:    logging.NewComponentLogger(logger, "media"),
	}
}

// CopyAll walks the source tree and copies every recognized media file into
// the flat media directory, keeping source modification times and skipping
// files that already exist there. It returns how many files were copied and
// how many were skipped. A missing source tree copies nothing; any copy
// failure aborts the walk.
func (c *Copier) CopyAll(ctx context.Context) (copied, skipped int, err error) {
	mediaDir := filepath.Join(c.outputDir, "media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return 0, 0, fmt.Errorf("create media directory: %w", err)
	}

	if _, statErr := os.Stat(c.sourceDir); errors.Is(statErr, fs.ErrNotExist) {
		c.logger.Warn("media source directory missing", logging.String("dir", c.sourceDir))
		return 0, 0, nil
	}

	walkErr := filepath.WalkDir(c.sourceDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isMediaFile(d.Name()) {
			return nil
		}

		dst := filepath.Join(mediaDir, d.Name())
		if _, err := os.Stat(dst); err == nil {
			skipped++
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", dst, err)
		}

		if err := fileutil.CopyFileVerified(p, dst); err != nil {
			return fmt.Errorf("copy %s: %w", d.Name(), err)
		}
		if err := fileutil.PreserveTimes(p, dst); err != nil {
			return fmt.Errorf("copy %s: %w", d.Name(), err)
		}
		copied++
		c.logger.Debug("copied media file", logging.String("file", d.Name()))
		return nil
	})
	if walkErr != nil {
		return copied, skipped, walkErr
	}

	c.logger.Info("media copy complete",
		logging.Int("copied", copied),
		logging.Int("skipped", skipped))
	return copied, skipped, nil
}

// CountFiles reports how many recognized media files live under dir. A
// missing directory counts zero.
func CountFiles(dir string) (int, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	count := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isMediaFile(d.Name()) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func isMediaFile(name string) bool {
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
