package fixup

import (
	"context"
	"io"
	"os"

	"github.com/cklose/sqlxfix/pkg/rewrite"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// BackupSuffix is appended to the target path for the pre-mutation copy.
const BackupSuffix = ".bak2"

// Operation rewrites one source file in place, keeping a backup copy
// next to it.
type Operation struct {
	rewriter *rewrite.Rewriter
	logger   *UserLogger
}

// New creates an Operation around the given rewriter.
func New(rewriter *rewrite.Rewriter, logger *UserLogger) *Operation {
	return &Operation{
		rewriter: rewriter,
		logger:   logger,
	}
}

// FixFile reads the file at path, writes an exact backup copy alongside
// it, applies the rewriter, and overwrites the file with the result.
// The backup is written before any mutation so a bad rewrite stays
// recoverable by hand; the tool never reads it back.
func (op *Operation) FixFile(ctx context.Context, path string) (*rewrite.Result, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("rewriting query calls")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading source file: %w", err)
	}

	backupPath := path + BackupSuffix
	if err := copyFile(path, backupPath); err != nil {
		return nil, errors.Errorf("creating backup: %w", err)
	}
	op.logger.LogBackup(backupPath)

	result := op.rewriter.Rewrite(content)

	if err := writeFileAtomic(path, result.ModifiedContent); err != nil {
		return nil, errors.Errorf("writing rewritten file: %w", err)
	}
	op.logger.LogCompleted(path, result)

	return result, nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return nil
}

// writeFileAtomic writes content through a temp file and renames it
// into place.
func writeFileAtomic(path string, content []byte) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
