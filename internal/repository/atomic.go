package repository

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// CopyOnWriteTx implements atomic file operations using a copy-on-write
// pattern. All modifications happen in a temporary directory that is
// atomically swapped with the base directory on commit, so a crash
// mid-write never leaves a half-updated planning directory.
type CopyOnWriteTx struct {
	baseDir   string // live .wsjf/ directory
	tempDir   string // .wsjf.tmp.<timestamp>/ working copy
	backupDir string // .wsjf.backup.<timestamp>/ during the swap
	committed bool
}

// NewCopyOnWriteTx creates a new copy-on-write transaction.
func NewCopyOnWriteTx(baseDir string) *CopyOnWriteTx {
	timestamp := time.Now().UnixNano()
	return &CopyOnWriteTx{
		baseDir:   baseDir,
		tempDir:   fmt.Sprintf("%s.tmp.%d", baseDir, timestamp),
		backupDir: fmt.Sprintf("%s.backup.%d", baseDir, timestamp),
	}
}

// Begin starts the transaction by copying the base directory into the
// temp directory. True file copies, not hard links: hard links share the
// inode, so writing through the temp path would corrupt the original and
// break rollback.
func (tx *CopyOnWriteTx) Begin() error {
	if _, err := os.Stat(tx.baseDir); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(tx.tempDir, 0o755); err != nil {
				return fmt.Errorf("create temp directory: %w", err)
			}
			return nil
		}
		return fmt.Errorf("stat base directory: %w", err)
	}

	if err := copyDirRecursive(tx.baseDir, tx.tempDir); err != nil {
		_ = os.RemoveAll(tx.tempDir)
		return fmt.Errorf("copy directory tree: %w", err)
	}
	return nil
}

// WriteFile writes content to a file within the transaction's temp directory.
func (tx *CopyOnWriteTx) WriteFile(relativePath string, content []byte) error {
	if tx.committed {
		return fmt.Errorf("transaction already committed")
	}

	fullPath := filepath.Join(tx.tempDir, relativePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ReadFile reads a file from the transaction's temp directory.
func (tx *CopyOnWriteTx) ReadFile(relativePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(tx.tempDir, relativePath))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Commit atomically swaps the temp directory with the base directory.
func (tx *CopyOnWriteTx) Commit() error {
	if tx.committed {
		return fmt.Errorf("transaction already committed")
	}

	baseExists := true
	if _, err := os.Stat(tx.baseDir); err != nil {
		if os.IsNotExist(err) {
			baseExists = false
		} else {
			return fmt.Errorf("stat base directory: %w", err)
		}
	}

	if baseExists {
		if err := os.Rename(tx.baseDir, tx.backupDir); err != nil {
			return fmt.Errorf("backup base directory: %w", err)
		}
		if err := os.Rename(tx.tempDir, tx.baseDir); err != nil {
			if rollbackErr := os.Rename(tx.backupDir, tx.baseDir); rollbackErr != nil {
				return fmt.Errorf("commit failed and rollback failed: commit error: %w, rollback error: %v", err, rollbackErr)
			}
			return fmt.Errorf("commit base directory (rolled back): %w", err)
		}
		// Backup removal is best-effort; the transaction already landed.
		_ = os.RemoveAll(tx.backupDir)
	} else {
		if err := os.Rename(tx.tempDir, tx.baseDir); err != nil {
			return fmt.Errorf("commit base directory (new): %w", err)
		}
	}

	tx.committed = true
	return nil
}

// Rollback removes the temp directory, discarding all changes.
func (tx *CopyOnWriteTx) Rollback() error {
	if tx.committed {
		return fmt.Errorf("cannot rollback committed transaction")
	}
	if err := os.RemoveAll(tx.tempDir); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// TempDir returns the path to the temporary directory.
func (tx *CopyOnWriteTx) TempDir() string {
	return tx.tempDir
}

func copyDirRecursive(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyDirRecursive(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("copy contents: %w", err)
	}
	return nil
}
