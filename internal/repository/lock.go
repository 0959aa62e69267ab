package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"syscall"
	"time"
)

// staleLockAge is how old a lock may get before it is considered
// abandoned even when the owning process cannot be probed.
const staleLockAge = 30 * time.Minute

// LockFile represents the metadata stored in .wsjf/.lock.
type LockFile struct {
	PID       int       `json:"pid"`
	Hostname  string    `json:"hostname"`
	Tool      string    `json:"tool"` // "cli" or an embedding application
	Timestamp time.Time `json:"timestamp"`
}

// FileLock manages the global planning-directory lock. Mutations must be
// serialized; the lock is how independent processes do it.
type FileLock struct {
	path string
	file *os.File
	tool string
}

// NewFileLock creates a new file lock.
func NewFileLock(path, tool string) *FileLock {
	return &FileLock{path: path, tool: tool}
}

// Acquire attempts to acquire the file lock with stale detection.
func (l *FileLock) Acquire() error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close lock file during error handling: %v", closeErr)
		}

		existing, readErr := l.readLockFile()
		if readErr == nil && l.isStale(existing) {
			return l.stealLock()
		}
		if readErr == nil {
			age := time.Since(existing.Timestamp).Round(time.Second)
			return fmt.Errorf("planning data locked by %s (PID %d, %v ago)",
				existing.Tool, existing.PID, age)
		}
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	l.file = file

	hostname, _ := os.Hostname()
	lockData := LockFile{
		PID:       os.Getpid(),
		Hostname:  hostname,
		Tool:      l.tool,
		Timestamp: time.Now(),
	}

	data, _ := json.MarshalIndent(lockData, "", "  ")
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncate lock file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("seek lock file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write lock metadata: %w", err)
	}

	return nil
}

// Release releases the file lock.
func (l *FileLock) Release() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		log.Printf("warning: failed to release flock: %v", err)
	}
	if err := l.file.Close(); err != nil {
		log.Printf("warning: failed to close lock file: %v", err)
	}
	l.file = nil

	return os.Remove(l.path)
}

func (l *FileLock) readLockFile() (*LockFile, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	var lock LockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}

// isStale checks if a lock is stale (process dead or too old).
func (l *FileLock) isStale(lock *LockFile) bool {
	process, err := os.FindProcess(lock.PID)
	if err != nil {
		return true
	}
	// On Unix FindProcess always succeeds; signal 0 probes liveness.
	if err := process.Signal(syscall.Signal(0)); err != nil {
		return true
	}
	return time.Since(lock.Timestamp) > staleLockAge
}

// stealLock forcibly steals a stale lock.
func (l *FileLock) stealLock() error {
	_ = os.Remove(l.path)
	return l.Acquire()
}
