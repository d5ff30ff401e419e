package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rl1809/shop-sim/internal/core/domain"
)

// FileAuditLog appends audit lines to a plain-text file. The file is opened in
// append mode for every record and is never truncated.
type FileAuditLog struct {
	path string
}

func NewFileAuditLog(path string) *FileAuditLog {
	return &FileAuditLog{path: path}
}

func (f *FileAuditLog) RecordCheckout(_ context.Context, order domain.Order) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}

	if _, err := fmt.Fprintln(file, order.AuditLine()); err != nil {
		file.Close()
		return fmt.Errorf("write audit log: %w", err)
	}

	return file.Close()
}

// Lines returns every audit line in file order. A missing file is an empty trail.
func (f *FileAuditLog) Lines(_ context.Context) ([]string, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	return lines, nil
}
