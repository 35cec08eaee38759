package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// chunkSize is how much of the file is read per step when walking backwards.
const chunkSize = 8 * 1024

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
//
// The file is read backwards in fixed chunks, so the cost depends on the
// number of lines wanted rather than on the size of the log.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	var (
		offset = info.Size()
		tail   []byte
		buf    = make([]byte, chunkSize)
	)
	// One extra newline covers the terminator of the last line.
	for offset > 0 && bytes.Count(tail, []byte{'\n'}) <= maxLines {
		n := int64(chunkSize)
		if offset < n {
			n = offset
		}
		offset -= n
		if _, err := file.ReadAt(buf[:n], offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		tail = append(append(make([]byte, 0, int(n)+len(tail)), buf[:n]...), tail...)
	}

	lines := splitLines(tail)
	if offset > 0 && len(lines) > 0 {
		// The first line may start before offset.
		lines = lines[1:]
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return lines, nil
}

// Tail reads the last maxLines of the file at path and parses them.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines), nil
}

// splitLines splits on '\n', dropping a trailing empty line and any '\r'
// before a newline.
func splitLines(data []byte) []string {
	data = bytes.TrimSuffix(data, []byte{'\n'})
	if len(data) == 0 {
		return nil
	}
	parts := bytes.Split(data, []byte{'\n'})
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(bytes.TrimSuffix(p, []byte{'\r'}))
	}
	return lines
}
