// Package whitelist reads and rewrites the device allow-list file.
//
// The file is plain UTF-8 text: a fixed comment header, a blank line, then
// one lowercase hex token per line in ascending order. On read, blank lines
// and lines starting with '#' are ignored.
package whitelist

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/wlsync/internal/serial"
)

// DefaultPath is the allow-list location used when none is configured.
const DefaultPath = "WhiteList.config"

// Header is written at the top of every allow-list file.
var Header = []string{
	"# 设备白名单列表",
	"# 每行一个十六进制设备序列号",
	"# 自动从Excel文件表1更新",
}

// MergeResult describes the outcome of merging tokens into the allow-list.
type MergeResult struct {
	// Changed is true when at least one token was not already listed.
	Changed bool `json:"changed"`

	// Added holds the newly listed tokens in ascending order.
	Added []string `json:"added"`

	// Existing is the number of tokens listed before the merge.
	Existing int `json:"existing"`

	// Total is the number of tokens listed after the merge.
	Total int `json:"total"`
}

// File is an allow-list stored at a fixed path. Nothing guards against
// another process rewriting the same path between Load and the write.
type File struct {
	path string
}

// New returns a File backed by path.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Load returns the tokens currently listed. A missing file yields an empty
// set, not an error.
func (f *File) Load() (serial.Set, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return serial.NewSet(), nil
		}
		return nil, &ReadError{Path: f.path, Err: err}
	}
	return Parse(data), nil
}

// Plan computes what Merge would do without touching the file.
func (f *File) Plan(tokens serial.Set) (*MergeResult, serial.Set, error) {
	existing, err := f.Load()
	if err != nil {
		return nil, nil, err
	}

	all := existing.Union(tokens)
	added := tokens.Difference(existing).Sorted()
	return &MergeResult{
		Changed:  len(added) > 0,
		Added:    added,
		Existing: existing.Len(),
		Total:    all.Len(),
	}, all, nil
}

// Merge adds tokens to the allow-list and rewrites the file. The file is
// rewritten even when nothing changed so the header and ordering are always
// canonical.
func (f *File) Merge(tokens serial.Set) (*MergeResult, error) {
	result, all, err := f.Plan(tokens)
	if err != nil {
		return nil, err
	}
	if err := f.write(Render(all)); err != nil {
		return nil, err
	}
	return result, nil
}

// Merge is shorthand for New(path).Merge(tokens).
func Merge(tokens serial.Set, path string) (*MergeResult, error) {
	return New(path).Merge(tokens)
}

// Parse extracts the listed tokens from allow-list file content. Lines of
// any length are accepted.
func Parse(data []byte) serial.Set {
	set := serial.NewSet()
	for _, raw := range bytes.Split(data, []byte("\n")) {
		line := strings.TrimSpace(string(raw))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(line)
	}
	return set
}

// Render returns the full file content for the given tokens.
func Render(tokens serial.Set) []byte {
	var b bytes.Buffer
	for _, line := range Header {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for _, t := range tokens.Sorted() {
		b.WriteString(t)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// write replaces the file through a temp file in the same directory so a
// failed write never leaves a truncated allow-list behind.
func (f *File) write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return &WriteError{Path: f.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: f.path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: f.path, Err: err}
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: f.path, Err: err}
	}
	return nil
}
