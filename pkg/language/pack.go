// SPDX-License-Identifier: MPL-2.0

package language

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	textlang "golang.org/x/text/language"
)

// MaxPackSize is the largest pack file LoadPack accepts (1MB).
const MaxPackSize = 1 << 20

var (
	// ErrInvalidPack is the sentinel error wrapped by InvalidPackError.
	ErrInvalidPack = errors.New("invalid language pack")
	// ErrUnknownLanguage is the sentinel error wrapped by UnknownLanguageError.
	ErrUnknownLanguage = errors.New("unknown language")

	//go:embed locales/*.toml
	embeddedLocales embed.FS

	loadEmbedded = sync.OnceValues(func() (map[string]*Table, error) {
		return loadFS(embeddedLocales, "locales")
	})
)

type (
	// InvalidPackError is returned when a pack file cannot be decoded or
	// fails validation. It wraps ErrInvalidPack for errors.Is() compatibility.
	InvalidPackError struct {
		Filename string
		Reason   string
		Cause    error
	}

	// UnknownLanguageError is returned when no pack exists for a code.
	// It wraps ErrUnknownLanguage for errors.Is() compatibility.
	UnknownLanguageError struct {
		Code string
	}
)

// Error implements the error interface.
func (e *InvalidPackError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid language pack %s: %s: %v", e.Filename, e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid language pack %s: %s", e.Filename, e.Reason)
}

// Unwrap returns ErrInvalidPack so callers can use errors.Is for programmatic detection.
func (e *InvalidPackError) Unwrap() error { return ErrInvalidPack }

// Error implements the error interface.
func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q (available: %s)", e.Code, strings.Join(Codes(), ", "))
}

// Unwrap returns ErrUnknownLanguage so callers can use errors.Is for programmatic detection.
func (e *UnknownLanguageError) Unwrap() error { return ErrUnknownLanguage }

// English returns a copy of the embedded English reference table.
// It panics if the embedded packs are corrupt, which the package tests rule out.
func English() *Table {
	t, err := Embedded(EnglishCode)
	if err != nil {
		panic(err)
	}
	return t
}

// Embedded returns a copy of the embedded table for code.
// Codes are matched case-insensitively ("zh-cn" finds "zh-CN").
func Embedded(code string) (*Table, error) {
	tables, err := loadEmbedded()
	if err != nil {
		return nil, err
	}
	for c, t := range tables {
		if strings.EqualFold(c, code) {
			return t.Clone(), nil
		}
	}
	return nil, &UnknownLanguageError{Code: code}
}

// Codes returns the codes of every embedded table, sorted.
func Codes() []string {
	tables, err := loadEmbedded()
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(tables))
	for c := range tables {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// LoadPack reads a user-supplied TOML pack. Keyword lists the pack leaves
// empty are inherited from English.
func LoadPack(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read language pack %s: %w", filename, err)
	}
	return ParsePack(data, filename)
}

// ParsePack decodes and validates TOML pack content. Keyword lists the pack
// leaves empty are inherited from English.
func ParsePack(data []byte, filename string) (*Table, error) {
	t, err := decodePack(data, filename)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(t.Code, EnglishCode) {
		t.inherit(English())
	}
	slog.Debug("loaded language pack", "code", t.Code, "file", filename,
		"commands", len(t.Commands), "aliases", len(t.Aliases))
	return t, nil
}

func decodePack(data []byte, filename string) (*Table, error) {
	if len(data) > MaxPackSize {
		return nil, &InvalidPackError{Filename: filename, Reason: fmt.Sprintf("size %d bytes exceeds maximum %d bytes", len(data), MaxPackSize)}
	}

	var t Table
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, &InvalidPackError{Filename: filename, Reason: "decode failed", Cause: err}
	}

	if err := t.validate(); err != nil {
		return nil, &InvalidPackError{Filename: filename, Reason: err.Error()}
	}
	return &t, nil
}

func (t *Table) validate() error {
	if strings.TrimSpace(t.Code) == "" {
		return errors.New("code is required")
	}
	if _, err := textlang.Parse(t.Code); err != nil {
		return fmt.Errorf("code %q is not a valid language tag", t.Code)
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("name is required")
	}

	for field, m := range map[string]map[string]string{
		"commands":       t.Commands,
		"aliases":        t.Aliases,
		"renamed_blocks": t.RenamedBlocks,
		"dropdowns":      t.Dropdowns,
	} {
		for k, v := range m {
			if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
				return fmt.Errorf("%s: keys and values must not be blank (%q = %q)", field, k, v)
			}
		}
	}
	return nil
}

// loadFS loads every *.toml pack under dir. The file name (without
// extension) must equal the pack's code.
func loadFS(fsys fs.FS, dir string) (map[string]*Table, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("glob language packs: %w", err)
	}

	tables := make(map[string]*Table, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("read language pack %s: %w", f, err)
		}
		t, err := decodePack(data, f)
		if err != nil {
			return nil, err
		}
		if want := strings.TrimSuffix(path.Base(f), ".toml"); t.Code != want {
			return nil, &InvalidPackError{Filename: f, Reason: fmt.Sprintf("code %q must match file name %q", t.Code, want)}
		}
		tables[t.Code] = t
	}

	base, ok := tables[EnglishCode]
	if !ok {
		return nil, &InvalidPackError{Filename: dir, Reason: "reference pack en.toml is missing"}
	}
	for code, t := range tables {
		if code != EnglishCode {
			t.inherit(base)
		}
	}
	return tables, nil
}
