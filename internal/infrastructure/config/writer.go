package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered encodes cfg as TOML at path. Keys keep struct order;
// tables are sorted by name so repeated writes produce identical files.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML renders cfg the way WriteConfigOrdered stores it.
func EncodeTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTables(buf.String())), nil
}

type tomlTable struct {
	name  string
	lines []string
}

// sortTables reorders [table] blocks alphabetically. Keys before the first
// header stay on top.
func sortTables(content string) string {
	var (
		top    []string
		tables []tomlTable
	)

	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, tomlTable{name: m[1], lines: []string{line}})
			continue
		}
		if len(tables) == 0 {
			top = append(top, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(tables, func(a, b tomlTable) int {
		return strings.Compare(a.name, b.name)
	})

	blocks := make([]string, 0, len(tables)+1)
	if head := strings.TrimSpace(strings.Join(top, "\n")); head != "" {
		blocks = append(blocks, head)
	}
	for _, t := range tables {
		blocks = append(blocks, strings.TrimRight(strings.Join(t.lines, "\n"), "\n "))
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
