// Package envfile loads environment variables from .env files so a blog
// checkout can pin BLOG_TOOLS_DIR without exporting it in the shell.
// Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	vars, err := Parse(file)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	for _, v := range vars {
		if _, set := os.LookupEnv(v.Key); !set {
			_ = os.Setenv(v.Key, v.Value)
		}
	}
	return nil
}

// Var is one KEY=VALUE assignment.
type Var struct {
	Key   string
	Value string
}

// Parse returns the assignments in r in file order.
// Blank lines, comments and lines without '=' are skipped.
func Parse(r io.Reader) ([]Var, error) {
	var vars []Var
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if v, ok := parseLine(line); ok {
			vars = append(vars, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// parseLine extracts KEY=VALUE, dropping an "export " prefix and one pair
// of matching quotes around the value.
func parseLine(line string) (Var, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return Var{}, false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return Var{}, false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return Var{Key: key, Value: value}, true
}
