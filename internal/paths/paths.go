// Package paths turns the user's input (glob patterns or stdin lines)
// into the ordered list of file paths the runner will hash.
package paths

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/gobwas/glob"

	"github.com/lookbusy1344/hashgo/internal/config"
)

// Gather resolves the run's path list. Patterns from the command line
// are glob-expanded; with no patterns, newline-separated paths are read
// from stdin. The configured limit truncates the final list. Debug notes
// about skipped entries go to debugOut when non-nil.
func Gather(s *config.Settings, stdin io.Reader, debugOut io.Writer) ([]string, error) {
	var (
		result []string
		err    error
	)
	if len(s.Patterns) > 0 {
		result, err = expandPatterns(s, debugOut)
	} else {
		result, err = readStdinPaths(stdin, debugOut)
	}
	if err != nil {
		return nil, err
	}

	if s.Limit > 0 && len(result) > s.Limit {
		result = result[:s.Limit]
	}
	return result, nil
}

func expandPatterns(s *config.Settings, debugOut io.Writer) ([]string, error) {
	var result []string
	for _, pattern := range s.Patterns {
		matches, err := expandOne(pattern, s.CaseSensitive)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			result = append(result, matches...)
			continue
		}

		// The pattern matched nothing. A literal path that names a file
		// still passes through; a directory is skipped with a note; a
		// literal path naming nothing at all is an error.
		if isFile(pattern) {
			result = append(result, pattern)
		} else if !hasMeta(pattern) {
			if info, err := os.Stat(pattern); err == nil && info.IsDir() {
				if debugOut != nil {
					fmt.Fprintf(debugOut, "Ignoring directory: %s\n", pattern)
				}
			} else {
				return nil, fmt.Errorf("file not found: %s", pattern)
			}
		}
	}
	return result, nil
}

// expandOne walks from the pattern's literal base directory and returns
// every regular file whose path matches the compiled glob, sorted.
func expandOne(pattern string, caseSensitive bool) ([]string, error) {
	if !hasMeta(pattern) {
		if isFile(pattern) {
			return []string{pattern}, nil
		}
		return nil, nil
	}

	matcher, err := compile(pattern, caseSensitive)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	root := literalBase(pattern)

	// fastwalk fans callbacks out across goroutines; the slice append
	// needs the mutex.
	var mu sync.Mutex
	var matches []string
	walkErr := fastwalk.Walk(nil, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory entries are skipped, not fatal: the
			// files we can reach are still hashed.
			return nil
		}
		if !isRegularOrLink(path, d) {
			return nil
		}
		// fastwalk joins root and name without cleaning, so children of
		// "." arrive as "./a.txt"; Clean them or a bare "*.txt" pattern
		// would never match.
		candidate := filepath.ToSlash(filepath.Clean(path))
		if !caseSensitive {
			candidate = strings.ToLower(candidate)
		}
		if matcher.Match(candidate) {
			mu.Lock()
			matches = append(matches, path)
			mu.Unlock()
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	sort.Strings(matches)
	return matches, nil
}

// isRegularOrLink reports whether the entry is a regular file, following
// symlinks the way a stat-based existence check would.
func isRegularOrLink(path string, d fs.DirEntry) bool {
	typ := d.Type()
	if typ.IsRegular() {
		return true
	}
	if typ&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	}
	return false
}

func compile(pattern string, caseSensitive bool) (glob.Glob, error) {
	p := filepath.ToSlash(filepath.Clean(pattern))
	if !caseSensitive {
		p = strings.ToLower(p)
	}
	return glob.Compile(p, '/')
}

// literalBase returns the longest directory prefix of the pattern that
// contains no glob metacharacters, used as the walk root.
func literalBase(pattern string) string {
	dir := filepath.Dir(pattern)
	for hasMeta(dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if hasMeta(dir) || dir == "" {
		return "."
	}
	return dir
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[]{}")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// readStdinPaths reads one path per line, keeping only existing regular
// files. Anything else gets a debug note and is dropped; a read error on
// stdin itself aborts.
func readStdinPaths(stdin io.Reader, debugOut io.Writer) ([]string, error) {
	var result []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isFile(line) {
			result = append(result, line)
		} else if debugOut != nil {
			fmt.Fprintf(debugOut, "Not a file: %s\n", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return result, nil
}
