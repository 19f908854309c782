package gitio

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ReadIgnorePatterns returns the raw pattern lines of the repository's
// top-level .gitignore, comments and blanks stripped. A missing or
// unreadable file yields nil; ignore hygiene then treats nothing as
// covered.
func ReadIgnorePatterns(root string) []string {
	file, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
