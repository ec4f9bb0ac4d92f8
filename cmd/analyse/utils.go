package analyse

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/flowscan-io/flowscan/pkg/shared/files"
)

// collectDocumentPaths resolves the documents to analyse, either from the
// positional arguments or from the input-file list. Tilde prefixes are
// expanded in both cases.
func collectDocumentPaths(opts *RunOptionsAnalyse, args []string) ([]string, error) {
	raw := args
	if opts.InputFile != "" {
		var err error
		raw, err = readPathsFile(opts.InputFile)
		if err != nil {
			return nil, err
		}
	}

	paths := make([]string, len(raw))
	for i, p := range raw {
		expanded, err := files.ExpandPath(p)
		if err != nil {
			return nil, fmt.Errorf("failed to expand path %q: %w", p, err)
		}
		paths[i] = expanded
	}
	return paths, nil
}

// readPathsFile reads a list of document paths, one per line. Blank lines
// and '#' comments are skipped.
func readPathsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("input file %q lists no documents", path)
	}
	return paths, nil
}
