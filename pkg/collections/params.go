package collections

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadArgsParamsFile expands a leading "@FILE" argument into the lines of
// FILE, one argument per non-empty line.  Other argument lists are returned
// unchanged.
func ReadArgsParamsFile(args []string) ([]string, error) {
	if len(args) != 1 || !strings.HasPrefix(args[0], "@") {
		return args, nil
	}
	filename := args[0][1:]
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open params file %q: %w", filename, err)
	}
	defer f.Close()

	var params []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			params = append(params, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read params file %q: %w", filename, err)
	}
	return params, nil
}
