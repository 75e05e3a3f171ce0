package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// InputFromFile reads one raw time range per line; blank lines are dropped
func InputFromFile(file string) ([]string, error) {
	reader, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer reader.Close()

	return ReadInput(reader)
}

func ReadInput(reader io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return lines, nil
}
