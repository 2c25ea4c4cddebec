package logsource

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadFile returns the lines of the file at path. When maxLines is positive
// only that many lines from the end are kept; zero or negative keeps all.
// "-" reads stdin instead.
func ReadFile(path string, maxLines int) ([]string, error) {
	if path == "-" {
		lines, err := readLines(os.Stdin, maxLines)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return lines, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := readLines(file, maxLines)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

func readLines(r io.Reader, maxLines int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		return lines, scanner.Err()
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
