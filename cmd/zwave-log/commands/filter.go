package commands

import (
	"fmt"
	"io"

	"github.com/zwave-protocol/zwave-go/pkg/log"
)

// RunFilter copies matching events into a new capture file and returns
// the number copied.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Close()
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}

	if err := logger.Close(); err != nil {
		return count, fmt.Errorf("closing %s: %w", output, err)
	}
	if n := logger.Dropped(); n > 0 {
		return count - n, fmt.Errorf("%d events could not be written to %s", n, output)
	}
	return count, nil
}
