package logsource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/euank/go-kmsg-parser/kmsgparser"
)

// kmsgIdle is how long to wait for another /dev/kmsg record before deciding
// the existing buffer has been drained. Reading /dev/kmsg replays the ring
// buffer and then blocks; the idle cutoff turns that stream into a batch.
const kmsgIdle = 250 * time.Millisecond

// ReadKmsg drains the kernel ring buffer from /dev/kmsg. Requires read
// access to /dev/kmsg, which usually means root.
func ReadKmsg(ctx context.Context, maxLines int) ([]string, error) {
	parser, err := kmsgparser.NewParser()
	if err != nil {
		return nil, fmt.Errorf("open /dev/kmsg: %w", err)
	}
	defer parser.Close()

	msgs := parser.Parse()
	timer := time.NewTimer(kmsgIdle)
	defer timer.Stop()

	var lines []string
	for {
		select {
		case msg, open := <-msgs:
			if !open {
				return tail(lines, maxLines), nil
			}
			text := strings.TrimRight(msg.Message, "\n")
			lines = append(lines, fmt.Sprintf("[%s] %s", msg.Timestamp.Format(time.StampMicro), text))
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(kmsgIdle)
		case <-timer.C:
			return tail(lines, maxLines), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func tail(lines []string, maxLines int) []string {
	if maxLines > 0 && len(lines) > maxLines {
		return lines[len(lines)-maxLines:]
	}
	return lines
}
