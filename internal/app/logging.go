package app

import (
	"fmt"
	"io"
	"log"
	"os"
)

// OpenLog returns a logger writing to c.LogFile when set, or to fallback
// otherwise. The returned closer releases the log file.
func (c *Config) OpenLog(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = fallback
		closer io.Closer = io.NopCloser(nil)
	)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}
	return log.New(w, prefix, log.Ldate|log.Ltime|log.Lmsgprefix), closer, nil
}
