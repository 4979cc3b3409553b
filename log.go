package flatfat

import (
	"context"
	"io"
	"log/slog"
)

// levelTrace sits below slog's Debug level, in the teacher's pattern of
// a dedicated trace level for per-call engine tracing that's noisier
// than ordinary debug logging.
const levelTrace = slog.LevelDebug - 4

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// trace logs an engine entry point at levelTrace with the given
// structured attributes, mirroring soypat/fat's fsys.trace calls.
func (fs *FS) trace(op string, args ...any) {
	fs.log.Log(context.Background(), levelTrace, op, args...)
}
