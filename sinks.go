package prettyhttp

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WriterSink delivers each line to w followed by a newline. Combine with a
// rotating writer such as lumberjack.Logger to log transcripts to disk.
func WriterSink(w io.Writer) LineSink {
	return func(line string) {
		fmt.Fprintln(w, line)
	}
}

// ZapSink delivers each line as a zap message at the given level, so
// transcripts flow through an application's existing logging pipeline.
func ZapSink(logger *zap.Logger, level zapcore.Level) LineSink {
	return func(line string) {
		logger.Log(level, line)
	}
}
