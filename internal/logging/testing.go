// pattern: Imperative Shell

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NopLogger returns a logger that discards all output.
func NopLogger() *ScopedLogger {
	return &ScopedLogger{}
}

// TestLogManager is a LoggerProvider for tests. It writes only to a channel,
// at debug level, so tests can assert on what was logged.
type TestLogManager struct {
	channelSink *ChannelSink
	cache       *loggerCache
}

// NewTestLogManager creates a channel-only log manager.
func NewTestLogManager(bufferSize int) *TestLogManager {
	channelSink := NewChannelSink(bufferSize)
	core := zapcore.NewCore(newEncoder(), zapcore.AddSync(channelSink), zapcore.DebugLevel)

	return &TestLogManager{
		channelSink: channelSink,
		cache:       newLoggerCache(zap.New(core), zapcore.DebugLevel),
	}
}

// For returns a scoped logger. Named For() to match the production Manager API.
func (m *TestLogManager) For(scope string) *ScopedLogger {
	return m.cache.get(scope)
}

// Channel returns the channel for receiving log entries.
func (m *TestLogManager) Channel() <-chan LogEntry {
	return m.channelSink.Entries()
}

// Drain returns every entry currently buffered without blocking.
func (m *TestLogManager) Drain() []LogEntry {
	var out []LogEntry
	for {
		select {
		case e, ok := <-m.channelSink.Entries():
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
}

// Close closes the test log manager.
func (m *TestLogManager) Close() error {
	return m.channelSink.Close()
}
