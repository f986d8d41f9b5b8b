package logs

import (
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"ipjournal/pkg/models"
)

// Channels, one per severity
const (
	ChannelInfo    = "info"
	ChannelSuccess = "success"
	ChannelError   = "error"
)

const colorReset = "\033[0m"

var channelColors = map[string]string{
	ChannelInfo:    "\033[34m",
	ChannelSuccess: "\033[32m",
	ChannelError:   "\033[31m",
}

// Manager writes operator messages to the console and, optionally, to a rotated file
type Manager struct {
	out   io.Writer
	color bool
	file  *lumberjack.Logger
	mu    sync.Mutex
	now   func() time.Time
}

// NewManager creates a new log manager writing to out
func NewManager(out io.Writer, color bool) *Manager {
	return &Manager{
		out:   out,
		color: color,
		now:   time.Now,
	}
}

// AttachFile mirrors every following message, uncolored, into filename
func (m *Manager) AttachFile(filename string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file != nil {
		m.file.Close()
	}
	m.file = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// Close releases the log file, if any
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file = nil
	return err
}

// Info reports progress
func (m *Manager) Info(format string, args ...any) {
	m.log(ChannelInfo, format, args...)
}

// Success reports a completed run
func (m *Manager) Success(format string, args ...any) {
	m.log(ChannelSuccess, format, args...)
}

// Error reports a fatal or failed run
func (m *Manager) Error(format string, args ...any) {
	m.log(ChannelError, format, args...)
}

func (m *Manager) log(channel, format string, args ...any) {
	now := m.now()
	m.addLogEntry(&models.LogEntry{
		Timestamp: now,
		UnixTime:  now.Unix(),
		Channel:   channel,
		Message:   fmt.Sprintf(format, args...),
	})
}

// addLogEntry renders one entry to every destination
func (m *Manager) addLogEntry(entry *models.LogEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.color {
		fmt.Fprintf(m.out, "%s%s%s\n", channelColors[entry.Channel], entry.Message, colorReset)
	} else {
		fmt.Fprintln(m.out, entry.Message)
	}

	if m.file != nil {
		fmt.Fprintf(m.file, "%s [%s] %s\n", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Channel, entry.Message)
	}
}
