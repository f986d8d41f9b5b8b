package journal

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"ipjournal/pkg/models"
	"ipjournal/pkg/utils"
)

// TimestampLayout is the layout of the timestamp part of a journal line
const TimestampLayout = "2006-01-02 15:04:05"

var (
	addressPattern   = regexp.MustCompile(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`)
	timestampPattern = regexp.MustCompile(`^[0-9]{4}-(?:0[1-9]|1[0-2])-(?:0[1-9]|[12][0-9]|3[01]) (?:2[0-3]|[01][0-9]):[0-5][0-9]:[0-5][0-9]$`)
)

// Parser handles access journal parsing
type Parser struct {
	loc *time.Location
}

// NewParser creates a parser reading timestamps in loc (time.Local when nil)
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{loc: loc}
}

// Load reads the whole journal file and parses it.
// The second value is the number of rejected lines.
func (p *Parser) Load(path string) ([]models.JournalEntry, int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, &utils.InputNotFoundError{Path: path}
		}
		return nil, 0, &utils.IOError{Op: "read", Path: path, Err: err}
	}

	entries, rejected := p.ParseJournal(string(content))
	return entries, rejected, nil
}

// lineBreaks folds \r\n and bare \r line endings into \n
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseJournal parses journal data from string content
func (p *Parser) ParseJournal(content string) ([]models.JournalEntry, int) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(lineBreaks.Replace(content), "\n")
	// a trailing newline does not start another record
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return p.ParseLines(lines)
}

// ParseLines keeps the valid lines in their original order and drops the rest
func (p *Parser) ParseLines(lines []string) ([]models.JournalEntry, int) {
	entries := make([]models.JournalEntry, 0, len(lines))
	rejected := 0

	for _, line := range lines {
		entry, ok := p.ParseLine(line)
		if !ok {
			rejected++
			continue // Skip invalid lines
		}
		entries = append(entries, entry)
	}

	return entries, rejected
}

// ParseLine parses a single "<address>:<timestamp>" line
func (p *Parser) ParseLine(line string) (models.JournalEntry, bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return models.JournalEntry{}, false
	}

	address := strings.TrimSpace(line[:idx])
	stamp := strings.TrimSpace(line[idx+1:])

	if !addressPattern.MatchString(address) || !timestampPattern.MatchString(stamp) {
		return models.JournalEntry{}, false
	}

	addr, ok := utils.ParseAddress(address)
	if !ok {
		return models.JournalEntry{}, false
	}

	// the pattern lets 2022-02-30 through, the calendar does not
	ts, err := time.ParseInLocation(TimestampLayout, stamp, p.loc)
	if err != nil {
		return models.JournalEntry{}, false
	}

	return models.JournalEntry{Address: addr, Timestamp: ts}, true
}
