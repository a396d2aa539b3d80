package manifest

import (
	"strconv"
	"strings"
	"time"
)

// ParseEntries parses flat-log content, one entry per line. Malformed lines
// are silently skipped.
func ParseEntries(content string) []Entry {
	content = strings.TrimRight(content, "\n\r ")
	if content == "" {
		return nil
	}

	var entries []Entry
	for _, line := range strings.Split(content, "\n") {
		if e, ok := parseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// parseLine parses a single log line of the form
//
//	<RFC3339>  tool=x  icon=y  density=z  edge=48  outcome=written  detail="..."
func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	ts, ok := extractTimestamp(line)
	if !ok {
		return Entry{}, false
	}

	e := Entry{
		Time:    ts,
		Tool:    extractField(line, "tool"),
		Icon:    extractField(line, "icon"),
		Density: extractField(line, "density"),
		Outcome: extractField(line, "outcome"),
	}
	if e.Tool == "" || e.Outcome == "" {
		return Entry{}, false
	}
	if v := extractField(line, "edge"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			e.Edge = n
		}
	}
	if d := extractField(line, "detail"); d != "" {
		if unq, err := strconv.Unquote(d); err == nil {
			e.Detail = unq
		} else {
			e.Detail = d
		}
	}
	return e, true
}

// extractTimestamp parses the leading RFC3339 timestamp of a log line.
func extractTimestamp(line string) (time.Time, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// extractField returns the value of a key=value field, or "". Quoted values
// (detail=%q) are returned with their quotes intact; parseLine unquotes.
func extractField(line, key string) string {
	marker := key + "="
	idx := strings.Index(line, marker)
	if idx < 0 {
		return ""
	}
	rest := line[idx+len(marker):]
	if strings.HasPrefix(rest, `"`) {
		// Find the closing quote, honoring escapes.
		for i := 1; i < len(rest); i++ {
			if rest[i] == '\\' {
				i++
				continue
			}
			if rest[i] == '"' {
				return rest[:i+1]
			}
		}
		return rest
	}
	if end := strings.IndexAny(rest, " \t"); end >= 0 {
		return rest[:end]
	}
	return rest
}

// countWritten tallies written variants per icon.
func countWritten(entries []Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.Outcome == "written" && e.Icon != "" {
			counts[e.Icon]++
		}
	}
	return counts
}
