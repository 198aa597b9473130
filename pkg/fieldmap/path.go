package fieldmap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Path is a parsed logical form-data path. Entry is -1 when the path does not
// address a repeated entry.
type Path struct {
	Section string
	Group   string
	Entry   int
	Field   string
}

var entrySegmentRe = regexp.MustCompile(`^entries\[(\d+)\]$`)

// ParsePath parses a dotted logical path. Accepted shapes:
//
//	section2.dateOfBirth.date
//	section13.nonFederalEmployment.entries[0].employerName
//
// A trailing ".value" segment, as used by the browser data model, is dropped.
func ParsePath(raw string) (Path, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Path{}, fmt.Errorf("fieldmap: empty path")
	}

	segments := strings.Split(trimmed, ".")
	if last := segments[len(segments)-1]; last == "value" {
		segments = segments[:len(segments)-1]
	}

	p := Path{Entry: -1}
	switch len(segments) {
	case 3:
		p.Section, p.Group, p.Field = segments[0], segments[1], segments[2]
	case 4:
		match := entrySegmentRe.FindStringSubmatch(segments[2])
		if match == nil {
			return Path{}, fmt.Errorf("fieldmap: malformed entry segment %q in %q", segments[2], raw)
		}
		idx, err := strconv.Atoi(match[1])
		if err != nil {
			return Path{}, fmt.Errorf("fieldmap: malformed entry index in %q: %w", raw, err)
		}
		p.Section, p.Group, p.Entry, p.Field = segments[0], segments[1], idx, segments[3]
	default:
		return Path{}, fmt.Errorf("fieldmap: path %q must have 3 or 4 segments", raw)
	}

	for _, part := range []string{p.Section, p.Group, p.Field} {
		if strings.TrimSpace(part) == "" {
			return Path{}, fmt.Errorf("fieldmap: path %q has an empty segment", raw)
		}
	}
	return p, nil
}

// String reassembles the canonical dotted form of the path.
func (p Path) String() string {
	if p.Entry < 0 {
		return p.Section + "." + p.Group + "." + p.Field
	}
	return fmt.Sprintf("%s.%s.entries[%d].%s", p.Section, p.Group, p.Entry, p.Field)
}
