// Package ini parses INI-style settings files into a raw section mapping.
//
// The result distinguishes a key written without '=' (value is nil) from a
// key with an empty value. Section and key names keep their exact case;
// lookups are case-sensitive. Full-line comments start with ';' or '#'.
package ini

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lanrat/bgpexplorer/src/internal/utils"
)

// Sections maps section name -> key name -> optional value.
// A nil value pointer means the key was present without '='.
type Sections map[string]map[string]*string

// HasSection returns true if the named section exists.
func (s Sections) HasSection(name string) bool {
	_, ok := s[name]
	return ok
}

// Has returns true if the key exists in the named section.
func (s Sections) Has(section, key string) bool {
	keys, ok := s[section]
	if !ok {
		return false
	}
	_, ok = keys[key]
	return ok
}

// Get returns the raw value of a key, nil when the key was written without
// '='. Use Has to distinguish an absent key from a valueless one.
func (s Sections) Get(section, key string) *string {
	return s[section][key]
}

// Parse reads INI-style text into a section mapping.
// Later duplicate keys overwrite earlier ones; duplicate section headers
// merge into one section.
func Parse(r io.Reader) (Sections, error) {
	sections := make(Sections)

	var current string
	var haveSection bool

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: malformed section header %q", lineNo, line)
			}
			current = strings.TrimSpace(line[1 : len(line)-1])
			haveSection = true
			if _, ok := sections[current]; !ok {
				sections[current] = make(map[string]*string)
			}
			continue
		}

		if !haveSection {
			return nil, fmt.Errorf("line %d: key %q outside of any section", lineNo, line)
		}

		if idx := strings.Index(line, "="); idx >= 0 {
			key := strings.TrimSpace(line[:idx])
			if key == "" {
				return nil, fmt.Errorf("line %d: empty key name", lineNo)
			}
			value := strings.TrimSpace(line[idx+1:])
			sections[current][key] = &value
		} else {
			// Key without '=': recorded with no value.
			sections[current][line] = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// Load reads and parses an INI file from disk.
func Load(path string) (Sections, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(file)

	sections, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return sections, nil
}
