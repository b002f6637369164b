package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrAssetFile is returned when the asset file is missing or unreadable
	ErrAssetFile = errors.New("asset file unreadable")
	// ErrAssetNotFound is returned when a name has no section in the catalog
	ErrAssetNotFound = errors.New("card not found in this set")
	// ErrInvalidSection is returned by Write for a section that would not
	// parse back as written
	ErrInvalidSection = errors.New("invalid section")
)

// sectionHeader matches a "[Name]" line, nothing else on the line
var sectionHeader = regexp.MustCompile(`^\[([^\]]+)\]$`)

// Catalog maps asset names to multi-line glyph blocks
type Catalog struct {
	sections map[string]string
	order    []string
	preamble string
}

// Section is a single named glyph block, used when writing asset files
type Section struct {
	Name  string
	Glyph string
}

// Load parses the asset file at path
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetFile, err)
	}
	defer file.Close()

	return Parse(file)
}

// LoadFS parses the asset file name from fsys
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetFile, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a sectioned asset file. Lines before the first header are
// kept only as the preamble; a repeated header replaces the earlier
// section but keeps its position.
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{sections: make(map[string]string)}

	var (
		name   string
		active bool
		body   strings.Builder
	)

	flush := func() {
		if !active {
			c.preamble = body.String()
		} else {
			if _, seen := c.sections[name]; !seen {
				c.order = append(c.order, name)
			}
			c.sections[name] = body.String()
		}
		body.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			flush()
			name, active = m[1], true
			continue
		}

		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetFile, err)
	}

	// Last section runs to end of file
	flush()

	return c, nil
}

// Get returns the glyph block stored under name. An empty section yields
// "" with a nil error.
func (c *Catalog) Get(name string) (string, error) {
	glyph, ok := c.sections[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return glyph, nil
}

// Lines returns the glyph block split into lines, without the empty line
// that follows the final newline
func (c *Catalog) Lines(name string) ([]string, error) {
	glyph, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return SplitLines(glyph), nil
}

// Has reports whether name has a section, empty or not
func (c *Catalog) Has(name string) bool {
	_, ok := c.sections[name]
	return ok
}

// Names returns all section names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sections))
	for name := range c.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of sections
func (c *Catalog) Len() int {
	return len(c.sections)
}

// Sections returns every section sorted by name
func (c *Catalog) Sections() []Section {
	sections := make([]Section, 0, len(c.sections))
	for _, name := range c.Names() {
		sections = append(sections, Section{Name: name, Glyph: c.sections[name]})
	}
	return sections
}

// FileSections returns every section in the order its header first
// appeared in the file
func (c *Catalog) FileSections() []Section {
	sections := make([]Section, 0, len(c.order))
	for _, name := range c.order {
		sections = append(sections, Section{Name: name, Glyph: c.sections[name]})
	}
	return sections
}

// Preamble returns the text before the first section header
func (c *Catalog) Preamble() string {
	return c.preamble
}

// ValidName reports whether "[name]" reads back as a header for name
func ValidName(name string) bool {
	if strings.ContainsAny(name, "\r\n") {
		return false
	}
	m := sectionHeader.FindStringSubmatch("[" + name + "]")
	return m != nil && m[1] == name
}

// SplitLines splits a glyph block on newlines, dropping the trailing
// empty element left by a terminating newline
func SplitLines(glyph string) []string {
	if glyph == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(glyph, "\n"), "\n")
}

// Write serializes sections in the asset file format. Nothing is written
// when a name is not a valid header or a glyph line would read as one.
func Write(w io.Writer, sections []Section) error {
	for _, s := range sections {
		if !ValidName(s.Name) {
			return fmt.Errorf("%w: bad name %q", ErrInvalidSection, s.Name)
		}
		for _, line := range SplitLines(s.Glyph) {
			if sectionHeader.MatchString(strings.TrimSuffix(line, "\r")) {
				return fmt.Errorf("%w: line %q of [%s] reads as a header", ErrInvalidSection, line, s.Name)
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, s := range sections {
		if _, err := fmt.Fprintf(bw, "[%s]\n", s.Name); err != nil {
			return err
		}
		glyph := s.Glyph
		if glyph != "" && !strings.HasSuffix(glyph, "\n") {
			glyph += "\n"
		}
		if _, err := bw.WriteString(glyph); err != nil {
			return err
		}
	}
	return bw.Flush()
}
