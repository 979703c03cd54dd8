package resolve

import (
	"regexp"
	"strings"
)

// Field is a numbered declaration inside a proto oneof or message body.
type Field struct {
	Type   string
	Number int
}

var fieldPattern = regexp.MustCompile(`^(\w+)\s+(\w+)\s*=\s*(\d+);`)

// ExtractFields scans text line by line for `<type> <name> = <number>;`
// declarations, skipping blanks and // comments. It returns the fields
// keyed by name and the highest number seen (0 when there are none).
// A name declared twice keeps the later declaration.
func ExtractFields(text string) (map[string]Field, int) {
	fields := make(map[string]Field)
	maxNumber := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		m := fieldPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		number := atoiDigits(m[3])
		fields[m[2]] = Field{Type: m[1], Number: number}
		if number > maxNumber {
			maxNumber = number
		}
	}

	return fields, maxNumber
}

var (
	quotedImportPattern  = regexp.MustCompile(`^\s*"([^"]+)"`)
	aliasedImportPattern = regexp.MustCompile(`^\s*\w+\s+"([^"]+)"`)
)

// ExtractImports collects package paths from Go-style import
// declarations, both the single-line form and lines inside an
// import ( ... ) block.
func ExtractImports(text string) map[string]struct{} {
	imports := make(map[string]struct{})

	inBlock := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "import ("):
			inBlock = true
		case line == ")" && inBlock:
			inBlock = false
		case strings.HasPrefix(line, "import "):
			if path, ok := matchImport(strings.TrimPrefix(line, "import ")); ok {
				imports[path] = struct{}{}
			}
		case inBlock && line != "" && !strings.HasPrefix(line, "//"):
			if path, ok := matchImport(line); ok {
				imports[path] = struct{}{}
			}
		}
	}

	return imports
}

func matchImport(line string) (string, bool) {
	if m := quotedImportPattern.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := aliasedImportPattern.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

var casePattern = regexp.MustCompile(`(?m)^\s*case\s+\*[\w.]*\.(\w+):`)
var defaultPattern = regexp.MustCompile(`(?m)^\s*default\s*:`)

// ExtractCases collects type-switch cases of the form `case *pkg.Type:`
// keyed by the type name. The stored text is the full case including its
// body, ending where the next case, a default, or the text ends.
func ExtractCases(text string) map[string]string {
	cases := make(map[string]string)

	starts := casePattern.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range starts {
		tag := text[loc[2]:loc[3]]

		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		body := text[loc[0]:end]

		// A default branch belongs to the switch, not to this case.
		if d := defaultPattern.FindStringIndex(body); d != nil {
			body = body[:d[0]]
		}

		cases[tag] = strings.TrimRight(body, "\n\t ")
	}

	return cases
}

// atoiDigits converts a digits-only string already vetted by a regexp.
func atoiDigits(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
