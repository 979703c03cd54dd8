package resolve

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy merges a single conflict block into replacement text. All
// strategies share the same policy: the incoming side is the base, and
// current-side content is folded in additively when it is absent from
// the incoming side. Strategies never fail; the worst case is returning
// the incoming text unchanged.
type Strategy interface {
	Merge(b Block) string
}

// FieldStrategy merges numbered field declarations. Fields that exist
// only on the current side are appended to the incoming text with fresh
// numbers starting after the highest number either side uses, in
// lexicographic name order. A name present on both sides keeps the
// incoming declaration.
type FieldStrategy struct {
	reporter Reporter
}

func NewFieldStrategy(r Reporter) FieldStrategy {
	return FieldStrategy{reporter: r}
}

func (s FieldStrategy) Merge(b Block) string {
	currentFields, currentMax := ExtractFields(b.CurrentText)
	incomingFields, incomingMax := ExtractFields(b.IncomingText)

	var currentOnly []string
	for name := range currentFields {
		if _, ok := incomingFields[name]; ok {
			s.reporter.FieldSuperseded(name)
			continue
		}
		currentOnly = append(currentOnly, name)
	}

	if len(currentOnly) == 0 {
		return b.IncomingText
	}

	sort.Strings(currentOnly)

	next := incomingMax
	if currentMax > next {
		next = currentMax
	}
	next++

	lines := make([]string, 0, len(currentOnly))
	for _, name := range currentOnly {
		field := currentFields[name]
		lines = append(lines, fmt.Sprintf("    %s %s = %d;", field.Type, name, next))
		s.reporter.FieldAdded(name, field.Type, next)
		next++
	}

	return strings.TrimRight(b.IncomingText, " \t\n") + "\n" + strings.Join(lines, "\n")
}

// ImportCaseStrategy merges Go source conflicts that touch import lists
// and type-switch cases. Cases that exist only on the current side are
// appended after the incoming text. Missing imports are reported but not
// spliced into the import block; callers must add those by hand.
type ImportCaseStrategy struct {
	reporter Reporter
}

func NewImportCaseStrategy(r Reporter) ImportCaseStrategy {
	return ImportCaseStrategy{reporter: r}
}

func (s ImportCaseStrategy) Merge(b Block) string {
	currentImports := ExtractImports(b.CurrentText)
	incomingImports := ExtractImports(b.IncomingText)

	var missingImports []string
	for path := range currentImports {
		if _, ok := incomingImports[path]; !ok {
			missingImports = append(missingImports, path)
		}
	}
	sort.Strings(missingImports)
	for _, path := range missingImports {
		if !strings.Contains(b.IncomingText, `"`+path+`"`) {
			s.reporter.ImportMissing(path)
		}
	}

	currentCases := ExtractCases(b.CurrentText)
	incomingCases := ExtractCases(b.IncomingText)

	var missingCases []string
	for tag := range currentCases {
		if _, ok := incomingCases[tag]; !ok {
			missingCases = append(missingCases, tag)
		}
	}
	sort.Strings(missingCases)

	merged := b.IncomingText
	for _, tag := range missingCases {
		merged += "\n\t" + strings.TrimSpace(currentCases[tag])
		s.reporter.CaseAppended(tag)
	}

	return merged
}

// GenericStrategy is the fallback for content with no recognized
// structure: incoming text first, then the current text when it is
// non-empty and actually different.
type GenericStrategy struct{}

func (GenericStrategy) Merge(b Block) string {
	if strings.TrimSpace(b.CurrentText) == "" || b.CurrentText == b.IncomingText {
		return b.IncomingText
	}
	return b.IncomingText + "\n" + b.CurrentText
}
