package resolve

import "path/filepath"

// StrategyKind identifies which merge strategy a file gets.
type StrategyKind int

const (
	KindGeneric StrategyKind = iota
	KindFields
	KindImportCase
)

func (k StrategyKind) String() string {
	switch k {
	case KindFields:
		return "schema-fields"
	case KindImportCase:
		return "imports-and-cases"
	default:
		return "generic"
	}
}

// Config names the two files that get format-aware treatment: the proto
// schema definition and its hand-written Go companion. Everything else
// falls through to the generic strategy.
type Config struct {
	SchemaPath    string
	CompanionPath string
}

// DefaultConfig matches the scalibr secret-extractor layout the tool was
// built for.
func DefaultConfig() Config {
	return Config{
		SchemaPath:    "binary/proto/scan_result.proto",
		CompanionPath: "binary/proto/secret.go",
	}
}

// Classify picks the strategy kind for a file by its base name.
func (c Config) Classify(path string) StrategyKind {
	switch filepath.Base(path) {
	case filepath.Base(c.SchemaPath):
		return KindFields
	case filepath.Base(c.CompanionPath):
		return KindImportCase
	default:
		return KindGeneric
	}
}

// Candidate is a conflicted file handed to the orchestrator: its path
// plus the buffer the filesystem collaborator read for it.
type Candidate struct {
	Path   string
	Buffer string
}

// Summary aggregates the per-file outcomes of one run. SchemaResolved
// signals that the schema definition was among the resolved files, which
// is the trigger for regenerating the derived artifact.
type Summary struct {
	Resolved       []Outcome
	Unresolved     []Outcome
	SchemaResolved bool
}

// Orchestrator sequences resolution across files. It holds no merge
// logic and touches neither the filesystem nor git.
type Orchestrator struct {
	config   Config
	reporter Reporter
}

func NewOrchestrator(config Config, reporter Reporter) *Orchestrator {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Orchestrator{config: config, reporter: reporter}
}

// Strategy returns the strategy instance for a kind, wired to the
// orchestrator's reporter.
func (o *Orchestrator) Strategy(kind StrategyKind) Strategy {
	switch kind {
	case KindFields:
		return NewFieldStrategy(o.reporter)
	case KindImportCase:
		return NewImportCaseStrategy(o.reporter)
	default:
		return GenericStrategy{}
	}
}

// Run resolves every candidate in order and partitions the outcomes.
// Files are independent; one unresolved file never stops the rest.
func (o *Orchestrator) Run(candidates []Candidate) Summary {
	var summary Summary

	for _, c := range candidates {
		kind := o.config.Classify(c.Path)

		outcome := Resolve(c.Buffer, o.Strategy(kind))
		outcome.Path = c.Path
		outcome.Strategy = kind

		if outcome.FullyResolved {
			summary.Resolved = append(summary.Resolved, outcome)
			if kind == KindFields {
				summary.SchemaResolved = true
			}
		} else {
			summary.Unresolved = append(summary.Unresolved, outcome)
		}
	}

	return summary
}
