package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Classify(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, KindFields, config.Classify("binary/proto/scan_result.proto"))
	assert.Equal(t, KindImportCase, config.Classify("binary/proto/secret.go"))
	assert.Equal(t, KindGeneric, config.Classify("binary/proto/scan_result_go_proto/scan_result.pb.go"))
	assert.Equal(t, KindGeneric, config.Classify("README.md"))
}

func TestConfig_ClassifyCustomPaths(t *testing.T) {
	config := Config{SchemaPath: "api/schema.proto", CompanionPath: "api/dispatch.go"}

	assert.Equal(t, KindFields, config.Classify("api/schema.proto"))
	assert.Equal(t, KindImportCase, config.Classify("api/dispatch.go"))
	assert.Equal(t, KindGeneric, config.Classify("api/other.go"))
}

func TestOrchestrator_PartitionsOutcomes(t *testing.T) {
	orch := NewOrchestrator(DefaultConfig(), nil)

	candidates := []Candidate{
		{Path: "binary/proto/scan_result.proto", Buffer: "oneof secret {\n" +
			conflict("    GCPSAK gcpsak = 2;", "    PrivateKey private_key = 2;") + "\n}\n"},
		{Path: "docs/notes.txt", Buffer: conflict("mine", "theirs") + "\n"},
		{Path: "broken.txt", Buffer: "<<<<<<< HEAD\nno closing marker\n"},
	}

	summary := orch.Run(candidates)

	require.Len(t, summary.Resolved, 2)
	require.Len(t, summary.Unresolved, 1)
	assert.Equal(t, "broken.txt", summary.Unresolved[0].Path)
	assert.True(t, summary.SchemaResolved)
}

func TestOrchestrator_SchemaNotResolved(t *testing.T) {
	orch := NewOrchestrator(DefaultConfig(), nil)

	summary := orch.Run([]Candidate{
		{Path: "docs/notes.txt", Buffer: conflict("a", "b") + "\n"},
	})

	assert.Len(t, summary.Resolved, 1)
	assert.False(t, summary.SchemaResolved)
}

func TestOrchestrator_SchemaUnresolvedDoesNotTrigger(t *testing.T) {
	orch := NewOrchestrator(DefaultConfig(), nil)

	summary := orch.Run([]Candidate{
		{Path: "binary/proto/scan_result.proto", Buffer: "<<<<<<< HEAD\ndangling marker\n"},
	})

	assert.Empty(t, summary.Resolved)
	assert.False(t, summary.SchemaResolved)
}

func TestOrchestrator_FileWithoutMarkersCountsResolved(t *testing.T) {
	orch := NewOrchestrator(DefaultConfig(), nil)

	buffer := "already clean\n"
	summary := orch.Run([]Candidate{{Path: "clean.txt", Buffer: buffer}})

	require.Len(t, summary.Resolved, 1)
	assert.Equal(t, buffer, summary.Resolved[0].Merged)
	assert.False(t, summary.Resolved[0].Changed)
}

func TestOrchestrator_StrategySelection(t *testing.T) {
	orch := NewOrchestrator(DefaultConfig(), nil)

	assert.IsType(t, FieldStrategy{}, orch.Strategy(KindFields))
	assert.IsType(t, ImportCaseStrategy{}, orch.Strategy(KindImportCase))
	assert.IsType(t, GenericStrategy{}, orch.Strategy(KindGeneric))
}

func TestStrategyKind_String(t *testing.T) {
	assert.Equal(t, "schema-fields", KindFields.String())
	assert.Equal(t, "imports-and-cases", KindImportCase.String())
	assert.Equal(t, "generic", KindGeneric.String())
}
