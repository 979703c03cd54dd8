package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFields(t *testing.T) {
	text := `
    // the keys below are extractor payloads
    PrivateKey private_key = 1;
    GCPSAK gcpsak = 2;

    DockerHubPAT docker_hub_pat = 5;
`

	fields, max := ExtractFields(text)
	require.Len(t, fields, 3)
	assert.Equal(t, Field{Type: "PrivateKey", Number: 1}, fields["private_key"])
	assert.Equal(t, Field{Type: "DockerHubPAT", Number: 5}, fields["docker_hub_pat"])
	assert.Equal(t, 5, max)
}

func TestExtractFields_Empty(t *testing.T) {
	fields, max := ExtractFields("// nothing declared here\n\n")
	assert.Empty(t, fields)
	assert.Equal(t, 0, max)
}

func TestExtractFields_DuplicateNameLastWins(t *testing.T) {
	text := "string token = 1;\nbytes token = 4;\n"

	fields, max := ExtractFields(text)
	require.Len(t, fields, 1)
	assert.Equal(t, Field{Type: "bytes", Number: 4}, fields["token"])
	assert.Equal(t, 4, max)
}

func TestExtractFields_IgnoresNonDeclarations(t *testing.T) {
	fields, max := ExtractFields("message SecretData {\n  oneof secret {\n}\n")
	assert.Empty(t, fields)
	assert.Equal(t, 0, max)
}

func TestExtractImports_Block(t *testing.T) {
	text := `import (
	"errors"
	"fmt"

	velessak "github.com/google/osv-scalibr/veles/secrets/gcpsak"
	// a comment between imports
	"github.com/google/osv-scalibr/veles"
)`

	imports := ExtractImports(text)
	assert.Contains(t, imports, "errors")
	assert.Contains(t, imports, "fmt")
	assert.Contains(t, imports, "github.com/google/osv-scalibr/veles/secrets/gcpsak")
	assert.Contains(t, imports, "github.com/google/osv-scalibr/veles")
	assert.Len(t, imports, 4)
}

func TestExtractImports_SingleLine(t *testing.T) {
	imports := ExtractImports(`import "os"` + "\n" + `import alias "path/filepath"` + "\n")
	assert.Contains(t, imports, "os")
	assert.Contains(t, imports, "path/filepath")
}

func TestExtractImports_QuotedLinesOutsideBlockIgnored(t *testing.T) {
	imports := ExtractImports("\t\"github.com/some/package\"\n")
	assert.Empty(t, imports)
}

func TestExtractCases(t *testing.T) {
	text := `	switch s.Secret.(type) {
	case *spb.SecretData_PrivateKey_:
		return privatekeyToStruct(s.GetPrivateKey()), nil
	case *spb.SecretData_Gcpsak:
		return gcpsakToStruct(s.GetGcpsak()), nil
	default:
		return nil, fmt.Errorf("unsupported secret type")
	}`

	cases := ExtractCases(text)
	require.Len(t, cases, 2)

	assert.Contains(t, cases["SecretData_PrivateKey_"], "case *spb.SecretData_PrivateKey_:")
	assert.Contains(t, cases["SecretData_PrivateKey_"], "privatekeyToStruct")
	assert.NotContains(t, cases["SecretData_PrivateKey_"], "Gcpsak")

	// The default branch belongs to the switch, not to the last case.
	assert.NotContains(t, cases["SecretData_Gcpsak"], "default")
	assert.NotContains(t, cases["SecretData_Gcpsak"], "unsupported")
}

func TestExtractCases_NoCases(t *testing.T) {
	assert.Empty(t, ExtractCases("func foo() {}\n"))
}
