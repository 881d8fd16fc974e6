package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	comparisonMethod "seqcompare/api/models/constants/comparison-method"
	"seqcompare/api/models/forms"
	"seqcompare/api/models/indexes"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMethodRegistry(t *testing.T) {
	registry := DefaultMethodRegistry()

	assert.Equal(t, "FASTA", registry.Methods["fasta"].Label)
	assert.Equal(t, "Neighbour-joining", registry.Methods["nj"].Label)
	// no executable configured means the built-in scorer handles it
	assert.Empty(t, registry.Methods["fasta"].Exe)
}

func TestLoadMethodRegistryOverlaysDefaults(t *testing.T) {
	methodsPath := filepath.Join(t.TempDir(), "methods.yaml")
	yamlBody := strings.Join([]string{
		"methods:",
		"  fasta:",
		"    exe: /usr/bin/fasta36",
		"    args: [\"-q\"]",
	}, "\n")
	assert.Nil(t, os.WriteFile(methodsPath, []byte(yamlBody), 0o644))

	registry := LoadMethodRegistry(methodsPath)

	// the configured method gains its executable but keeps the
	// built-in label ; untouched methods survive
	assert.Equal(t, "/usr/bin/fasta36", registry.Methods["fasta"].Exe)
	assert.Equal(t, []string{"-q"}, registry.Methods["fasta"].Args)
	assert.Equal(t, "FASTA", registry.Methods["fasta"].Label)
	assert.Equal(t, "Neighbour-joining", registry.Methods["nj"].Label)
}

func TestLoadMethodRegistryMissingFileFallsBack(t *testing.T) {
	registry := LoadMethodRegistry("/nonexistent/methods.yaml")

	assert.Equal(t, DefaultMethodRegistry(), registry)
}

func TestCleanSequence(t *testing.T) {
	cleaned, cleanErr := cleanSequence(">query some header\nacgt\nACGT\n")
	assert.Nil(t, cleanErr)
	assert.Equal(t, "ACGTACGT", cleaned)

	_, emptyErr := cleanSequence("  \n>only a header\n")
	assert.NotNil(t, emptyErr)

	_, malformedErr := cleanSequence("ACGT-123")
	assert.NotNil(t, malformedErr)
}

func TestLocalAlignmentScore(t *testing.T) {
	// perfect match scores 2 per residue
	assert.Equal(t, 8, localAlignmentScore("ACGT", "ACGT"))
	// a local match inside a longer target still scores fully
	assert.Equal(t, 8, localAlignmentScore("ACGT", "TTACGTTT"))
	// no common subsequence scores zero
	assert.Equal(t, 0, localAlignmentScore("AAAA", "CCCC"))
}

func TestPDistance(t *testing.T) {
	assert.Equal(t, 0.0, pDistance("ACGT", "ACGT"))
	assert.Equal(t, 0.25, pDistance("ACGT", "ACGA"))
	assert.Equal(t, 1.0, pDistance("", "ACGT"))
}

func TestAlignedIdentityIgnoresSharedGaps(t *testing.T) {
	// columns where both rows gap are not comparable
	assert.Equal(t, 1.0, alignedIdentity("AC-GT", "AC-GT"))
	assert.Equal(t, 0.5, alignedIdentity("ACGT", "ACAA"))
}

func TestRunBuiltinFasta(t *testing.T) {
	genes := []indexes.Gene{
		{Id: "geneA", Name: "Gene A", Sequence: "TTACGTTT"},
		{Id: "geneB", Name: "Gene B", Sequence: "CCCCCCCC"},
	}

	job := forms.ComparisonJob{
		Id:       "test-job",
		Method:   comparisonMethod.Fasta,
		Sequence: "ACGT",
		GeneIds:  []string{"geneA", "geneB"},
	}

	results, runErr := runBuiltin(job, MethodSpec{Label: "FASTA"}, "ACGT", genes)
	assert.Nil(t, runErr)
	assert.Len(t, results, 2)

	assert.Equal(t, "geneA", results[0].GeneId)
	assert.Equal(t, "FASTA", results[0].Method)
	// geneA contains the query verbatim ; geneB shares only a single C
	assert.Equal(t, 8.0, results[0].Score)
	assert.Equal(t, 2.0, results[1].Score)
}

func TestRunBuiltinNeighbourJoiningOrdersByDistance(t *testing.T) {
	genes := []indexes.Gene{
		{Id: "far", Name: "Far", Sequence: "TTTT"},
		{Id: "near", Name: "Near", Sequence: "ACGA"},
	}

	job := forms.ComparisonJob{
		Id:       "test-job",
		Method:   comparisonMethod.NeighbourJoining,
		Sequence: "ACGT",
		GeneIds:  []string{"far", "near"},
	}

	results, runErr := runBuiltin(job, MethodSpec{Label: "Neighbour-joining"}, "ACGT", genes)
	assert.Nil(t, runErr)
	assert.Len(t, results, 2)

	// nearest neighbour joins first
	assert.Equal(t, "near", results[0].GeneId)
	assert.Contains(t, results[0].Summary, "rank 1")
	assert.Equal(t, "far", results[1].GeneId)
}

func TestReadFasta(t *testing.T) {
	records, readErr := readFasta(strings.NewReader(">query\nACGT\nACGT\n>geneA Gene A\nTTTT\n"))
	assert.Nil(t, readErr)
	assert.Len(t, records, 2)
	assert.Equal(t, "query", records[0].id)
	assert.Equal(t, "ACGTACGT", records[0].sequence)
	assert.Equal(t, "geneA", records[1].id)
}
