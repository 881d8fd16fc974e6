package services

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"seqcompare/api/models"
	comparisonMethod "seqcompare/api/models/constants/comparison-method"
	"seqcompare/api/models/forms"
	"seqcompare/api/models/indexes"

	"gopkg.in/yaml.v2"
)

const (
	inseqFilename    = "inseq.fasta"
	outalignFilename = "outalign.fasta"
)

type (
	// MethodSpec describes one comparison method : its display label
	// and, optionally, an external aligner executable to shell out to.
	// An empty Exe means the built-in scorer handles the method.
	MethodSpec struct {
		Label string   `yaml:"label"`
		Exe   string   `yaml:"exe"`
		Args  []string `yaml:"args"`
	}

	MethodRegistry struct {
		Methods map[string]MethodSpec `yaml:"methods"`
	}

	ComparisonService struct {
		Initialized bool
		Config      *models.Config
		Catalog     *CatalogService
		Registry    MethodRegistry
	}
)

func DefaultMethodRegistry() MethodRegistry {
	return MethodRegistry{
		Methods: map[string]MethodSpec{
			string(comparisonMethod.Fasta):            {Label: "FASTA"},
			string(comparisonMethod.NeighbourJoining): {Label: "Neighbour-joining"},
		},
	}
}

// LoadMethodRegistry reads the method registry from a yaml file,
// falling back to the built-in defaults when no file is configured
// or it cannot be read
func LoadMethodRegistry(path string) MethodRegistry {
	registry := DefaultMethodRegistry()

	if path == "" {
		return registry
	}

	yamlBytes, readErr := os.ReadFile(path)
	if readErr != nil {
		fmt.Printf("[%s] - Could not read method registry %s, using defaults : %v\n", time.Now(), path, readErr)
		return registry
	}

	var loaded MethodRegistry
	if umErr := yaml.Unmarshal(yamlBytes, &loaded); umErr != nil {
		fmt.Printf("[%s] - Could not parse method registry %s, using defaults : %v\n", time.Now(), path, umErr)
		return registry
	}

	// overlay the configured methods onto the defaults so a partial
	// file doesn't lose a built-in method
	for name, spec := range loaded.Methods {
		if spec.Label == "" {
			if existing, ok := registry.Methods[name]; ok {
				spec.Label = existing.Label
			} else {
				spec.Label = name
			}
		}
		registry.Methods[name] = spec
	}

	return registry
}

func NewComparisonService(cfg *models.Config, catalog *CatalogService) *ComparisonService {
	cmps := &ComparisonService{
		Initialized: false,
		Config:      cfg,
		Catalog:     catalog,
		Registry:    LoadMethodRegistry(cfg.Api.MethodsPath),
	}

	cmps.Initialized = true

	return cmps
}

// Run executes the selected comparison method over the job's gene
// selection and the user-supplied sequence
func (cmps *ComparisonService) Run(job forms.ComparisonJob) ([]forms.ComparisonResult, error) {
	spec, methodKnown := cmps.Registry.Methods[string(job.Method)]
	if !methodKnown {
		return nil, fmt.Errorf("%w : unsupported method '%s'", ErrComparisonFailed, job.Method)
	}

	querySequence, sequenceErr := cleanSequence(job.Sequence)
	if sequenceErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrComparisonFailed, sequenceErr)
	}

	genes, genesErr := cmps.Catalog.GetGenesByIds(job.GeneIds)
	if genesErr != nil {
		return nil, genesErr
	}
	if len(genes) == 0 {
		return nil, fmt.Errorf("%w : none of the selected genes could be resolved", ErrComparisonFailed)
	}

	if spec.Exe != "" {
		return cmps.runExternal(job, spec, querySequence, genes)
	}

	return runBuiltin(job, spec, querySequence, genes)
}

// runExternal shells out to the configured aligner : the query and
// gene sequences are written to a scratch workdir named after the
// job id, the executable is pointed at the input file, and its
// aligned fasta output is read back and scored row by row
func (cmps *ComparisonService) runExternal(job forms.ComparisonJob, spec MethodSpec,
	querySequence string, genes []indexes.Gene) ([]forms.ComparisonResult, error) {

	scratchPath := cmps.Config.Api.ScratchPath
	if scratchPath == "" {
		scratchPath = os.TempDir()
	}

	workdir := filepath.Join(scratchPath, fmt.Sprintf("seqcompare-%s", job.Id))
	if mkdirErr := os.MkdirAll(workdir, 0o755); mkdirErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrComparisonFailed, mkdirErr)
	}
	defer os.RemoveAll(workdir)

	inseqPath := filepath.Join(workdir, inseqFilename)
	outalignPath := filepath.Join(workdir, outalignFilename)

	if writeErr := writeFastaFile(inseqPath, querySequence, genes); writeErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrComparisonFailed, writeErr)
	}

	outFile, createErr := os.Create(outalignPath)
	if createErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrComparisonFailed, createErr)
	}

	args := append(append([]string{}, spec.Args...), inseqPath)
	cmd := exec.Command(spec.Exe, args...)
	cmd.Dir = workdir
	cmd.Stdout = outFile

	fmt.Printf("[%s] - Running %s %s for job %s\n", time.Now(), spec.Exe, strings.Join(args, " "), job.Id)

	runErr := cmd.Run()
	outFile.Close()
	if runErr != nil {
		return nil, fmt.Errorf("%w : %s exited abnormally : %v", ErrComparisonFailed, spec.Exe, runErr)
	}

	alignedFile, openErr := os.Open(outalignPath)
	if openErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrComparisonFailed, openErr)
	}
	defer alignedFile.Close()

	alignedRows, readErr := readFasta(alignedFile)
	if readErr != nil || len(alignedRows) < 2 {
		return nil, fmt.Errorf("%w : could not read aligned output", ErrComparisonFailed)
	}

	// first aligned row is the query ; score every gene row against it
	queryRow := alignedRows[0].sequence

	geneNamesById := map[string]string{}
	for _, gene := range genes {
		geneNamesById[gene.Id] = gene.Name
	}

	results := make([]forms.ComparisonResult, 0, len(alignedRows)-1)
	for _, row := range alignedRows[1:] {
		identity := alignedIdentity(queryRow, row.sequence)
		results = append(results, forms.ComparisonResult{
			GeneId:   row.id,
			GeneName: geneNamesById[row.id],
			Method:   spec.Label,
			Score:    identity,
			Summary:  fmt.Sprintf("%.1f%% identity over %d aligned columns", identity*100, len(row.sequence)),
		})
	}

	return results, nil
}

// runBuiltin scores the selection in process so the wizard works
// without an external aligner installed
func runBuiltin(job forms.ComparisonJob, spec MethodSpec,
	querySequence string, genes []indexes.Gene) ([]forms.ComparisonResult, error) {

	switch job.Method {
	case comparisonMethod.Fasta:
		results := make([]forms.ComparisonResult, 0, len(genes))
		for _, gene := range genes {
			geneSequence, geneSeqErr := cleanSequence(gene.Sequence)
			if geneSeqErr != nil {
				return nil, fmt.Errorf("%w : gene %s : %v", ErrComparisonFailed, gene.Id, geneSeqErr)
			}

			score := localAlignmentScore(querySequence, geneSequence)
			results = append(results, forms.ComparisonResult{
				GeneId:   gene.Id,
				GeneName: gene.Name,
				Method:   spec.Label,
				Score:    float64(score),
				Summary:  fmt.Sprintf("local alignment score %d against %d bp", score, len(geneSequence)),
			})
		}
		return results, nil

	case comparisonMethod.NeighbourJoining:
		type geneDistance struct {
			gene     indexes.Gene
			distance float64
		}

		distances := make([]geneDistance, 0, len(genes))
		for _, gene := range genes {
			geneSequence, geneSeqErr := cleanSequence(gene.Sequence)
			if geneSeqErr != nil {
				return nil, fmt.Errorf("%w : gene %s : %v", ErrComparisonFailed, gene.Id, geneSeqErr)
			}
			distances = append(distances, geneDistance{gene: gene, distance: pDistance(querySequence, geneSequence)})
		}

		// nearest neighbour joins first
		sort.SliceStable(distances, func(i, j int) bool {
			return distances[i].distance < distances[j].distance
		})

		results := make([]forms.ComparisonResult, 0, len(distances))
		for rank, gd := range distances {
			results = append(results, forms.ComparisonResult{
				GeneId:   gd.gene.Id,
				GeneName: gd.gene.Name,
				Method:   spec.Label,
				Score:    1 - gd.distance,
				Summary:  fmt.Sprintf("joined at rank %d (p-distance %.3f)", rank+1, gd.distance),
			})
		}
		return results, nil

	default:
		return nil, fmt.Errorf("%w : no built-in scorer for method '%s'", ErrComparisonFailed, job.Method)
	}
}

// cleanSequence strips whitespace and an optional fasta header line,
// then validates the residue alphabet
func cleanSequence(raw string) (string, error) {
	var builder strings.Builder

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		builder.WriteString(line)
	}

	cleaned := strings.ToUpper(builder.String())
	if cleaned == "" {
		return "", fmt.Errorf("empty sequence")
	}

	for _, residue := range cleaned {
		if residue < 'A' || residue > 'Z' {
			return "", fmt.Errorf("malformed sequence : unexpected character %q", residue)
		}
	}

	return cleaned, nil
}

type fastaRecord struct {
	id       string
	sequence string
}

func readFasta(r io.Reader) ([]fastaRecord, error) {
	var (
		records []fastaRecord
		current *fastaRecord
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if current != nil {
				records = append(records, *current)
			}
			header := strings.TrimPrefix(line, ">")
			current = &fastaRecord{id: strings.Fields(header)[0]}
			continue
		}
		if current != nil {
			current.sequence += line
		}
	}
	if current != nil {
		records = append(records, *current)
	}

	return records, scanner.Err()
}

func writeFastaFile(path string, querySequence string, genes []indexes.Gene) error {
	file, createErr := os.Create(path)
	if createErr != nil {
		return createErr
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, ">query\n%s\n", querySequence)
	for _, gene := range genes {
		fmt.Fprintf(writer, ">%s %s\n%s\n", gene.Id, gene.Name, gene.Sequence)
	}

	return writer.Flush()
}

// localAlignmentScore is a plain Smith-Waterman with unit scores
// (match +2, mismatch -1, gap -1)
func localAlignmentScore(a string, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	best := 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			substitution := -1
			if a[i-1] == b[j-1] {
				substitution = 2
			}

			score := previous[j-1] + substitution
			if fromGapA := previous[j] - 1; fromGapA > score {
				score = fromGapA
			}
			if fromGapB := current[j-1] - 1; fromGapB > score {
				score = fromGapB
			}
			if score < 0 {
				score = 0
			}

			current[j] = score
			if score > best {
				best = score
			}
		}
		previous, current = current, previous
		for j := range current {
			current[j] = 0
		}
	}

	return best
}

// pDistance is the proportion of differing positions over the
// comparable length of the two sequences
func pDistance(a string, b string) float64 {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}
	if length == 0 {
		return 1
	}

	differing := 0
	for i := 0; i < length; i++ {
		if a[i] != b[i] {
			differing++
		}
	}

	return float64(differing) / float64(length)
}

// alignedIdentity compares two rows of an alignment column by column,
// ignoring columns where both rows gap
func alignedIdentity(a string, b string) float64 {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}

	var matches, comparable int
	for i := 0; i < length; i++ {
		if a[i] == '-' && b[i] == '-' {
			continue
		}
		comparable++
		if a[i] == b[i] {
			matches++
		}
	}

	if comparable == 0 {
		return 0
	}
	return float64(matches) / float64(comparable)
}
