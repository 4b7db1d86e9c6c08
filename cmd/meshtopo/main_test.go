package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/philipparndt/meshtopo/internal/config"
	"github.com/philipparndt/meshtopo/pkg/analysis"
	"github.com/philipparndt/meshtopo/pkg/ifs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bowtieYAML = `name: bowtie
coord: [0, 0, 0, 1, 0, 0, 1, 1, 0, -1, 0, 0, -1, -1, 0]
coordIndex: [0, 1, 2, -1, 0, 3, 4, -1]
`

const tetrahedronYAML = `name: tetrahedron
coord: [0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1]
coordIndex: [0, 2, 1, -1, 0, 1, 3, -1, 0, 2, 3, -1, 1, 2, 3, -1]
`

func writeMeshFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func useFormat(t *testing.T, format string) {
	t.Helper()
	saved := cfg
	cfg = config.Default()
	cfg.Output.Format = format
	t.Cleanup(func() { cfg = saved })
}

func TestPrintInfoText(t *testing.T) {
	useFormat(t, "text")
	path := writeMeshFile(t, "bowtie.yaml", bowtieYAML)

	var buf bytes.Buffer
	require.NoError(t, printInfo(&buf, path, true))
	out := buf.String()
	assert.Contains(t, out, "Mesh: bowtie")
	assert.Regexp(t, `singular:\s+1`, out)
	assert.Contains(t, out, "Surface area:")
}

func TestPrintInfoJSON(t *testing.T) {
	useFormat(t, "json")
	path := writeMeshFile(t, "tetrahedron.yaml", tetrahedronYAML)

	var buf bytes.Buffer
	require.NoError(t, printInfo(&buf, path, false))

	var report analysis.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Nil(t, report.Geometry)
	assert.Equal(t, 6, report.Topology.Edges)
	assert.False(t, report.Topology.IsOriented)
	assert.True(t, report.Topology.IsOrientable)
}

func TestReporterSerializesReports(t *testing.T) {
	useFormat(t, "text")
	paths := []string{
		writeMeshFile(t, "bowtie.yaml", bowtieYAML),
		writeMeshFile(t, "tetrahedron.yaml", tetrahedronYAML),
	}

	var buf bytes.Buffer
	report := reporter(&buf, false)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			report(path)
		}(paths[i%2])
	}
	wg.Wait()

	out := buf.String()
	assert.Equal(t, 8, strings.Count(out, "==> "))
	for _, block := range strings.Split(out, "==> ")[1:] {
		assert.Equal(t, 1, strings.Count(block, "Mesh: "))
	}
}

func TestPrintComponents(t *testing.T) {
	useFormat(t, "yaml")
	path := writeMeshFile(t, "bowtie.yaml", bowtieYAML)

	var buf bytes.Buffer
	require.NoError(t, printComponents(&buf, path, true))
	assert.Contains(t, buf.String(), "graph: dual")
	assert.Contains(t, buf.String(), "components: 2")
	assert.Contains(t, buf.String(), "labels: [0, 1]")

	useFormat(t, "text")
	buf.Reset()
	require.NoError(t, printComponents(&buf, path, false))
	assert.Contains(t, buf.String(), "Connected components (primal): 1")
	assert.Contains(t, buf.String(), "Vertex 4: 0")
}

func TestPrintEdges(t *testing.T) {
	useFormat(t, "text")
	path := writeMeshFile(t, "bowtie.yaml", bowtieYAML)

	var buf bytes.Buffer
	require.NoError(t, printEdges(&buf, path, "boundary", 4))
	assert.Contains(t, buf.String(), "Edges: 6 total, showing 4")

	assert.Error(t, printEdges(&buf, path, "curved", 4))
}

func TestPrintEdgesRejectsNegativeCount(t *testing.T) {
	useFormat(t, "text")
	path := writeMeshFile(t, "bowtie.yaml", bowtieYAML)

	var buf bytes.Buffer
	assert.Error(t, printEdges(&buf, path, "", -1))
	assert.Empty(t, buf.String())
}

func TestOrientWritesOutput(t *testing.T) {
	useFormat(t, "text")
	input := writeMeshFile(t, "tetrahedron.yaml", tetrahedronYAML)
	output := filepath.Join(t.TempDir(), "oriented.json")

	require.NoError(t, orient(&bytes.Buffer{}, input, output))

	set, err := ifs.Load(output)
	require.NoError(t, err)
	pm, err := set.Topology()
	require.NoError(t, err)
	assert.True(t, pm.IsOriented())
	assert.Equal(t, []int{3, 2, 0, -1}, set.CoordIndex[8:12])
}

func TestCutPrintsMesh(t *testing.T) {
	useFormat(t, "text")
	input := writeMeshFile(t, "bowtie.yaml", bowtieYAML)

	var buf bytes.Buffer
	require.NoError(t, cut(&buf, input, ""))

	set, err := ifs.Decode(&buf, ifs.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 6, set.NumberOfVertices())
}

func TestConvertToManifold(t *testing.T) {
	useFormat(t, "text")
	input := writeMeshFile(t, "pair.json", `{"coord": [0,0,0, 1,0,0, 0,1,0, 0,-1,0], "coordIndex": [0,1,2,-1, 0,1,3,-1]}`)

	var buf bytes.Buffer
	require.NoError(t, convertToManifold(&buf, input, "", false))
	split, err := ifs.Decode(strings.NewReader(buf.String()), ifs.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 6, split.NumberOfVertices())

	buf.Reset()
	require.NoError(t, convertToManifold(&buf, input, "", true))
	oriented, err := ifs.Decode(&buf, ifs.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 4, oriented.NumberOfVertices())
}

func TestRemoveIsolated(t *testing.T) {
	useFormat(t, "text")
	input := writeMeshFile(t, "sparse.yaml", "coord: [0,0,0, 9,9,9, 1,0,0, 0,1,0]\ncoordIndex: [0, 2, 3, -1]\n")

	var buf bytes.Buffer
	require.NoError(t, removeIsolated(&buf, input, ""))
	set, err := ifs.Decode(&buf, ifs.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, -1}, set.CoordIndex)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, set.Coord)
}

func TestLoadErrors(t *testing.T) {
	useFormat(t, "text")

	err := printInfo(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalid := writeMeshFile(t, "invalid.yaml", "coord: [0, 0, 0]\ncoordIndex: [0, 1, -1]\n")
	err = printInfo(&bytes.Buffer{}, invalid, false)
	assert.ErrorIs(t, err, ifs.ErrInvalid)

	mobius := writeMeshFile(t, "mobius.yaml", "coord: [0,0,0, 0,0,0, 0,0,0, 0,0,0, 0,0,0, 0,0,0]\ncoordIndex: [0,1,4,3,-1, 1,2,5,4,-1, 2,3,0,5,-1]\n")
	assert.ErrorIs(t, orient(&bytes.Buffer{}, mobius, ""), ifs.ErrNotOrientable)
}
