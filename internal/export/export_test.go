package export

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/litscope/pkg/types"
)

func sampleData() *types.ProcessedData {
	return &types.ProcessedData{
		Papers: []types.PaperRecord{
			{Key: "p1", Title: "Security Economics", Authors: []string{"Alice Brown"}, PublicationYear: 2020, DOI: "10.1000/p1", Venue: "WEIS"},
			{Key: "p2", Title: "Game Theory of Defense", Authors: []string{"Alice Brown", "Bob Clark"}},
		},
		Network: types.AuthorNetwork{
			Authors: []types.AuthorProfile{
				{Name: "Alice Brown", CleanName: "alice brown", PaperCount: 2, FirstYear: 2020, LastYear: 2020, Influence: 15.2},
				{Name: "Bob Clark", CleanName: "bob clark", PaperCount: 1},
			},
			Collaborations: []types.CollaborationEdge{
				{AuthorA: "alice brown", AuthorB: "bob clark", Weight: 1},
			},
		},
		Topics: []types.TopicCluster{
			{ID: "security", Label: "Security", Papers: []string{"p1"}, Coverage: 50},
		},
		Gaps: []types.ResearchGap{
			{Type: types.GapGeographic, Title: "Geographic analysis unavailable", Severity: types.SeverityLow},
		},
	}
}

func TestStoreWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "litscope.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Write(context.Background(), sampleData()))

	var papers, authors, edges, topics, gaps int
	require.NoError(t, store.db.QueryRow(`SELECT count(*) FROM papers`).Scan(&papers))
	require.NoError(t, store.db.QueryRow(`SELECT count(*) FROM authors`).Scan(&authors))
	require.NoError(t, store.db.QueryRow(`SELECT count(*) FROM collaborations`).Scan(&edges))
	require.NoError(t, store.db.QueryRow(`SELECT count(*) FROM topics`).Scan(&topics))
	require.NoError(t, store.db.QueryRow(`SELECT count(*) FROM gaps`).Scan(&gaps))

	assert.Equal(t, 2, papers)
	assert.Equal(t, 2, authors)
	assert.Equal(t, 1, edges)
	assert.Equal(t, 1, topics)
	assert.Equal(t, 1, gaps)

	// A paper without a year stores NULL, not zero.
	var nullYears int
	require.NoError(t, store.db.QueryRow(`SELECT count(*) FROM papers WHERE year IS NULL`).Scan(&nullYears))
	assert.Equal(t, 1, nullYears)
}

func TestStoreWriteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "litscope.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Write(context.Background(), sampleData()))
	require.NoError(t, store.Write(context.Background(), sampleData()))

	var papers int
	require.NoError(t, store.db.QueryRow(`SELECT count(*) FROM papers`).Scan(&papers))
	assert.Equal(t, 2, papers, "rewriting must replace, not append")
}

func TestWriteCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleData().Papers))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[1], "Security Economics")
	assert.Contains(t, lines[2], "Alice Brown; Bob Clark")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleData()))
	out := buf.String()
	assert.Contains(t, out, "papers:")
	assert.Contains(t, out, "Security Economics")
	assert.Contains(t, out, "gaps:")
}
