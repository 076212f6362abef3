package pipeline

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/meshintel/litscope/internal/ingest"
	"github.com/meshintel/litscope/pkg/types"
)

func corpus() []types.PaperRecord {
	var papers []types.PaperRecord
	for y := 2012; y <= 2021; y++ {
		papers = append(papers,
			types.PaperRecord{
				Key:             fmt.Sprintf("sec-%d", y),
				Title:           fmt.Sprintf("Malware threat and vulnerability defense %d", y),
				Abstract:        "A security study of attack and intrusion patterns.",
				Authors:         []string{"Alice Brown", "Bob Clark"},
				Venue:           "WEIS",
				PublicationYear: y,
				DOI:             "10.1000/sec",
			},
			types.PaperRecord{
				Key:             fmt.Sprintf("eco-%d", y),
				Title:           fmt.Sprintf("Market incentive and cost externality %d", y),
				Abstract:        "An economic analysis of investment and pricing.",
				Authors:         []string{"Bob Clark", "Dan Evans"},
				Venue:           "Journal of Cybersecurity",
				PublicationYear: y,
			},
		)
	}
	return papers
}

func TestRunProducesAggregate(t *testing.T) {
	var buf bytes.Buffer
	data, err := Run(corpus(), types.DefaultPipelineConfig(), &buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(data.Papers) != 20 {
		t.Errorf("len(Papers) = %d, want 20", len(data.Papers))
	}
	if data.YearRange.Min != 2012 || data.YearRange.Max != 2021 {
		t.Errorf("YearRange = %+v, want 2012..2021", data.YearRange)
	}
	if len(data.Topics) == 0 {
		t.Error("no topic clusters")
	}
	if data.Network.Stats.TotalAuthors != 3 {
		t.Errorf("TotalAuthors = %d, want 3", data.Network.Stats.TotalAuthors)
	}
	if len(data.Gaps) == 0 {
		t.Error("no gap findings (geographic stub should always be present)")
	}
	if len(data.Venues) != 2 {
		t.Errorf("len(Venues) = %d, want 2", len(data.Venues))
	}
	if data.Quality.TitleCoverage != 100.0 {
		t.Errorf("TitleCoverage = %f, want 100", data.Quality.TitleCoverage)
	}
	if !strings.Contains(buf.String(), "validated") {
		t.Errorf("progress output missing: %q", buf.String())
	}
}

func TestRunDeterministic(t *testing.T) {
	var b1, b2 bytes.Buffer
	first, err := Run(corpus(), types.DefaultPipelineConfig(), &b1)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := Run(corpus(), types.DefaultPipelineConfig(), &b2)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs over identical input differ")
	}
}

func TestRunUnusableDataset(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Run(nil, types.DefaultPipelineConfig(), &buf); err == nil {
		t.Error("Run(nil) should fail")
	}

	untitled := []types.PaperRecord{{Key: "a"}, {Key: "b"}}
	if _, err := Run(untitled, types.DefaultPipelineConfig(), &buf); err == nil {
		t.Error("Run() with no valid records should fail")
	}
}

func TestRunFromCSV(t *testing.T) {
	csv := "Title,Author,Publication Year,Manual Tags\n" +
		"Security attack vulnerability study,Alice Brown; Bob Clark,2020,security\n" +
		"Market incentive cost analysis,Bob Clark,2021,economics\n"

	cfgAll := types.DefaultPipelineConfig()
	papers, err := ingest.ParseCSV(strings.NewReader(csv), cfgAll.Parser)
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	var buf bytes.Buffer
	data, err := Run(papers, cfgAll, &buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(data.Papers) != 2 {
		t.Errorf("len(Papers) = %d, want 2", len(data.Papers))
	}
}
