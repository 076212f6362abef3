package ingest

import (
	"strings"
	"testing"

	"github.com/meshintel/litscope/pkg/types"
)

func testCfg() types.ParserConfig {
	return types.ParserConfig{YearMin: 1990, YearMax: 2025, MinTitleLength: 3}
}

const sampleCSV = `Key,Item Type,Publication Year,Author,Title,Abstract Note,DOI,Url,Manual Tags
K1,journalArticle,2021,"Smith, John; Doe, Jane",Security Economics of Ransomware,"A study of ransomware, markets and incentives.",10.1000/test1,https://example.org/p1,ransomware; economics
K2,conferencePaper,2019,"Brown, Alice",Game Theory for Network Defense,Models of attacker-defender games.,10.1000/test2,https://example.org/p2,game theory
`

func TestParseCSVTwoRows(t *testing.T) {
	papers, err := ParseCSV(strings.NewReader(sampleCSV), testCfg())
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	if papers[0].Title != "Security Economics of Ransomware" {
		t.Errorf("papers[0].Title = %q", papers[0].Title)
	}
	if len(papers[0].Authors) != 4 {
		// "Smith, John; Doe, Jane" splits on both comma and semicolon.
		t.Errorf("len(papers[0].Authors) = %d, want 4", len(papers[0].Authors))
	}
	if papers[0].PublicationYear != 2021 {
		t.Errorf("papers[0].PublicationYear = %d, want 2021", papers[0].PublicationYear)
	}
	if papers[1].Key != "K2" {
		t.Errorf("papers[1].Key = %q, want K2", papers[1].Key)
	}
}

func TestParseCSVQuotedFields(t *testing.T) {
	csv := "Title,Author,Publication Year\n" +
		`"Risk, Trust, and ""Security"" Markets","Lee, Kim",2020` + "\n"
	papers, err := ParseCSV(strings.NewReader(csv), testCfg())
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if got := papers[0].Title; got != `Risk, Trust, and "Security" Markets` {
		t.Errorf("Title = %q", got)
	}
}

func TestParseCSVTooShort(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("Title,Author\n"), testCfg()); err == nil {
		t.Error("ParseCSV() with header only should fail")
	}
	if _, err := ParseCSV(strings.NewReader(""), testCfg()); err == nil {
		t.Error("ParseCSV() with empty input should fail")
	}
}

func TestParseRowsSkipsMissingTitle(t *testing.T) {
	header := []string{"Title", "Author", "Publication Year"}
	rows := [][]string{
		{"", "Smith, John", "2020"},
		{"ok", "Smith, John", "2020"}, // below min title length too
		{"A Proper Title", "Smith, John", "2020"},
	}
	papers, err := ParseRows(header, rows, testCfg())
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}
	if papers[0].Title != "A Proper Title" {
		t.Errorf("Title = %q", papers[0].Title)
	}
}

func TestParseRowsAllInvalid(t *testing.T) {
	header := []string{"Title"}
	rows := [][]string{{""}, {""}}
	if _, err := ParseRows(header, rows, testCfg()); err == nil {
		t.Error("ParseRows() with no usable records should fail")
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want int
	}{
		{"plain year", "2021", 2021},
		{"iso date", "2019-06-01", 2019},
		{"prose date", "March 2015", 2015},
		{"below range", "1899", 0},
		{"above range", "2030", 0},
		{"empty", "", 0},
		{"no digits", "forthcoming", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractYear(tt.cell, testCfg()); got != tt.want {
				t.Errorf("extractYear(%q) = %d, want %d", tt.cell, got, tt.want)
			}
		})
	}
}

func TestHeaderSubstringFallback(t *testing.T) {
	header := []string{"Document Title (full)", "Author Names", "Year of Publication"}
	idx := resolveHeaders(header)
	if idx[fieldTitle] != 0 {
		t.Errorf("title resolved to %d, want 0", idx[fieldTitle])
	}
	if idx[fieldAuthor] != 1 {
		t.Errorf("author resolved to %d, want 1", idx[fieldAuthor])
	}
	if idx[fieldYear] != 2 {
		t.Errorf("year resolved to %d, want 2", idx[fieldYear])
	}
	if idx[fieldDOI] != -1 {
		t.Errorf("doi resolved to %d, want -1", idx[fieldDOI])
	}
}

func TestDeriveKey(t *testing.T) {
	got := deriveKey("Security Economics of Ransomware", []string{"John Smith"})
	want := "security-economics-of-smith"
	if got != want {
		t.Errorf("deriveKey() = %q, want %q", got, want)
	}

	if got := deriveKey("Short", nil); got != "short" {
		t.Errorf("deriveKey() without authors = %q, want %q", got, "short")
	}
}

func TestMergeTags(t *testing.T) {
	tags := mergeTags("security; economics", "Economics, privacy")
	want := []string{"security", "economics", "privacy"}
	if len(tags) != len(want) {
		t.Fatalf("len(tags) = %d, want %d: %v", len(tags), len(want), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}
