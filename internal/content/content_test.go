package content

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	swiftguide "github.com/alnah/go-swiftguide"
)

func TestStats(t *testing.T) {
	parts, chapters, topics := Stats()
	if parts != 6 {
		t.Errorf("parts = %d, want 6", parts)
	}
	if chapters != 8 {
		t.Errorf("chapters = %d, want 8", chapters)
	}
	if topics != 28 {
		t.Errorf("topics = %d, want 28", topics)
	}
}

func TestGuideStructure(t *testing.T) {
	var partTitles []string
	for _, p := range Guide() {
		partTitles = append(partTitles, p.Title)
	}
	wantParts := []string{
		"PART I: SWIFT LANGUAGE FUNDAMENTALS",
		"PART II: CONCURRENCY & MODERN SWIFT",
		"PART III: SwiftUI FRAMEWORK",
		"PART IV: REACTIVE PROGRAMMING",
		"PART V: NETWORKING & APIs",
		"APPENDIX: DATA STRUCTURES & ALGORITHMS",
	}
	if diff := cmp.Diff(wantParts, partTitles); diff != "" {
		t.Errorf("part titles mismatch (-want +got):\n%s", diff)
	}
}

func TestSwiftUITopicOrder(t *testing.T) {
	// The published guide orders chapter 5 as written, not numerically.
	var got []string
	for _, p := range Guide() {
		for _, ch := range p.Chapters {
			if ch.Title != "Chapter 5: SwiftUI Fundamentals" {
				continue
			}
			for _, topic := range ch.Topics {
				got = append(got, topic.Title)
			}
		}
	}
	want := []string{
		"5.1 Views and Modifiers",
		"5.3 State Management",
		"5.4 Navigation",
		"5.5 Animations",
		"5.2 Layout System",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chapter 5 topic order mismatch (-want +got):\n%s", diff)
	}
}

func TestTopicsAreComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Guide() {
		for _, ch := range p.Chapters {
			if len(ch.Topics) == 0 {
				t.Errorf("chapter %q has no topics", ch.Title)
			}
			for _, topic := range ch.Topics {
				if topic.Title == "" {
					t.Errorf("chapter %q contains an untitled topic", ch.Title)
					continue
				}
				if seen[topic.Title] {
					t.Errorf("duplicate topic title %q", topic.Title)
				}
				seen[topic.Title] = true

				if topic.Description == "" {
					t.Errorf("topic %q has no description", topic.Title)
				}
				if topic.Code == "" {
					t.Errorf("topic %q has no code example", topic.Title)
				}
				if len(topic.KeyPoints) == 0 {
					t.Errorf("topic %q has no key points", topic.Title)
				}
				if topic.Notes == "" {
					t.Errorf("topic %q has no notes", topic.Title)
				}
				if strings.Contains(topic.Code, "\t") {
					t.Errorf("topic %q code contains tabs", topic.Title)
				}
			}
		}
	}
}

func TestTOCEntries(t *testing.T) {
	entries := TOC()
	if len(entries) == 0 {
		t.Fatal("TOC() returned no entries")
	}

	for i, e := range entries {
		isPart := strings.HasPrefix(e.Label, "PART") || strings.HasPrefix(e.Label, "APPENDIX")
		if isPart != e.SectionHeader {
			t.Errorf("entry %d %q: SectionHeader = %v, want %v", i, e.Label, e.SectionHeader, isPart)
		}
		if e.Page != "" {
			t.Errorf("entry %d %q: page column must stay empty", i, e.Label)
		}
	}

	if !entries[0].SectionHeader {
		t.Error("first entry must be a bold part header")
	}
}

func TestBuildRenders(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	a := swiftguide.New(
		swiftguide.WithClock(clock),
		swiftguide.WithCompression(false),
	)
	Build(a, TitlePage())

	if a.Len() == 0 {
		t.Fatal("Build appended nothing")
	}

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.Bytes()
	for _, want := range []string{
		"Table of Contents",
		"Chapter 1: Swift Basics",
		"1.1 Variables and Constants",
		// Parentheses are escaped in PDF text, so match the inner run.
		"Kadane's Algorithm",
		"Generated on: March 15, 2025",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("rendered guide missing %q", want)
		}
	}
}
