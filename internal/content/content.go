// Package content holds the literal text of the Comprehensive Swift
// Programming Guide: parts, chapters, topics, and the table of
// contents. It is pure data; Build replays it against an assembler in
// a fixed order, and that order is the order of the rendered document.
package content

import (
	swiftguide "github.com/alnah/go-swiftguide"
)

// DefaultOutputFile is the artifact name used when no output path is
// given.
const DefaultOutputFile = "Comprehensive_Swift_Programming_Guide.pdf"

// Chapter groups the topics appearing under one chapter heading.
type Chapter struct {
	Title  string
	Topics []swiftguide.Topic
}

// Part groups the chapters appearing under one part heading.
type Part struct {
	Title    string
	Chapters []Chapter
}

// TitlePage returns the guide's title-page text. Date is left empty so
// the assembler clock fills in the generation date.
func TitlePage() swiftguide.TitlePage {
	return swiftguide.TitlePage{
		Title:       "Comprehensive Swift\nProgramming Guide",
		Subtitle:    "Swift Language • SwiftUI • Combine • Networking\niOS Development • Data Structures & Algorithms",
		Description: "A complete guide with 120+ topics, code examples, and practical implementations",
	}
}

// Guide returns every part of the guide in document order.
func Guide() []Part {
	return []Part{
		{
			Title: "PART I: SWIFT LANGUAGE FUNDAMENTALS",
			Chapters: []Chapter{
				swiftBasics(),
				objectOrientedProgramming(),
				advancedSwift(),
			},
		},
		{
			Title:    "PART II: CONCURRENCY & MODERN SWIFT",
			Chapters: []Chapter{concurrency()},
		},
		{
			Title:    "PART III: SwiftUI FRAMEWORK",
			Chapters: []Chapter{swiftUIFundamentals()},
		},
		{
			Title:    "PART IV: REACTIVE PROGRAMMING",
			Chapters: []Chapter{combineFramework()},
		},
		{
			Title:    "PART V: NETWORKING & APIs",
			Chapters: []Chapter{networking()},
		},
		{
			Title:    "APPENDIX: DATA STRUCTURES & ALGORITHMS",
			Chapters: []Chapter{arrayProblems()},
		},
	}
}

// Build appends the complete guide to the assembler: the given title
// page, the table of contents, then every part, chapter, and topic in
// order.
func Build(a *swiftguide.Assembler, title swiftguide.TitlePage) {
	a.AppendTitlePage(title)
	a.AppendTableOfContents(TOC())
	for _, part := range Guide() {
		a.AppendChapterTitle(part.Title)
		for _, ch := range part.Chapters {
			a.AppendChapterTitle(ch.Title)
			for _, t := range ch.Topics {
				a.AppendTopic(t)
			}
		}
	}
}

// Stats counts the parts, chapters, and topics of the guide.
func Stats() (parts, chapters, topics int) {
	for _, part := range Guide() {
		parts++
		for _, ch := range part.Chapters {
			chapters++
			topics += len(ch.Topics)
		}
	}
	return parts, chapters, topics
}
