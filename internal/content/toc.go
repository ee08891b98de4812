package content

import swiftguide "github.com/alnah/go-swiftguide"

// TOC returns the table-of-contents entries in display order. Part
// and appendix rows carry an explicit SectionHeader tag and render
// bold. The page column is a placeholder the original document never
// fills in. Entries with an empty label are separator rows.
//
// The listing deliberately mirrors the published guide, including
// chapters announced in the contents that have no body sections yet
// (Advanced SwiftUI, Data Persistence, Testing & Architecture).
func TOC() []swiftguide.TOCEntry {
	return []swiftguide.TOCEntry{
		{Label: "PART I: SWIFT LANGUAGE FUNDAMENTALS", SectionHeader: true},
		{Label: "Chapter 1: Swift Basics"},
		{Label: "   1.1 Variables and Constants"},
		{Label: "   1.2 Data Types"},
		{Label: "   1.3 Optionals"},
		{Label: "   1.4 Control Flow"},
		{Label: "   1.5 Functions"},
		{Label: "   1.6 Closures"},
		{Label: "   1.7 Collections"},
		{Label: "   1.8 Strings"},
		{Label: "   1.9 Error Handling"},
		{},

		{Label: "Chapter 2: Object-Oriented Programming"},
		{Label: "   2.1 Classes vs Structures"},
		{Label: "   2.2 Properties"},
		{Label: "   2.3 Inheritance"},
		{Label: "   2.4 Initialization"},
		{Label: "   2.5 Protocols"},
		{Label: "   2.6 Extensions"},
		{},

		{Label: "Chapter 3: Advanced Swift"},
		{Label: "   3.1 Generics"},
		{Label: "   3.2 Memory Management"},
		{Label: "   3.3 Protocol-Oriented Programming"},
		{Label: "   3.4 Property Wrappers"},
		{Label: "   3.5 Result Builders"},
		{},

		{Label: "PART II: CONCURRENCY & MODERN SWIFT", SectionHeader: true},
		{Label: "Chapter 4: Concurrency"},
		{Label: "   4.1 Async/Await"},
		{Label: "   4.2 Tasks"},
		{Label: "   4.3 Actors"},
		{Label: "   4.4 Structured Concurrency"},
		{},

		{Label: "PART III: SwiftUI FRAMEWORK", SectionHeader: true},
		{Label: "Chapter 5: SwiftUI Fundamentals"},
		{Label: "   5.1 Views and Modifiers"},
		{Label: "   5.2 Layout System"},
		{Label: "   5.3 State Management"},
		{Label: "   5.4 Navigation"},
		{Label: "   5.5 Lists and Forms"},
		{},

		{Label: "Chapter 6: Advanced SwiftUI"},
		{Label: "   6.1 Custom Views"},
		{Label: "   6.2 Animations"},
		{Label: "   6.3 Gestures"},
		{Label: "   6.4 MVVM Pattern"},
		{},

		{Label: "PART IV: REACTIVE PROGRAMMING", SectionHeader: true},
		{Label: "Chapter 7: Combine Framework"},
		{Label: "   7.1 Publishers and Subscribers"},
		{Label: "   7.2 Operators"},
		{Label: "   7.3 Subjects"},
		{Label: "   7.4 Schedulers"},
		{},

		{Label: "PART V: NETWORKING & APIs", SectionHeader: true},
		{Label: "Chapter 8: Networking"},
		{Label: "   8.1 URLSession"},
		{Label: "   8.2 JSON & Codable"},
		{Label: "   8.3 REST APIs"},
		{Label: "   8.4 Authentication"},
		{Label: "   8.5 WebSockets"},
		{},

		{Label: "PART VI: iOS DEVELOPMENT", SectionHeader: true},
		{Label: "Chapter 9: Data Persistence"},
		{Label: "   9.1 UserDefaults"},
		{Label: "   9.2 Core Data"},
		{Label: "   9.3 File System"},
		{Label: "   9.4 Keychain"},
		{},

		{Label: "Chapter 10: Testing & Architecture"},
		{Label: "   10.1 Unit Testing"},
		{Label: "   10.2 UI Testing"},
		{Label: "   10.3 MVVM Architecture"},
		{Label: "   10.4 Dependency Injection"},
		{},

		{Label: "APPENDIX: DATA STRUCTURES & ALGORITHMS", SectionHeader: true},
		{Label: "   A.1 Array Problems"},
		{Label: "   A.2 Linked List Problems"},
		{Label: "   A.3 Tree Problems"},
		{Label: "   A.4 Graph Problems"},
	}
}
