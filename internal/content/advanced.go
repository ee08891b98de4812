package content

import swiftguide "github.com/alnah/go-swiftguide"

func advancedSwift() Chapter {
	return Chapter{
		Title: "Chapter 3: Advanced Swift",
		Topics: []swiftguide.Topic{
			{
				Title:       "3.1 Generics",
				Description: "Generics enable you to write flexible, reusable functions and types that can work with any type, subject to requirements you define.",
				Code: `// Generic function
func swapTwoValues<T>(_ a: inout T, _ b: inout T) {
    let temporaryA = a
    a = b
    b = temporaryA
}

var someInt = 3
var anotherInt = 107
swapTwoValues(&someInt, &anotherInt)

// Generic types
struct Stack<Element> {
    var items: [Element] = []

    mutating func push(_ item: Element) {
        items.append(item)
    }

    mutating func pop() -> Element {
        return items.removeLast()
    }

    func peek() -> Element? {
        return items.last
    }
}

var stackOfStrings = Stack<String>()
stackOfStrings.push("uno")
stackOfStrings.push("dos")

// Type constraints
func findIndex<T: Equatable>(of valueToFind: T, in array: [T]) -> Int? {
    for (index, value) in array.enumerated() {
        if value == valueToFind {
            return index
        }
    }
    return nil
}

// Associated types in protocols
protocol Container {
    associatedtype Item
    mutating func append(_ item: Item)
    var count: Int { get }
    subscript(i: Int) -> Item { get }
}

struct IntStack: Container {
    typealias Item = Int
    var items: [Int] = []

    mutating func append(_ item: Int) {
        items.append(item)
    }

    var count: Int {
        return items.count
    }

    subscript(i: Int) -> Int {
        return items[i]
    }
}

// Generic where clauses
func allItemsMatch<C1: Container, C2: Container>
    (_ someContainer: C1, _ anotherContainer: C2) -> Bool
    where C1.Item == C2.Item, C1.Item: Equatable {

    if someContainer.count != anotherContainer.count {
        return false
    }

    for i in 0..<someContainer.count {
        if someContainer[i] != anotherContainer[i] {
            return false
        }
    }

    return true
}`,
				KeyPoints: []string{
					"Generics provide type safety while maintaining flexibility",
					"Type constraints ensure generic types conform to required protocols",
					"Associated types make protocols more flexible",
					"Where clauses add additional requirements to generic functions",
				},
				Notes: "Generics are extensively used in Swift's standard library and are key to creating reusable, type-safe code.",
			},
			{
				Title:       "3.2 Protocols",
				Description: "Protocols define a blueprint of methods, properties, and requirements that suit a particular task or piece of functionality.",
				Code: `// Basic protocol
protocol Drawable {
    func draw()
    var area: Double { get }
    var perimeter: Double { get }
}

// Protocol implementation
struct Circle: Drawable {
    let radius: Double

    func draw() {
        print("Drawing a circle with radius \(radius)")
    }

    var area: Double {
        return .pi * radius * radius
    }

    var perimeter: Double {
        return 2 * .pi * radius
    }
}

// Protocol inheritance
protocol Shape3D: Drawable {
    var volume: Double { get }
}

// Multiple protocol conformance
protocol Identifiable {
    var id: String { get }
}

struct User: Identifiable, CustomStringConvertible {
    let id: String
    let name: String

    var description: String {
        return "User(id: \(id), name: \(name))"
    }
}

// Protocol extensions
extension Drawable {
    func drawWithBorder() {
        print("Drawing border...")
        draw()
        print("Border complete")
    }

    // Default implementation
    var description: String {
        return "A shape with area \(area)"
    }
}

// Protocol with associated types
protocol Container {
    associatedtype Item
    var count: Int { get }
    mutating func append(_ item: Item)
    subscript(i: Int) -> Item { get }
}

struct Stack<Element>: Container {
    var items: [Element] = []

    var count: Int {
        return items.count
    }

    mutating func append(_ item: Element) {
        items.append(item)
    }

    subscript(i: Int) -> Element {
        return items[i]
    }
}

// Protocol composition
protocol Named {
    var name: String { get }
}

protocol Aged {
    var age: Int { get }
}

func greetPerson(_ person: Named & Aged) {
    print("Hello, \(person.name), you are \(person.age) years old")
}

// Checking protocol conformance
if let circle = someObject as? Drawable {
    circle.draw()
}`,
				KeyPoints: []string{
					"Protocols define contracts that types must fulfill",
					"Protocol extensions provide default implementations",
					"Associated types make protocols generic",
					"Protocol composition combines multiple protocols",
				},
				Notes: "Protocols are fundamental to Swift's protocol-oriented programming paradigm.",
			},
			{
				Title:       "3.3 Extensions",
				Description: "Extensions add new functionality to existing classes, structures, enumerations, or protocol types without modifying their source code.",
				Code: `// Basic extension
extension Double {
    var squared: Double {
        return self * self
    }

    func rounded(toDecimalPlaces places: Int) -> Double {
        let multiplier = pow(10, Double(places))
        return (self * multiplier).rounded() / multiplier
    }
}

let number = 3.14159
print(number.squared) // 9.8696
print(number.rounded(toDecimalPlaces: 2)) // 3.14

// Extension with initializers
extension String {
    init(repeating character: Character, count: Int) {
        self = String(Array(repeating: character, count: count))
    }

    var isPalindrome: Bool {
        let cleaned = self.lowercased().filter { $0.isLetter }
        return cleaned == String(cleaned.reversed())
    }
}

let stars = String(repeating: "*", count: 5) // "*****"
print("racecar".isPalindrome) // true

// Extension with subscripts
extension Array {
    subscript(safe index: Int) -> Element? {
        return indices.contains(index) ? self[index] : nil
    }
}

let numbers = [1, 2, 3, 4, 5]
print(numbers[safe: 10]) // nil instead of crash

// Extension with nested types
extension Character {
    enum Kind {
        case vowel
        case consonant
        case other
    }

    var kind: Kind {
        switch lowercased() {
        case "a", "e", "i", "o", "u":
            return .vowel
        case "a"..."z":
            return .consonant
        default:
            return .other
        }
    }
}

let char: Character = "E"
print(char.kind) // vowel

// Generic extension
extension Array where Element: Comparable {
    func quickSorted() -> [Element] {
        guard count > 1 else { return self }

        let pivot = self[count / 2]
        let less = self.filter { $0 < pivot }
        let equal = self.filter { $0 == pivot }
        let greater = self.filter { $0 > pivot }

        return less.quickSorted() + equal + greater.quickSorted()
    }
}

let unsorted = [3, 1, 4, 1, 5, 9, 2, 6]
let sorted = unsorted.quickSorted()`,
				KeyPoints: []string{
					"Extensions add functionality without modifying original code",
					"Can add computed properties, methods, initializers, and subscripts",
					"Generic extensions can add conditional functionality",
					"Extensions can conform types to protocols",
				},
				Notes: "Extensions are a powerful way to organize code and add functionality to existing types.",
			},
		},
	}
}
