package content

import swiftguide "github.com/alnah/go-swiftguide"

func swiftBasics() Chapter {
	return Chapter{
		Title: "Chapter 1: Swift Basics",
		Topics: []swiftguide.Topic{
			{
				Title:       "1.1 Variables and Constants",
				Description: "Swift uses 'var' for mutable variables and 'let' for immutable constants. Type inference allows Swift to automatically determine types.",
				Code: `// Variables (mutable)
var playerName = "Alice"
var score = 100
var isActive = true

// Constants (immutable)
let maxPlayers = 4
let gameTitle = "Swift Adventure"
let pi = 3.14159

// Explicit type annotations
var temperature: Double = 98.6
let items: [String] = ["sword", "shield", "potion"]

// Multiple declarations
var x = 0.0, y = 0.0, z = 0.0
let red, green, blue: Double`,
				KeyPoints: []string{
					"Use 'let' by default, 'var' only when you need to change the value",
					"Type inference reduces verbosity while maintaining type safety",
					"Constants improve performance and prevent accidental mutations",
				},
				Notes: "Swift encourages immutability through 'let'. The compiler optimizes constants more effectively than variables.",
			},
			{
				Title:       "1.2 Data Types",
				Description: "Swift provides various built-in data types including integers, floating-point numbers, booleans, strings, and more.",
				Code: `// Integer types
let smallNumber: Int8 = 127
let regularNumber: Int = 42
let bigNumber: Int64 = 9223372036854775807

// Floating-point types
let pi: Float = 3.14159
let precisePi: Double = 3.141592653589793

// Boolean
let isSwiftFun: Bool = true

// Character and String
let letter: Character = "A"
let greeting: String = "Hello, Swift!"

// Type conversion
let integerValue = 42
let floatValue = Float(integerValue)
let stringValue = String(integerValue)

// Type checking
if floatValue is Float {
    print("It's a Float!")
}`,
				KeyPoints: []string{
					"Int and Double are the most commonly used numeric types",
					"Swift doesn't perform implicit type conversions",
					"Use type conversion initializers for explicit conversions",
					"Type checking with 'is' operator helps ensure type safety",
				},
				Notes: "Swift is a type-safe language, preventing type-related errors at compile time.",
			},
			{
				Title:       "1.3 Optionals",
				Description: "Optionals represent either a value or nil (absence of value). They're fundamental to Swift's safety model.",
				Code: `// Declaring optionals
var optionalString: String? = "Hello"
var optionalInt: Int? = nil

// Optional binding with if-let
if let actualString = optionalString {
    print("The string is: \(actualString)")
} else {
    print("No string value")
}

// Guard statement
func processString(_ str: String?) {
    guard let unwrapped = str else {
        print("String is nil")
        return
    }
    print("Processing: \(unwrapped)")
}

// Nil-coalescing operator
let defaultName = "Anonymous"
let userName = optionalString ?? defaultName

// Optional chaining
class Person {
    var residence: Residence?
}
class Residence {
    var address: String?
}

let person = Person()
let address = person.residence?.address

// Implicitly unwrapped optionals
var assumedString: String! = "An implicitly unwrapped optional string."`,
				KeyPoints: []string{
					"Use optionals to handle absence of values safely",
					"Prefer optional binding over force unwrapping",
					"Guard statements provide early exit for nil values",
					"Optional chaining prevents crashes when accessing nested optionals",
				},
				Notes: "Optionals eliminate null pointer exceptions and make your code more robust.",
			},
			{
				Title:       "1.4 Control Flow",
				Description: "Swift provides various control flow statements including if, switch, loops, and control transfer statements.",
				Code: `// If statements
let temperature = 75
if temperature > 80 {
    print("It's hot!")
} else if temperature > 60 {
    print("It's warm")
} else {
    print("It's cool")
}

// Switch statements (powerful in Swift)
let character = "a"
switch character {
case "a", "e", "i", "o", "u":
    print("It's a vowel")
case "b"..."z":
    print("It's a consonant")
default:
    print("Not a letter")
}

// Switch with ranges and where clauses
let point = (2, 3)
switch point {
case (0, 0):
    print("Origin")
case (_, 0):
    print("On x-axis")
case (0, _):
    print("On y-axis")
case let (x, y) where x == y:
    print("On diagonal")
case let (x, y):
    print("Point at (\(x), \(y))")
}

// For loops
for i in 1...5 {
    print("Count: \(i)")
}

let names = ["Anna", "Alex", "Brian", "Jack"]
for name in names {
    print("Hello, \(name)!")
}

// While loops
var counter = 0
while counter < 3 {
    print(counter)
    counter += 1
}

// Repeat-while (do-while equivalent)
repeat {
    print("This executes at least once")
    counter -= 1
} while counter > 0`,
				KeyPoints: []string{
					"Swift's switch statement is exhaustive and doesn't fall through by default",
					"Pattern matching in switch makes complex conditions elegant",
					"Range operators (...) and (..<) are useful in loops and switches",
					"Control transfer statements: continue, break, fallthrough, return, throw",
				},
				Notes: "Swift's control flow statements are more powerful than many other languages, especially switch statements.",
			},
			{
				Title:       "1.5 Functions",
				Description: "Functions are self-contained chunks of code that perform specific tasks. Swift functions are flexible and powerful.",
				Code: `// Basic function
func greet(person: String) -> String {
    return "Hello, \(person)!"
}
let greeting = greet(person: "Taylor")

// Function with multiple parameters
func greet(person: String, from hometown: String) -> String {
    return "Hello \(person)! Glad you could visit from \(hometown)."
}
print(greet(person: "Bill", from: "Cupertino"))

// Function with default parameters
func greet(person: String, from hometown: String = "Unknown") -> String {
    return "Hello \(person)! Glad you could visit from \(hometown)."
}

// Variadic parameters
func arithmeticMean(_ numbers: Double...) -> Double {
    var total: Double = 0
    for number in numbers {
        total += number
    }
    return total / Double(numbers.count)
}
print(arithmeticMean(1, 2, 3, 4, 5))

// In-out parameters
func swapTwoInts(_ a: inout Int, _ b: inout Int) {
    let temporaryA = a
    a = b
    b = temporaryA
}

var someInt = 3
var anotherInt = 107
swapTwoInts(&someInt, &anotherInt)

// Function types
func addTwoInts(_ a: Int, _ b: Int) -> Int {
    return a + b
}

let mathFunction: (Int, Int) -> Int = addTwoInts
print(mathFunction(2, 3))

// Nested functions
func chooseStepFunction(backward: Bool) -> (Int) -> Int {
    func stepForward(input: Int) -> Int { return input + 1 }
    func stepBackward(input: Int) -> Int { return input - 1 }

    return backward ? stepBackward : stepForward
}`,
				KeyPoints: []string{
					"Parameter labels improve code readability",
					"Default parameters reduce function overloading",
					"inout parameters allow functions to modify external variables",
					"Functions are first-class types in Swift",
				},
				Notes: "Swift functions support many advanced features like closures, higher-order functions, and functional programming patterns.",
			},
			{
				Title:       "1.6 Closures",
				Description: "Closures are self-contained blocks of functionality that can be passed around. They're similar to lambdas in other languages.",
				Code: `// Basic closure syntax
let names = ["Chris", "Alex", "Ewa", "Barry", "Daniella"]

// Full closure syntax
let reversedNames = names.sorted(by: { (s1: String, s2: String) -> Bool in
    return s1 > s2
})

// Inferring type from context
let reversed1 = names.sorted(by: { s1, s2 in return s1 > s2 })

// Implicit returns
let reversed2 = names.sorted(by: { s1, s2 in s1 > s2 })

// Shorthand argument names
let reversed3 = names.sorted(by: { $0 > $1 })

// Operator method
let reversed4 = names.sorted(by: >)

// Trailing closure syntax
let reversed5 = names.sorted { $0 > $1 }

// Capturing values
func makeIncrementer(forIncrement amount: Int) -> () -> Int {
    var runningTotal = 0
    func incrementer() -> Int {
        runningTotal += amount
        return runningTotal
    }
    return incrementer
}

let incrementByTen = makeIncrementer(forIncrement: 10)
print(incrementByTen()) // 10
print(incrementByTen()) // 20

// Escaping closures
var completionHandlers: [() -> Void] = []

func someFunctionWithEscapingClosure(completionHandler: @escaping () -> Void) {
    completionHandlers.append(completionHandler)
}

// Autoclosures
func simpleAssert(_ condition: @autoclosure () -> Bool, _ message: String) {
    if !condition() {
        print(message)
    }
}

let testNumber = 5
simpleAssert(testNumber > 0, "Number must be positive")`,
				KeyPoints: []string{
					"Closures can capture and store references to variables and constants",
					"Trailing closure syntax makes code more readable",
					"@escaping closures outlive the function that calls them",
					"@autoclosure automatically wraps expressions in closures",
				},
				Notes: "Closures are extensively used in Swift for callbacks, functional programming, and asynchronous operations.",
			},
			{
				Title:       "1.7 Collections",
				Description: "Swift provides three primary collection types: arrays, sets, and dictionaries for storing multiple values.",
				Code: `// Arrays
var fruits = ["apple", "banana", "orange"]
fruits.append("grape")
fruits.insert("kiwi", at: 1)

// Array methods
let numbers = [1, 2, 3, 4, 5]
let doubled = numbers.map { $0 * 2 }
let evens = numbers.filter { $0 % 2 == 0 }
let sum = numbers.reduce(0, +)

// Sets
var uniqueNumbers: Set<Int> = [1, 2, 3, 2, 1]
print(uniqueNumbers) // [1, 2, 3]

let set1: Set = [1, 2, 3]
let set2: Set = [3, 4, 5]
let intersection = set1.intersection(set2) // [3]
let union = set1.union(set2) // [1, 2, 3, 4, 5]

// Dictionaries
var studentGrades = ["Alice": 95, "Bob": 87, "Charlie": 92]
studentGrades["Diana"] = 89
studentGrades.updateValue(88, forKey: "Bob")

// Dictionary iteration
for (name, grade) in studentGrades {
    print("\(name): \(grade)")
}

// Nested collections
let matrix: [[Int]] = [[1, 2], [3, 4], [5, 6]]
let coordinates = [(x: 1, y: 2), (x: 3, y: 4)]`,
				KeyPoints: []string{
					"Arrays are ordered collections of values",
					"Sets store unique values in no defined ordering",
					"Dictionaries store key-value associations",
					"All collections support functional programming methods",
				},
				Notes: "Swift collections are type-safe and provide powerful methods for data manipulation.",
			},
			{
				Title:       "1.8 Strings",
				Description: "Swift strings are Unicode-compliant and provide powerful manipulation methods.",
				Code: `// String basics
let greeting = "Hello, World!"
let multilineString = """
    This is a multiline
    string in Swift with
    proper formatting
    """

// String interpolation
let name = "Swift"
let version = 5.0
let message = "Welcome to \(name) \(version)!"

// String methods
let text = "Hello, Swift Programming"
print(text.count) // Character count
print(text.uppercased())
print(text.lowercased())
print(text.hasPrefix("Hello"))
print(text.hasSuffix("Programming"))

// String manipulation
let sentence = "Swift is awesome"
let words = sentence.split(separator: " ")
let joined = words.joined(separator: "-")

// Character iteration
for character in greeting {
    print(character)
}

// String indices
let str = "Swift"
let startIndex = str.startIndex
let endIndex = str.endIndex
let secondChar = str[str.index(after: startIndex)]

// String slicing
let range = str.index(str.startIndex, offsetBy: 1)..<str.index(str.endIndex, offsetBy: -1)
let substring = str[range]

// Regular expressions (iOS 16+)
let pattern = #"\d+"#
if let regex = try? Regex(pattern) {
    let numbers = "Age: 25, Score: 100"
    let matches = numbers.matches(of: regex)
}`,
				KeyPoints: []string{
					"Strings are value types and use copy-on-write optimization",
					"String interpolation with \\() is preferred over concatenation",
					"Strings use String.Index for position-based operations",
					"Regular expressions provide powerful pattern matching",
				},
				Notes: "Swift strings are designed for Unicode correctness and international text support.",
			},
			{
				Title:       "1.9 Error Handling",
				Description: "Swift provides first-class error handling with do-catch blocks, throwing functions, and the Result type.",
				Code: `// Define errors
enum ValidationError: Error {
    case tooShort
    case tooLong
    case invalidCharacters
    case empty
}

// Throwing function
func validatePassword(_ password: String) throws -> Bool {
    if password.isEmpty {
        throw ValidationError.empty
    }

    if password.count < 8 {
        throw ValidationError.tooShort
    }

    if password.count > 50 {
        throw ValidationError.tooLong
    }

    return true
}

// Do-catch block
func testPassword() {
    do {
        try validatePassword("secret")
        print("Password is valid")
    } catch ValidationError.tooShort {
        print("Password is too short")
    } catch ValidationError.empty {
        print("Password cannot be empty")
    } catch {
        print("Unknown error: \(error)")
    }
}

// Try variants
let password1 = try? validatePassword("mypassword") // Returns nil on error
let password2 = try! validatePassword("validpassword") // Crashes on error

// Result type
func validatePasswordResult(_ password: String) -> Result<Bool, ValidationError> {
    do {
        let isValid = try validatePassword(password)
        return .success(isValid)
    } catch let error as ValidationError {
        return .failure(error)
    } catch {
        return .failure(.invalidCharacters)
    }
}

// Using Result
let result = validatePasswordResult("test")
switch result {
case .success(let isValid):
    print("Validation result: \(isValid)")
case .failure(let error):
    print("Validation failed: \(error)")
}

// Rethrowing functions
func processPasswords<T>(_ passwords: [String], processor: (String) throws -> T) rethrows -> [T] {
    return try passwords.map(processor)
}`,
				KeyPoints: []string{
					"Use specific error types conforming to Error protocol",
					"Do-catch blocks handle errors gracefully",
					"try? converts errors to optionals, try! force-unwraps",
					"Result type provides functional error handling",
				},
				Notes: "Swift's error handling is designed to be explicit and safe, preventing runtime crashes from unhandled errors.",
			},
		},
	}
}
