package content

import swiftguide "github.com/alnah/go-swiftguide"

func objectOrientedProgramming() Chapter {
	return Chapter{
		Title: "Chapter 2: Object-Oriented Programming",
		Topics: []swiftguide.Topic{
			{
				Title:       "2.1 Classes vs Structures",
				Description: "Swift provides both classes and structures. Understanding when to use each is crucial for effective Swift programming.",
				Code: `// Structure (Value Type)
struct Point {
    var x: Double
    var y: Double

    func distanceFromOrigin() -> Double {
        return sqrt(x * x + y * y)
    }

    // Mutating method for value types
    mutating func moveBy(x deltaX: Double, y deltaY: Double) {
        x += deltaX
        y += deltaY
    }
}

// Class (Reference Type)
class Vehicle {
    var currentSpeed = 0.0
    var description: String {
        return "traveling at \(currentSpeed) miles per hour"
    }

    func makeNoise() {
        // Override in subclass
    }
}

class Bicycle: Vehicle {
    var hasBasket = false

    override func makeNoise() {
        print("Ring ring!")
    }
}

// Identity operators for reference types
let vehicle1 = Vehicle()
let vehicle2 = Vehicle()
let vehicle3 = vehicle1

if vehicle1 === vehicle3 {
    print("Same instance")
}

// Copy behavior difference
var point1 = Point(x: 1.0, y: 2.0)
var point2 = point1  // Copies the value
point2.x = 3.0
print(point1.x)  // Still 1.0

let bike1 = Bicycle()
let bike2 = bike1  // Same reference
bike2.currentSpeed = 10.0
print(bike1.currentSpeed)  // Also 10.0`,
				KeyPoints: []string{
					"Structures are value types (copied), classes are reference types (shared)",
					"Use structures for simple data containers and value semantics",
					"Use classes when you need inheritance or reference semantics",
					"Identity operators (=== and !==) compare reference equality",
				},
				Notes: "Choose structures by default and classes when you specifically need reference semantics.",
			},
			{
				Title:       "2.2 Properties",
				Description: "Properties associate values with classes, structures, and enumerations. Swift provides stored and computed properties.",
				Code: `// Stored properties
struct FixedLengthRange {
    var firstValue: Int
    let length: Int  // Constant stored property
}

// Lazy stored properties
class DataImporter {
    var filename = "data.txt"
    // Expensive initialization
}

class DataManager {
    lazy var importer = DataImporter()
    var data: [String] = []
}

// Computed properties
struct Point {
    var x = 0.0, y = 0.0
}

struct Size {
    var width = 0.0, height = 0.0
}

struct Rect {
    var origin = Point()
    var size = Size()

    var center: Point {
        get {
            let centerX = origin.x + (size.width / 2)
            let centerY = origin.y + (size.height / 2)
            return Point(x: centerX, y: centerY)
        }
        set(newCenter) {
            origin.x = newCenter.x - (size.width / 2)
            origin.y = newCenter.y - (size.height / 2)
        }
    }

    // Read-only computed property
    var area: Double {
        return size.width * size.height
    }
}

// Property observers
class StepCounter {
    var totalSteps: Int = 0 {
        willSet(newTotalSteps) {
            print("About to set totalSteps to \(newTotalSteps)")
        }
        didSet {
            if totalSteps > oldValue {
                print("Added \(totalSteps - oldValue) steps")
            }
        }
    }
}

// Property wrappers
@propertyWrapper
struct Clamped<T: Comparable> {
    private var value: T
    private let range: ClosedRange<T>

    init(wrappedValue: T, _ range: ClosedRange<T>) {
        self.range = range
        self.value = max(range.lowerBound, min(range.upperBound, wrappedValue))
    }

    var wrappedValue: T {
        get { value }
        set { value = max(range.lowerBound, min(range.upperBound, newValue)) }
    }
}

struct Player {
    @Clamped(0...100) var health: Int = 100
    @Clamped(0...10) var level: Int = 1
}`,
				KeyPoints: []string{
					"Stored properties store constant and variable values",
					"Computed properties calculate values on-the-fly",
					"Property observers respond to changes in property values",
					"Property wrappers provide reusable property behavior",
				},
				Notes: "Properties are a fundamental part of Swift's type system, providing flexible data access patterns.",
			},
			{
				Title:       "2.3 Inheritance",
				Description: "Classes can inherit methods, properties, and characteristics from another class. Swift supports single inheritance.",
				Code: `// Base class
class Vehicle {
    var currentSpeed = 0.0

    var description: String {
        return "traveling at \(currentSpeed) miles per hour"
    }

    func makeNoise() {
        // Default implementation
        print("Some generic vehicle noise")
    }
}

// Subclass
class Bicycle: Vehicle {
    var hasBasket = false

    override func makeNoise() {
        print("Ring ring!")
    }
}

// Further subclassing
class Tandem: Bicycle {
    var currentNumberOfPassengers = 0

    override var description: String {
        return super.description + " with \(currentNumberOfPassengers) passengers"
    }
}

// Preventing inheritance
final class FinalVehicle: Vehicle {
    // Cannot be subclassed
}

// Overriding properties
class Car: Vehicle {
    var gear = 1

    override var description: String {
        return super.description + " in gear \(gear)"
    }

    // Overriding property observers
    override var currentSpeed: Double {
        didSet {
            gear = Int(currentSpeed / 10.0) + 1
        }
    }
}

// Initialization inheritance
class ElectricCar: Car {
    var batteryLevel: Double

    init(batteryLevel: Double) {
        self.batteryLevel = batteryLevel
        super.init()
        self.currentSpeed = 25.0
    }

    override func makeNoise() {
        print("Whisper quiet...")
    }
}`,
				KeyPoints: []string{
					"Only classes support inheritance in Swift",
					"Use 'override' keyword to override methods and properties",
					"Call superclass methods with 'super'",
					"Use 'final' to prevent inheritance",
				},
				Notes: "Inheritance enables code reuse and polymorphism, but favor composition over inheritance when possible.",
			},
			{
				Title:       "2.4 Initialization",
				Description: "Initialization is the process of preparing an instance for use. Swift provides designated and convenience initializers.",
				Code: `// Basic initialization
struct Celsius {
    var temperatureInCelsius: Double

    init(fromFahrenheit fahrenheit: Double) {
        temperatureInCelsius = (fahrenheit - 32.0) / 1.8
    }

    init(fromKelvin kelvin: Double) {
        temperatureInCelsius = kelvin - 273.15
    }

    init(_ celsius: Double) {
        temperatureInCelsius = celsius
    }
}

// Class initialization
class Food {
    var name: String

    init(name: String) {
        self.name = name
    }

    convenience init() {
        self.init(name: "[Unnamed]")
    }
}

class RecipeIngredient: Food {
    var quantity: Int

    init(name: String, quantity: Int) {
        self.quantity = quantity
        super.init(name: name)
    }

    override convenience init(name: String) {
        self.init(name: name, quantity: 1)
    }
}

// Failable initializers
struct Animal {
    let species: String

    init?(species: String) {
        if species.isEmpty {
            return nil
        }
        self.species = species
    }
}

// Required initializers
class SomeClass {
    required init() {
        // Implementation
    }
}

class SomeSubclass: SomeClass {
    required init() {
        // Must implement required initializer
    }
}

// Memberwise initializers (structs only)
struct Point {
    var x: Double
    var y: Double
    // Automatically gets init(x:y:)
}

// Deinitialization
class Player {
    let playerName: String

    init(name: String) {
        self.playerName = name
        print("\(playerName) has joined the game")
    }

    deinit {
        print("\(playerName) has left the game")
    }
}`,
				KeyPoints: []string{
					"Designated initializers fully initialize all properties",
					"Convenience initializers call other initializers",
					"Failable initializers return nil if initialization fails",
					"Required initializers must be implemented by all subclasses",
				},
				Notes: "Swift's initialization system ensures all properties are initialized before the instance is ready for use.",
			},
		},
	}
}
