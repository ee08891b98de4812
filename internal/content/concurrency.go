package content

import swiftguide "github.com/alnah/go-swiftguide"

func concurrency() Chapter {
	return Chapter{
		Title: "Chapter 4: Concurrency",
		Topics: []swiftguide.Topic{
			{
				Title:       "4.1 Async/Await",
				Description: "Swift's async/await syntax provides a clean way to write asynchronous code that reads like synchronous code.",
				Code: `// Basic async function
func fetchUserData(id: String) async throws -> User {
    let url = URL(string: "https://api.example.com/users/\(id)")!
    let (data, _) = try await URLSession.shared.data(from: url)
    return try JSONDecoder().decode(User.self, from: data)
}

// Calling async functions
func loadUserProfile() async {
    do {
        let user = try await fetchUserData(id: "123")
        print("Loaded user: \(user.name)")
    } catch {
        print("Failed to load user: \(error)")
    }
}

// Async properties
class ImageLoader {
    private var cache: [URL: UIImage] = [:]

    var imageCount: Int {
        cache.count
    }

    func image(from url: URL) async throws -> UIImage {
        // Check cache first
        if let cachedImage = cache[url] {
            return cachedImage
        }

        // Download image
        let (data, _) = try await URLSession.shared.data(from: url)
        guard let image = UIImage(data: data) else {
            throw ImageError.invalidData
        }

        // Cache the image
        cache[url] = image
        return image
    }
}

// Async sequences
func countDown(from number: Int) -> AsyncStream<Int> {
    AsyncStream { continuation in
        Task {
            for i in (0...number).reversed() {
                continuation.yield(i)
                try await Task.sleep(nanoseconds: 1_000_000_000) // 1 second
            }
            continuation.finish()
        }
    }
}

// Using async sequences
func runCountdown() async {
    for await count in countDown(from: 5) {
        print("Count: \(count)")
    }
    print("Done!")
}

// Async/await with completion handlers
func legacyNetworkCall(completion: @escaping (Result<Data, Error>) -> Void) {
    // Legacy callback-based code
}

// Convert to async/await
func modernNetworkCall() async throws -> Data {
    return try await withCheckedThrowingContinuation { continuation in
        legacyNetworkCall { result in
            continuation.resume(with: result)
        }
    }
}

// Multiple concurrent operations
func loadMultipleUsers() async throws -> [User] {
    async let user1 = fetchUserData(id: "1")
    async let user2 = fetchUserData(id: "2")
    async let user3 = fetchUserData(id: "3")

    return try await [user1, user2, user3]
}`,
				KeyPoints: []string{
					"async functions must be called with await",
					"async/await eliminates callback hell",
					"Use async let for concurrent operations",
					"AsyncSequence provides asynchronous iteration",
				},
				Notes: "Async/await makes asynchronous code more readable and easier to debug than callback-based approaches.",
			},
			{
				Title:       "4.2 Tasks",
				Description: "Tasks represent units of asynchronous work. Swift provides Task, TaskGroup, and various cancellation mechanisms.",
				Code: `// Basic Task creation
func startBackgroundWork() {
    Task {
        let result = await performLongRunningOperation()
        await updateUI(with: result)
    }
}

// Task with priority
func highPriorityWork() {
    Task(priority: .high) {
        await performCriticalOperation()
    }
}

// Detached tasks
func detachedWork() {
    Task.detached {
        // This task doesn't inherit context
        await performIndependentWork()
    }
}

// TaskGroup for multiple concurrent operations
func processItemsConcurrently(_ items: [String]) async -> [ProcessedItem] {
    await withTaskGroup(of: ProcessedItem.self) { group in
        var results: [ProcessedItem] = []

        for item in items {
            group.addTask {
                return await processItem(item)
            }
        }

        for await result in group {
            results.append(result)
        }

        return results
    }
}

// Error handling in TaskGroup
func processWithErrorHandling(_ items: [String]) async -> [ProcessedItem] {
    await withTaskGroup(of: Result<ProcessedItem, Error>.self) { group in
        var results: [ProcessedItem] = []

        for item in items {
            group.addTask {
                do {
                    let processed = try await processItemThrowing(item)
                    return .success(processed)
                } catch {
                    return .failure(error)
                }
            }
        }

        for await result in group {
            switch result {
            case .success(let item):
                results.append(item)
            case .failure(let error):
                print("Failed to process item: \(error)")
            }
        }

        return results
    }
}

// Task cancellation
class DataProcessor {
    private var currentTask: Task<Void, Error>?

    func startProcessing() {
        currentTask = Task {
            for i in 1...1000 {
                // Check for cancellation
                try Task.checkCancellation()

                await processItem(i)

                // Alternative cancellation check
                if Task.isCancelled {
                    print("Task was cancelled")
                    return
                }
            }
        }
    }

    func cancelProcessing() {
        currentTask?.cancel()
    }
}

// Task local values
enum TaskLocals {
    @TaskLocal static var userID: String?
    @TaskLocal static var requestID: String = UUID().uuidString
}

func performUserOperation() async {
    await TaskLocals.$userID.withValue("user123") {
        await TaskLocals.$requestID.withValue("req456") {
            await someOperation()
            // userID and requestID are available here
        }
    }
}`,
				KeyPoints: []string{
					"Task represents a unit of asynchronous work",
					"TaskGroup enables structured concurrency for multiple operations",
					"Tasks can be cancelled cooperatively",
					"Task-local values provide context inheritance",
				},
				Notes: "Tasks provide structured concurrency, making concurrent code predictable and manageable.",
			},
			{
				Title:       "4.3 Actors",
				Description: "Actors provide data isolation and protect against data races in concurrent programming.",
				Code: `// Basic actor
actor Counter {
    private var value = 0

    func increment() -> Int {
        value += 1
        return value
    }

    func getValue() -> Int {
        return value
    }

    func reset() {
        value = 0
    }
}

// Using actors
func useCounter() async {
    let counter = Counter()

    let value1 = await counter.increment() // Must use await
    let value2 = await counter.getValue()

    print("Counter values: \(value1), \(value2)")
}

// Actor with async methods
actor ImageCache {
    private var images: [URL: UIImage] = [:]

    func image(for url: URL) async -> UIImage? {
        if let cached = images[url] {
            return cached
        }

        // Fetch image
        do {
            let (data, _) = try await URLSession.shared.data(from: url)
            let image = UIImage(data: data)
            images[url] = image
            return image
        } catch {
            return nil
        }
    }

    func clearCache() {
        images.removeAll()
    }
}

// MainActor for UI updates
@MainActor
class ViewModel: ObservableObject {
    @Published var data: [String] = []

    func loadData() async {
        let newData = await fetchDataFromNetwork()

        // This runs on main actor automatically
        self.data = newData
    }

    // Non-isolated methods can be called from any context
    nonisolated func validateInput(_ input: String) -> Bool {
        return !input.isEmpty
    }
}

// Global actor
@globalActor
actor DatabaseActor {
    static let shared = DatabaseActor()
    private init() {}
}

@DatabaseActor
func saveToDatabase(_ data: Data) {
    // All calls to this function are serialized
    // through the DatabaseActor
}

// Actor inheritance (only from protocols)
protocol Drawable {
    func draw() async
}

actor DrawingCanvas: Drawable {
    private var shapes: [Shape] = []

    func draw() async {
        for shape in shapes {
            await shape.render()
        }
    }

    func addShape(_ shape: Shape) {
        shapes.append(shape)
    }
}

// Sendable types for actor boundaries
struct SafeData: Sendable {
    let id: String
    let value: Int
}

actor DataProcessor {
    func process(_ data: SafeData) async -> ProcessedData {
        // Safe to pass Sendable types across actor boundaries
        return await processData(data)
    }
}`,
				KeyPoints: []string{
					"Actors provide data isolation and prevent data races",
					"Actor methods are called with await from outside the actor",
					"MainActor ensures UI updates happen on the main thread",
					"Sendable types can be safely passed between actors",
				},
				Notes: "Actors are Swift's solution to thread-safe programming without explicit locks or queues.",
			},
		},
	}
}
