package content

import swiftguide "github.com/alnah/go-swiftguide"

func networking() Chapter {
	return Chapter{
		Title: "Chapter 8: Networking",
		Topics: []swiftguide.Topic{
			{
				Title:       "8.1 URLSession",
				Description: "URLSession is the foundation of networking in iOS. It provides APIs for making HTTP requests with modern async/await support.",
				Code: `import Foundation

// Basic URLSession with async/await
class NetworkManager {
    static let shared = NetworkManager()
    private init() {}

    // Simple GET request
    func fetchData(from url: URL) async throws -> Data {
        let (data, response) = try await URLSession.shared.data(from: url)

        guard let httpResponse = response as? HTTPURLResponse,
              httpResponse.statusCode == 200 else {
            throw NetworkError.invalidResponse
        }

        return data
    }

    // POST request with JSON
    func postJSON<T: Codable>(to url: URL, body: T) async throws -> Data {
        var request = URLRequest(url: url)
        request.httpMethod = "POST"
        request.setValue("application/json", forHTTPHeaderField: "Content-Type")
        request.setValue("Bearer \(AuthManager.token)", forHTTPHeaderField: "Authorization")

        request.httpBody = try JSONEncoder().encode(body)

        let (data, response) = try await URLSession.shared.data(for: request)

        guard let httpResponse = response as? HTTPURLResponse,
              200...299 ~= httpResponse.statusCode else {
            throw NetworkError.serverError(response)
        }

        return data
    }

    // Download file with progress
    func downloadFile(from url: URL) -> AsyncThrowingStream<DownloadProgress, Error> {
        AsyncThrowingStream { continuation in
            let task = URLSession.shared.downloadTask(with: url) { localURL, response, error in
                if let error = error {
                    continuation.finish(throwing: error)
                    return
                }

                guard let localURL = localURL else {
                    continuation.finish(throwing: NetworkError.noData)
                    return
                }

                // Move file to permanent location
                // continuation.yield(.completed(localURL))
                continuation.finish()
            }

            task.resume()
        }
    }

    // URLSession with custom configuration
    func createCustomSession() -> URLSession {
        let config = URLSessionConfiguration.default
        config.timeoutIntervalForRequest = 30
        config.timeoutIntervalForResource = 60
        config.httpMaximumConnectionsPerHost = 5
        config.requestCachePolicy = .reloadIgnoringLocalCacheData

        return URLSession(configuration: config)
    }

    // Retry mechanism
    func fetchWithRetry<T: Codable>(url: URL, type: T.Type, maxRetries: Int = 3) async throws -> T {
        var lastError: Error?

        for attempt in 1...maxRetries {
            do {
                let data = try await fetchData(from: url)
                return try JSONDecoder().decode(T.self, from: data)
            } catch {
                lastError = error
                if attempt < maxRetries {
                    let delay = Double(attempt * 2) // Exponential backoff
                    try await Task.sleep(nanoseconds: UInt64(delay * 1_000_000_000))
                }
            }
        }

        throw lastError ?? NetworkError.maxRetriesExceeded
    }
}

// Error handling
enum NetworkError: Error, LocalizedError {
    case invalidURL
    case noData
    case invalidResponse
    case serverError(URLResponse?)
    case decodingError
    case maxRetriesExceeded

    var errorDescription: String? {
        switch self {
        case .invalidURL:
            return "Invalid URL"
        case .noData:
            return "No data received"
        case .invalidResponse:
            return "Invalid response"
        case .serverError:
            return "Server error"
        case .decodingError:
            return "Failed to decode data"
        case .maxRetriesExceeded:
            return "Maximum retry attempts exceeded"
        }
    }
}

// Progress tracking
struct DownloadProgress {
    let bytesWritten: Int64
    let totalBytesWritten: Int64
    let totalBytesExpectedToWrite: Int64

    var progress: Double {
        guard totalBytesExpectedToWrite > 0 else { return 0 }
        return Double(totalBytesWritten) / Double(totalBytesExpectedToWrite)
    }
}`,
				KeyPoints: []string{
					"async/await makes networking code more readable and maintainable",
					"Always handle HTTP status codes and potential errors",
					"URLSession configuration allows customization of timeouts and caching",
					"Implement retry mechanisms for robust networking",
				},
				Notes: "Modern Swift networking leverages async/await for cleaner asynchronous code without callback hell.",
			},
		},
	}
}
