package content

import swiftguide "github.com/alnah/go-swiftguide"

func combineFramework() Chapter {
	return Chapter{
		Title: "Chapter 7: Combine Framework",
		Topics: []swiftguide.Topic{
			{
				Title:       "7.1 Publishers and Subscribers",
				Description: "Combine is Apple's framework for handling asynchronous events by combining event-processing operators. Publishers emit values over time, and subscribers receive them.",
				Code: `import Combine
import Foundation

// Basic publisher and subscriber
class CombineBasics {
    var cancellables = Set<AnyCancellable>()

    func basicPublisherSubscriber() {
        // Simple publisher
        let publisher = Just("Hello, Combine!")

        publisher
            .sink { value in
                print("Received: \(value)")
            }
            .store(in: &cancellables)

        // Array publisher
        let numbers = [1, 2, 3, 4, 5]
        numbers.publisher
            .sink { number in
                print("Number: \(number)")
            }
            .store(in: &cancellables)
    }

    // PassthroughSubject
    func passthroughSubjectExample() {
        let subject = PassthroughSubject<String, Never>()

        subject
            .sink { value in
                print("PassthroughSubject received: \(value)")
            }
            .store(in: &cancellables)

        subject.send("First message")
        subject.send("Second message")
        subject.send(completion: .finished)
    }

    // CurrentValueSubject
    func currentValueSubjectExample() {
        let currentValueSubject = CurrentValueSubject<Int, Never>(0)

        currentValueSubject
            .sink { value in
                print("CurrentValueSubject: \(value)")
            }
            .store(in: &cancellables)

        currentValueSubject.send(1)
        currentValueSubject.send(2)

        print("Current value: \(currentValueSubject.value)")
    }

    // Custom publisher
    struct CountdownPublisher: Publisher {
        typealias Output = Int
        typealias Failure = Never

        let start: Int

        func receive<S>(subscriber: S) where S : Subscriber, Never == S.Failure, Int == S.Input {
            let subscription = CountdownSubscription(subscriber: subscriber, start: start)
            subscriber.receive(subscription: subscription)
        }
    }

    class CountdownSubscription<S: Subscriber>: Subscription where S.Input == Int, S.Failure == Never {
        private var subscriber: S?
        private var current: Int

        init(subscriber: S, start: Int) {
            self.subscriber = subscriber
            self.current = start
        }

        func request(_ demand: Subscribers.Demand) {
            var demand = demand

            while demand > 0 && current > 0 {
                _ = subscriber?.receive(current)
                current -= 1
                demand -= 1
            }

            if current == 0 {
                subscriber?.receive(completion: .finished)
            }
        }

        func cancel() {
            subscriber = nil
        }
    }

    func customPublisherExample() {
        CountdownPublisher(start: 5)
            .sink { value in
                print("Countdown: \(value)")
            }
            .store(in: &cancellables)
    }
}`,
				KeyPoints: []string{
					"Publishers emit values over time, subscribers receive them",
					"PassthroughSubject sends values to subscribers without storing current value",
					"CurrentValueSubject maintains and emits the current value to new subscribers",
					"Custom publishers implement the Publisher protocol",
				},
				Notes: "Combine follows the reactive programming paradigm, making asynchronous code more manageable and composable.",
			},
		},
	}
}
