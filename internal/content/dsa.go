package content

import swiftguide "github.com/alnah/go-swiftguide"

func arrayProblems() Chapter {
	return Chapter{
		Title: "A.1 Array Problems",
		Topics: []swiftguide.Topic{
			{
				Title:       "Two Sum",
				Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
				Code: `func twoSum(_ nums: [Int], _ target: Int) -> [Int] {
    var numToIndex: [Int: Int] = [:]

    for (index, num) in nums.enumerated() {
        let complement = target - num

        if let complementIndex = numToIndex[complement] {
            return [complementIndex, index]
        }

        numToIndex[num] = index
    }

    return []
}

// Example usage:
let nums = [2, 7, 11, 15]
let target = 9
let result = twoSum(nums, target)
print(result) // [0, 1]`,
				KeyPoints: []string{
					"Time Complexity: O(n)",
					"Space Complexity: O(n)",
				},
				Notes: "Uses hash map to store each number and its index, enabling O(1) lookup time.",
			},
			{
				Title:       "Maximum Subarray (Kadane's Algorithm)",
				Description: "Find the contiguous subarray with the largest sum.",
				Code: `func maxSubArray(_ nums: [Int]) -> Int {
    guard !nums.isEmpty else { return 0 }

    var maxSum = nums[0]
    var currentSum = nums[0]

    for i in 1..<nums.count {
        currentSum = max(nums[i], currentSum + nums[i])
        maxSum = max(maxSum, currentSum)
    }

    return maxSum
}

// Example usage:
let nums = [-2, 1, -3, 4, -1, 2, 1, -5, 4]
let result = maxSubArray(nums)
print(result) // 6 (subarray [4, -1, 2, 1])`,
				KeyPoints: []string{
					"Time Complexity: O(n)",
					"Space Complexity: O(1)",
				},
				Notes: "Kadane's algorithm maintains the maximum sum ending at each position.",
			},
		},
	}
}
