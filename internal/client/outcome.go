package client

import "time"

// SumPayload is the decoded body of a successful /sum response.
type SumPayload struct {
	// N is the parameter the service computed with
	N int64 `json:"n"`

	// SumOfPrimes is the computed sum of primes in [2, N]
	SumOfPrimes int64 `json:"sum_of_primes"`

	// ComputeTime is the server-reported computation time in seconds
	ComputeTime float64 `json:"time"`
}

// Outcome is the terminal result of one logical call, after any retries.
// Exactly one of Payload / Reason is populated, gated by Success: a
// succeeded outcome has a payload and no reason, a failed outcome the
// reverse.
type Outcome struct {
	// Payload is the decoded response body, present only on success
	Payload *SumPayload `json:"payload,omitempty"`

	// Elapsed is the wall-clock duration of the whole attempt sequence,
	// including inter-retry delays
	Elapsed time.Duration `json:"elapsed"`

	// Success reports whether any attempt within the retry budget succeeded
	Success bool `json:"success"`

	// Reason is a human-readable cause, present only on failure
	Reason string `json:"reason,omitempty"`
}
