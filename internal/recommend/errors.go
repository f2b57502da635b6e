package recommend

import "fmt"

// Kind classifies provider failures so the orchestrator can pick a
// user-facing message without string matching.
type Kind string

const (
	// KindAuth covers credential and permission failures. Fatal.
	KindAuth Kind = "auth"
	// KindRateLimited covers quota exhaustion. Fatal for this request.
	KindRateLimited Kind = "rate_limited"
	// KindNetwork covers transport failures and provider outages. Transient.
	KindNetwork Kind = "network"
	// KindBadResponse covers responses the client could not interpret.
	KindBadResponse Kind = "bad_response"
)

// ProviderError wraps any remote recommendation failure.
type ProviderError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("recommendation provider %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Retryable reports whether a retry could plausibly succeed. No retry policy
// is implemented here; callers may use this to shape messaging.
func (e *ProviderError) Retryable() bool {
	return e.Kind == KindNetwork
}
