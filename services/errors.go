package services

import "fmt"

// UpstreamError reports a non-2xx answer from an external service,
// keeping the upstream status so handlers can forward it.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Detail)
}
