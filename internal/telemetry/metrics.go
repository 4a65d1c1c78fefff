package telemetry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var defaultRegistry = newRegistry()

type registry struct {
	mu                   sync.Mutex
	toolCalls            map[string]map[string]int64
	toolDurationBuckets  map[string][]int64
	apiCalls             map[string]map[int]int64
	authFailures         int64
	journalWriteFailures int64
}

func newRegistry() *registry {
	return &registry{
		toolCalls:           make(map[string]map[string]int64),
		toolDurationBuckets: make(map[string][]int64),
		apiCalls:            make(map[string]map[int]int64),
	}
}

func IncToolCall(toolName, status string) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	if _, ok := defaultRegistry.toolCalls[toolName]; !ok {
		defaultRegistry.toolCalls[toolName] = make(map[string]int64)
	}
	defaultRegistry.toolCalls[toolName][status]++
}

func ObserveToolDuration(toolName string, d time.Duration) {
	buckets := []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60}
	sec := d.Seconds()

	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	if _, ok := defaultRegistry.toolDurationBuckets[toolName]; !ok {
		defaultRegistry.toolDurationBuckets[toolName] = make([]int64, len(buckets)+1)
	}
	idx := len(buckets)
	for i, b := range buckets {
		if sec <= b {
			idx = i
			break
		}
	}
	defaultRegistry.toolDurationBuckets[toolName][idx]++
}

// IncAPICall counts one outbound call to the reservation API. statusCode 0
// means the request never produced an HTTP response.
func IncAPICall(endpoint string, statusCode int) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	if _, ok := defaultRegistry.apiCalls[endpoint]; !ok {
		defaultRegistry.apiCalls[endpoint] = make(map[int]int64)
	}
	defaultRegistry.apiCalls[endpoint][statusCode]++
}

func IncAuthFailure() {
	defaultRegistry.mu.Lock()
	defaultRegistry.authFailures++
	defaultRegistry.mu.Unlock()
}

func IncJournalWriteFailure() {
	defaultRegistry.mu.Lock()
	defaultRegistry.journalWriteFailures++
	defaultRegistry.mu.Unlock()
}

func RenderPrometheus() string {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()

	var sb strings.Builder

	sb.WriteString("# TYPE bookhub_tool_calls_total counter\n")
	toolNames := sortedKeys(defaultRegistry.toolCalls)
	for _, tool := range toolNames {
		statuses := sortedKeys(defaultRegistry.toolCalls[tool])
		for _, status := range statuses {
			sb.WriteString(fmt.Sprintf("bookhub_tool_calls_total{tool=\"%s\",status=\"%s\"} %d\n", tool, status, defaultRegistry.toolCalls[tool][status]))
		}
	}

	sb.WriteString("# TYPE bookhub_tool_duration_seconds_bucket counter\n")
	bucketLabels := []string{"0.1", "0.5", "1", "2", "5", "10", "30", "60", "+Inf"}
	for _, tool := range sortedKeys(defaultRegistry.toolDurationBuckets) {
		counts := defaultRegistry.toolDurationBuckets[tool]
		for i, v := range counts {
			sb.WriteString(fmt.Sprintf("bookhub_tool_duration_seconds_bucket{tool=\"%s\",le=\"%s\"} %d\n", tool, bucketLabels[i], v))
		}
	}

	sb.WriteString("# TYPE bookhub_api_calls_total counter\n")
	for _, endpoint := range sortedKeys(defaultRegistry.apiCalls) {
		statusCodes := make([]int, 0, len(defaultRegistry.apiCalls[endpoint]))
		for sc := range defaultRegistry.apiCalls[endpoint] {
			statusCodes = append(statusCodes, sc)
		}
		sort.Ints(statusCodes)
		for _, sc := range statusCodes {
			sb.WriteString(fmt.Sprintf("bookhub_api_calls_total{endpoint=\"%s\",status_code=\"%d\"} %d\n", endpoint, sc, defaultRegistry.apiCalls[endpoint][sc]))
		}
	}

	sb.WriteString("# TYPE bookhub_auth_failures_total counter\n")
	sb.WriteString(fmt.Sprintf("bookhub_auth_failures_total %d\n", defaultRegistry.authFailures))

	sb.WriteString("# TYPE bookhub_journal_write_failures_total counter\n")
	sb.WriteString(fmt.Sprintf("bookhub_journal_write_failures_total %d\n", defaultRegistry.journalWriteFailures))

	return sb.String()
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
