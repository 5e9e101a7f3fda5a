//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks each expected header value; an empty value asserts the
// header is absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		if want == "" {
			assert.Empty(t, w.Header().Values(name), "header %s should be absent", name)
			continue
		}
		assert.Equal(t, want, w.Header().Get(name), "header %s mismatch", name)
	}
}
