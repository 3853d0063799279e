package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_Error(t *testing.T) {
	tests := []struct {
		err  HTTPError
		want string
	}{
		{HTTPError{Status: 404, StatusText: "Not Found", URL: "http://x/claim"}, "404 Client Error: Not Found for url: http://x/claim"},
		{HTTPError{Status: 503, StatusText: "Service Unavailable", URL: "http://x/claim"}, "503 Server Error: Service Unavailable for url: http://x/claim"},
		{HTTPError{Status: 599, URL: "http://x/claim"}, "599 Server Error: Unknown for url: http://x/claim"},
		{HTTPError{Status: 499, URL: "http://x/claim"}, "499 Client Error: Unknown for url: http://x/claim"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}
