package voucher

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgHiGreen)
	warningColor = color.New(color.FgHiYellow)
	failureColor = color.New(color.FgHiRed)
)

// Report prints the claim outcome and then, if present, the HTTP or network error. A JSON body
// with statusCode 0 and an HTTP error status prints both the success line and the error.
func Report(out io.Writer, res *ClaimResult, err error) {
	if res != nil {
		reportResult(out, res)
	}
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(out, "Voucher claim failed due to a network or HTTP error: %v\n", err)
	if body, ok := responseText(err); ok {
		_, _ = fmt.Fprintf(out, "Response: %s\n", body)
	}
}

func reportResult(out io.Writer, res *ClaimResult) {
	switch res.Outcome {
	case NonJSON:
		_, _ = fmt.Fprintf(out, "Received non-JSON response: %s\n", res.Body)
	case Succeeded:
		_, _ = successColor.Fprintf(out, "Voucher claim successful! Amount credited: ₹%s\n", res.Amount)
	case AlreadyClaimed:
		_, _ = warningColor.Fprintf(out, "Voucher already claimed: %s\n", res.StatusMessage)
	default:
		code := "unknown"
		if v, ok := res.StatusCode.Get(); ok {
			code = fmt.Sprint(v)
		}
		_, _ = failureColor.Fprintf(out, "Voucher claim failed: %s (statusCode: %s)\n", res.StatusMessage, code)
	}
}
