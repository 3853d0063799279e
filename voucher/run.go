package voucher

import (
	"context"
	"io"
)

// Run performs exactly one claim. Only input validation errors are returned; everything that
// happens after the request is sent is reported to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, opts ...Option) error {
	req, err := PromptForVoucher(in, out)
	if err != nil {
		return err
	}

	client := NewClient(cfg.VoucherClaimURL, cfg.Headers(), opts...)

	res, err := client.Claim(ctx, req)
	if err != nil {
		logger.WithError(err).Debug("claim finished with error")
	} else {
		logger.Debugf("claim %s", res.Outcome)
	}

	Report(out, res, err)
	return nil
}
