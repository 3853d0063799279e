package voucher

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
)

type VoucherRequest struct {
	Code   string
	Secret string
}

// PromptForVoucher asks for the voucher code and its pin. Nothing is retried: an empty answer
// ends the claim with ErrValidation.
func PromptForVoucher(in io.Reader, out io.Writer) (VoucherRequest, error) {
	r := bufio.NewReader(in)

	code, err := prompt(r, out, "Enter the voucher code: ")
	if err != nil {
		return VoucherRequest{}, err
	}
	secret, err := prompt(r, out, "Enter the voucher pin/secret: ")
	if err != nil {
		return VoucherRequest{}, err
	}

	if code == "" || secret == "" {
		return VoucherRequest{}, errors.Wrap(ErrValidation, "both voucher code and pin/secret are required")
	}
	return VoucherRequest{Code: code, Secret: secret}, nil
}

func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	if _, err := fmt.Fprint(out, label); err != nil {
		return "", errors.Wrap(err, "write prompt")
	}
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimSpace(line), nil
}
