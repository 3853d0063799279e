package voucher

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	ht "github.com/ogen-go/ogen/http"
)

const DefaultTimeout = 10 * time.Second

const (
	headerDeviceID = "deviceId"
	headerTID      = "tid"
	headerToken    = "token"
)

const (
	statusSuccess        = 0
	statusAlreadyClaimed = 7

	defaultStatusMessage = "No status message provided."
	unknownAmount        = "Unknown"
)

type Client struct {
	http    ht.Client
	url     string
	headers HeaderSet
}

type Option func(*Client)

// WithClient replaces the default http.Client, which times out after DefaultTimeout.
func WithClient(c ht.Client) Option {
	return func(cl *Client) { cl.http = c }
}

func NewClient(url string, headers HeaderSet, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		url:     url,
		headers: headers,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Claim sends one PATCH with the voucher and interprets the body. A non-2xx status is returned
// as *HTTPError together with the interpreted result; transport failures come back as
// *NetworkError with a nil result.
func (c *Client) Claim(ctx context.Context, req VoucherRequest) (*ClaimResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.url, bytes.NewReader(encodeRequest(req)))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	// assigned directly to keep the header names uncanonicalized on the wire
	httpReq.Header[headerDeviceID] = []string{c.headers.DeviceID}
	httpReq.Header[headerTID] = []string{c.headers.TID}
	httpReq.Header[headerToken] = []string{c.headers.Token}

	logger.Debugf("PATCH %s", c.url)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{
			Err:         errors.Wrap(err, "read response body"),
			HasResponse: true,
			Body:        string(raw),
		}
	}

	logger.WithField("status", resp.StatusCode).Debugf("response body: %s", raw)

	res := interpret(raw)
	res.HTTPStatus = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return res, &HTTPError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			URL:        c.url,
			Body:       string(raw),
		}
	}
	return res, nil
}

func encodeRequest(req VoucherRequest) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("code")
		e.Str(req.Code)
		e.FieldStart("secret")
		e.Str(req.Secret)
	})
	return e.Bytes()
}

func interpret(raw []byte) *ClaimResult {
	res := &ClaimResult{Body: string(raw)}

	if !jx.Valid(raw) {
		res.Outcome = NonJSON
		return res
	}
	var body claimResponse
	if err := body.Decode(jx.DecodeBytes(raw)); err != nil {
		logger.WithError(err).Debug("response is not a JSON object")
		res.Outcome = NonJSON
		return res
	}

	res.StatusCode = body.StatusCode
	res.StatusMessage = body.StatusMessage.Or(defaultStatusMessage)

	code, ok := body.StatusCode.Get()
	switch {
	case ok && code == statusSuccess:
		res.Outcome = Succeeded
		res.Amount = body.Value.Or(unknownAmount)
	case ok && code == statusAlreadyClaimed:
		res.Outcome = AlreadyClaimed
	default:
		res.Outcome = Failed
	}
	return res
}

// claimResponse is {statusCode: int, statusMessage: string, data: {value: number}|null}.
// Fields of an unexpected type are treated as absent.
type claimResponse struct {
	StatusCode    OptInt
	StatusMessage OptString
	Value         OptString
}

func (r *claimResponse) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "statusCode":
			if d.Next() != jx.Number {
				return d.Skip()
			}
			n, err := d.Num()
			if err != nil {
				return errors.Wrap(err, "statusCode")
			}
			if v, err := n.Int64(); err == nil {
				r.StatusCode.SetTo(int(v))
			}
			return nil
		case "statusMessage":
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "statusMessage")
			}
			r.StatusMessage.SetTo(s)
			return nil
		case "data":
			if d.Next() != jx.Object {
				return d.Skip()
			}
			return d.Obj(r.decodeData)
		default:
			return d.Skip()
		}
	})
}

func (r *claimResponse) decodeData(d *jx.Decoder, key string) error {
	if key != "value" {
		return d.Skip()
	}
	switch d.Next() {
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return errors.Wrap(err, "data.value")
		}
		r.Value.SetTo(n.String())
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "data.value")
		}
		r.Value.SetTo(s)
	default:
		return d.Skip()
	}
	return nil
}
