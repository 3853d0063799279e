package voucher

type Outcome int

const (
	Failed Outcome = iota
	Succeeded
	AlreadyClaimed
	NonJSON
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case AlreadyClaimed:
		return "already claimed"
	case NonJSON:
		return "non-JSON response"
	}
	return "failed"
}

type ClaimResult struct {
	Outcome       Outcome
	HTTPStatus    int
	StatusCode    OptInt
	StatusMessage string
	// Amount is data.value as it appeared on the wire, or "Unknown".
	Amount string
	Body   string
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

func NewOptInt(v int) OptInt {
	return OptInt{Value: v, Set: true}
}

func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

func (o OptString) Or(d string) string {
	if o.Set {
		return o.Value
	}
	return d
}
