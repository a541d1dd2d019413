// Package result defines the outcome reported to whatever invoked a reconciliation
// (HTTP request, broker consumer, task runner). An outcome is either a success or an
// abort with a human-readable message; it carries no partial state.
package result

import "encoding/json"

// Kind tags an Outcome.
type Kind int

const (
	kindUnknown Kind = iota
	KindSuccess
	KindAbort
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindAbort:
		return "abort"
	case kindUnknown:
	}
	return "unknown"
}

// Outcome is the result of reconciling one notification.
type Outcome struct {
	kind    Kind
	message string
}

// Success reports that the unit of work is complete.
func Success(message string) Outcome {
	return Outcome{kind: KindSuccess, message: message}
}

// Abort reports that the unit of work failed. Retrying is up to the caller.
func Abort(message string) Outcome {
	return Outcome{kind: KindAbort, message: message}
}

func (o Outcome) Kind() Kind {
	return o.kind
}

func (o Outcome) Message() string {
	return o.message
}

func (o Outcome) IsSuccess() bool {
	return o.kind == KindSuccess
}

func (o Outcome) IsAbort() bool {
	return o.kind == KindAbort
}

func (o Outcome) String() string {
	return o.kind.String() + ": " + o.message
}

// MarshalJSON encodes the outcome as {"result": "success"|"abort", "message": ...}.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Result  string `json:"result"`
		Message string `json:"message"`
	}{
		Result:  o.kind.String(),
		Message: o.message,
	})
}
