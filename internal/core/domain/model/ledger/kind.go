package ledger

import (
	"fmt"

	"burgercounter/internal/pkg/errs"
)

// Kind classifies a cash movement and carries its direction.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Entry is money into the register: a sale.
	Entry

	// Exit is money out of the register: a payout or purchase.
	Exit

	// Credit is a sale on trust, owed but not yet collected.
	Credit
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Entry:  "entry",
		Exit:   "exit",
		Credit: "credit",
	}
}

// ParseKind converts a wire string into a Kind, rejecting unknown values.
func ParseKind(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind",
		fmt.Errorf("%q is not a valid movement kind", s),
	)
}

// Validate checks if the Kind is one of the defined kinds.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind",
			fmt.Errorf("%d is not a valid movement kind", k),
		)
	}
	return nil
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
