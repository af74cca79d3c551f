package source

import (
	"fmt"
	"strings"

	"deliveryscheduler/internal/pkg/errs"
)

// Kind tags the origin table of a deliverable. The string values are the
// persisted source_kind column values.
type Kind string

const (
	Standard          Kind = "regular"
	CustomFabrication Kind = "custom_order"
	CustomDesign      Kind = "custom_design"
)

// Kinds lists every supported source kind in a stable order.
func Kinds() []Kind {
	return []Kind{Standard, CustomFabrication, CustomDesign}
}

// ParseKind accepts the persisted values case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	switch k {
	case Standard, CustomFabrication, CustomDesign:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("source kind", fmt.Errorf("%q is not a known source kind", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}

// HasDateMirror reports whether the origin table stores a scheduled-date mirror column.
func (k Kind) HasDateMirror() bool {
	return k == CustomFabrication || k == CustomDesign
}

// Ref identifies one row of a source table. IDs are opaque and only unique within a Kind.
type Ref struct {
	Kind Kind
	ID   string
}

func NewRef(kind Kind, id string) (Ref, error) {
	if err := kind.Validate(); err != nil {
		return Ref{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Ref{}, errs.NewValueIsRequiredError("source id")
	}
	return Ref{Kind: kind, ID: id}, nil
}

func (r Ref) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if r.ID == "" {
		return errs.NewValueIsRequiredError("source id")
	}
	return nil
}

func (r Ref) String() string {
	return string(r.Kind) + "/" + r.ID
}
