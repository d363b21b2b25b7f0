package leave

import "time"

type Type string

const (
	TypeSick      Type = "SL"
	TypeCasual    Type = "CL"
	TypePrivilege Type = "PL"
	TypeMaternity Type = "ML"
	TypeUnpaid    Type = "LWP"
	TypeWedding   Type = "WL"
)

// AllTypes lists every leave type in a stable order. Monthly summaries carry
// all six keys even when a count is zero.
var AllTypes = []Type{TypeSick, TypeCasual, TypePrivilege, TypeMaternity, TypeUnpaid, TypeWedding}

// IsPaid reports whether the type is salaried. Only leave without pay
// reduces salary.
func (t Type) IsPaid() bool {
	return t != TypeUnpaid
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave is one requested day off. (employee, date, type) is unique.
// IsPaid is recomputed from Type on every save. ApprovedBy and ApprovedAt are
// stamped once, on the pending -> approved transition; approved and rejected
// are terminal.
type Leave struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       Type
	Reason     string
	Status     Status
	IsPaid     bool
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName *string
}
