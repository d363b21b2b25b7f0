package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// Approve moves a pending request to approved and stamps the approver and
	// approval time. Approved and rejected are terminal; a reversal is a new
	// request, not a transition.
	Approve(ctx context.Context, id string, approvedBy string) (LeaveResponse, error)
	Reject(ctx context.Context, id string, approvedBy string) (LeaveResponse, error)

	Delete(ctx context.Context, id string) error
}
