package leave

import (
	"context"
	"testing"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveRepo struct {
	leave.LeaveRepository
	byID    map[string]leave.Leave
	updated *leave.Leave
}

func (r *stubLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	l, ok := r.byID[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (r *stubLeaveRepo) Update(_ context.Context, l leave.Leave) error {
	r.updated = &l
	r.byID[l.ID] = l
	return nil
}

func (r *stubLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = "leave-1"
	r.byID[l.ID] = l
	return l, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, Name: "Amira Khan"}, nil
}

func newService(rows ...leave.Leave) (*stubLeaveRepo, leave.LeaveService) {
	repo := &stubLeaveRepo{byID: make(map[string]leave.Leave)}
	for _, l := range rows {
		repo.byID[l.ID] = l
	}
	return repo, NewLeaveService(repo, &stubEmployeeRepo{})
}

func TestCreate_UnpaidTypeIsUnpaid(t *testing.T) {
	_, svc := newService()

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Date:       time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		Type:       "LWP",
	})

	require.NoError(t, err)
	assert.False(t, resp.IsPaid)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestCreate_PaidTypes(t *testing.T) {
	for _, lt := range []string{"SL", "CL", "PL", "ML", "WL"} {
		t.Run(lt, func(t *testing.T) {
			_, svc := newService()

			resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
				EmployeeID: "emp-1",
				Date:       time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
				Type:       lt,
			})

			require.NoError(t, err)
			assert.True(t, resp.IsPaid)
		})
	}
}

func TestApprove_StampsApprover(t *testing.T) {
	repo, svc := newService(leave.Leave{
		ID:     "leave-1",
		Type:   leave.TypeSick,
		Status: leave.StatusPending,
	})

	resp, err := svc.Approve(context.Background(), "leave-1", "hr.manager")

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "hr.manager", *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)
	require.NotNil(t, repo.updated)
	assert.Equal(t, leave.StatusApproved, repo.updated.Status)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, status := range []leave.Status{leave.StatusApproved, leave.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			_, svc := newService(leave.Leave{ID: "leave-1", Type: leave.TypeCasual, Status: status})

			_, err := svc.Approve(context.Background(), "leave-1", "hr.manager")
			assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

			_, err = svc.Reject(context.Background(), "leave-1", "hr.manager")
			assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
		})
	}
}

func TestReject_DoesNotStampApprover(t *testing.T) {
	repo, svc := newService(leave.Leave{ID: "leave-1", Type: leave.TypeUnpaid, Status: leave.StatusPending})

	resp, err := svc.Reject(context.Background(), "leave-1", "hr.manager")

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	assert.Nil(t, resp.ApprovedBy)
	assert.Nil(t, resp.ApprovedAt)
	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.updated.ApprovedBy)
	assert.Nil(t, repo.updated.ApprovedAt)
}
