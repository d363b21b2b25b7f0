package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	leaveType := leave.Type(req.Type)
	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		Date:       date,
		Type:       leaveType,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		IsPaid:     leaveType.IsPaid(),
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created.EmployeeName = &emp.Name
	return mapToResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapToResponse(l), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	leaves, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, mapToResponse(l))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return leave.ListLeaveResponse{
		Leaves:     responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string, approvedBy string) (leave.LeaveResponse, error) {
	return s.transition(ctx, id, leave.StatusApproved, approvedBy)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string, approvedBy string) (leave.LeaveResponse, error) {
	return s.transition(ctx, id, leave.StatusRejected, approvedBy)
}

// transition moves a pending request into a terminal status. A request that
// already left pending is never re-processed. The approver reference is only
// recorded on approval; a rejection carries no approver stamp.
func (s *LeaveServiceImpl) transition(ctx context.Context, id string, to leave.Status, actor string) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if l.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	l.Status = to
	if to == leave.StatusApproved {
		now := time.Now()
		l.ApprovedBy = &actor
		l.ApprovedAt = &now
	}
	l.IsPaid = l.Type.IsPaid()

	if err := s.LeaveRepository.Update(ctx, l); err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapToResponse(l), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.LeaveRepository.Delete(ctx, id)
}

func mapToResponse(l leave.Leave) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Date:         l.Date.Format("2006-01-02"),
		Type:         string(l.Type),
		Reason:       l.Reason,
		Status:       string(l.Status),
		IsPaid:       l.IsPaid,
		ApprovedBy:   l.ApprovedBy,
	}
	if l.ApprovedAt != nil {
		at := l.ApprovedAt.Format("2006-01-02 15:04:05")
		resp.ApprovedAt = &at
	}
	return resp
}
