package employee

import (
	"context"
	"testing"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionDenialReason(t *testing.T) {
	tests := []struct {
		name       string
		isActive   bool
		isRepeated bool
		hasRecords bool
		want       string
	}{
		{
			name:     "inactive without records is deletable",
			isActive: false,
		},
		{
			name:       "repeated without records is deletable",
			isActive:   true,
			isRepeated: true,
		},
		{
			name:     "active blocks even without records",
			isActive: true,
			want:     "cannot delete active employee",
		},
		{
			name:       "active with records names both conditions",
			isActive:   true,
			hasRecords: true,
			want:       "cannot delete active employee with attendance or leave records",
		},
		{
			name:       "inactive with records still blocked",
			isActive:   false,
			hasRecords: true,
			want:       "cannot delete employee with attendance or leave records",
		},
		{
			name:       "repeated with records still blocked",
			isActive:   true,
			isRepeated: true,
			hasRecords: true,
			want:       "cannot delete employee with attendance or leave records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := employee.Employee{IsActive: tt.isActive, IsRepeated: tt.isRepeated}
			assert.Equal(t, tt.want, deletionDenialReason(emp, tt.hasRecords))
		})
	}
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	emp        employee.Employee
	hasRecords bool
	inTx       bool
	deleted    bool
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return r.emp, nil
}

func (r *stubEmployeeRepo) HasRecords(_ context.Context, _ string) (bool, bool, error) {
	return r.hasRecords, false, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, _ string) error {
	r.deleted = r.inTx
	return nil
}

func (r *stubEmployeeRepo) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.inTx = true
	defer func() { r.inTx = false }()
	return fn(ctx)
}

func TestDelete_RunsGuardAndDeleteInOneTransaction(t *testing.T) {
	repo := &stubEmployeeRepo{emp: employee.Employee{ID: "emp-1", IsActive: false}}
	svc := NewEmployeeService(repo)

	err := svc.Delete(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.True(t, repo.deleted, "delete must happen inside the transaction")
}

func TestDelete_DeniedInsideTransactionLeavesRow(t *testing.T) {
	repo := &stubEmployeeRepo{
		emp:        employee.Employee{ID: "emp-1", IsActive: false},
		hasRecords: true,
	}
	svc := NewEmployeeService(repo)

	err := svc.Delete(context.Background(), "emp-1")

	var denied *employee.DeletionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "cannot delete employee with attendance or leave records", denied.Reason)
	assert.False(t, repo.deleted)
}
