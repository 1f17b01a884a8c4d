package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepartmentListCountsActiveEmployeesOnly(t *testing.T) {
	// The status restriction must live in the join condition, not the WHERE
	// clause: filtering in WHERE would drop departments with no active
	// employees instead of showing them with a zero count.
	require.Contains(t, departmentListQuery,
		"LEFT JOIN employees e ON d.id = e.department_id AND e.employment_status = 'Active'")
	require.NotContains(t, departmentListQuery, "WHERE")
}

func TestDepartmentListOrderedByName(t *testing.T) {
	require.Contains(t, departmentListQuery, "ORDER BY d.name")
}
