package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextEmployeeID(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		lastID string
		want   string
	}{
		{"increments existing sequence", 2024, "EMP-2024-0007", "EMP-2024-0008"},
		{"first of a new year", 2025, "", "EMP-2025-0001"},
		{"ignores prior years' sequences", 2026, "", "EMP-2026-0001"},
		{"grows past four digits", 2024, "EMP-2024-9999", "EMP-2024-10000"},
		{"unparseable sequence restarts", 2024, "EMP-2024-xyz", "EMP-2024-0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextEmployeeID(tt.year, tt.lastID))
		})
	}
}

func TestEmployeeIDPrefix(t *testing.T) {
	require.Equal(t, "EMP-2024-", EmployeeIDPrefix(2024))
}

func TestValidEmploymentType(t *testing.T) {
	require.True(t, ValidEmploymentType(EmploymentTypeFullTime))
	require.True(t, ValidEmploymentType(EmploymentTypeContract))
	require.False(t, ValidEmploymentType(EmploymentType("Freelance")))
	require.False(t, ValidEmploymentType(EmploymentType("")))
}

func TestValidEmploymentStatus(t *testing.T) {
	require.True(t, ValidEmploymentStatus(EmploymentStatusActive))
	require.True(t, ValidEmploymentStatus(EmploymentStatusTerminated))
	require.False(t, ValidEmploymentStatus(EmploymentStatus("Retired")))
}
