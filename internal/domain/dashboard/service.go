package dashboard

import "context"

// DashboardService assembles the pre-shaped dashboard views by combining
// record queries with the pure aggregation helpers.
type DashboardService interface {
	GetEmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboardResponse, error)
	GetManagerDashboard(ctx context.Context) (ManagerDashboardResponse, error)
}
