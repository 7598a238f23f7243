package services

import "hairlab-backoffice/models"

type NavItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var (
	navDashboard    = NavItem{Key: "Dashboard", Label: "Dashboard", Path: "/dashboard"}
	navAppointments = NavItem{Key: "Appointments", Label: "Appointments", Path: "/appointment"}
	navBilling      = NavItem{Key: "Billing", Label: "Billing", Path: "/billing"}
	navServices     = NavItem{Key: "Services", Label: "Services", Path: "/addServices"}
	navProducts     = NavItem{Key: "Products", Label: "Products", Path: "/products"}
	navStaff        = NavItem{Key: "Staff", Label: "Staff", Path: "/staff"}
	navReports      = NavItem{Key: "Reports", Label: "Reports", Path: "/reports"}
	navCustomer     = NavItem{Key: "Customer", Label: "Customer", Path: "/customer"}
	navUsers        = NavItem{Key: "Users", Label: "Users", Path: "/users"}
)

// Navigation returns the sidebar entries for a role. Branch admins get the
// day-to-day screens; every other role also manages staff, users and sees
// the dashboard.
func Navigation(role string) []NavItem {
	if role == models.RoleAdmin {
		return []NavItem{navAppointments, navBilling, navServices, navProducts, navReports, navCustomer}
	}
	return []NavItem{
		navDashboard, navAppointments, navBilling, navServices, navProducts,
		navStaff, navReports, navCustomer, navUsers,
	}
}

// HomePath is where a user lands after signing in.
func HomePath(role string) string {
	return Navigation(role)[0].Path
}
