package models

import "encoding/json"

type ReportSummary map[string]interface{}

type TransactionPage struct {
	Transactions []json.RawMessage `json:"transactions"`
	Pagination   struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

// DashboardData mirrors GET /api/dashboard. Missing metrics decode as zero and
// missing charts are normalised to empty slices.
type DashboardData struct {
	TotalSales       float64         `json:"totalSales"`
	NewCustomers     int             `json:"newCustomers"`
	ServiceCost      float64         `json:"serviceCost"`
	EmployeeServices int             `json:"employeeServices"`
	Charts           DashboardCharts `json:"charts"`
}

type DashboardCharts struct {
	SalesVsExpenses     []json.RawMessage `json:"salesVsExpenses"`
	CustomerGrowth      []json.RawMessage `json:"customerGrowth"`
	EmployeeSales       []json.RawMessage `json:"employeeSales"`
	ServiceDistribution []json.RawMessage `json:"serviceDistribution"`
	TopProducts         []json.RawMessage `json:"topProducts"`
	TopCustomers        []json.RawMessage `json:"topCustomers"`
}

func (c *DashboardCharts) Normalize() {
	for _, s := range []*[]json.RawMessage{
		&c.SalesVsExpenses, &c.CustomerGrowth, &c.EmployeeSales,
		&c.ServiceDistribution, &c.TopProducts, &c.TopCustomers,
	} {
		if *s == nil {
			*s = []json.RawMessage{}
		}
	}
}
