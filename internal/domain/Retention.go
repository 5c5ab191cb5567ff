package domain

// RetentionReport é o conteúdo normalizado do facet 定着率分析 de um mês.
// É repassado como veio do export (a fonte da verdade é o sistema upstream);
// o pipeline não recalcula taxas de retenção.
type RetentionReport struct {
	MonthlyRates       map[string]MonthlyRetention `json:"monthly_retention_rates"`
	StaffRetention     map[string]StaffRetention   `json:"staff_retention,omitempty"`
	BranchRetention    map[string]BranchRetention  `json:"branch_retention,omitempty"`
	JoinMonthRetention map[string]CohortRetention  `json:"join_month_retention,omitempty"`
}

// MonthlyRetention é a taxa de retenção de um mês (0–100)
type MonthlyRetention struct {
	ActiveStaff   int     `json:"active_staff"`
	TotalStaff    int     `json:"total_staff"`
	RetentionRate float64 `json:"retention_rate"`
}

// StaffRetention é o estado de retenção de um operador individual
type StaffRetention struct {
	Branch        string  `json:"branch"`
	JoinDate      string  `json:"join_date,omitempty"`
	IsActive      bool    `json:"is_active"`
	RetentionRate float64 `json:"retention_rate"`
}

// BranchRetention é a retenção agregada por branch
type BranchRetention struct {
	ActiveStaff   int     `json:"active_staff"`
	TotalStaff    int     `json:"total_staff"`
	RetentionRate float64 `json:"retention_rate"`
}

// CohortRetention é a retenção por coorte de mês de entrada
type CohortRetention struct {
	ActiveStaff   int     `json:"active_staff"`
	TotalStaff    int     `json:"total_staff"`
	RetentionRate float64 `json:"retention_rate"`
}
