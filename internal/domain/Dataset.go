package domain

// MonthDataset é o dataset canônico de um mês após a normalização na borda do
// adaptador de origem. O pipeline só consome este formato — nunca decide entre
// nomes de campo alternativos do export (isso é resolvido na extração).
// Todo o conteúdo é recriado a cada carga; nada aqui é mutado depois de pronto.
type MonthDataset struct {
	Month MonthKey `json:"month"`

	Activities []ActivityRecord `json:"activities"`

	// Números do TAAAN por valor de dimensão. Chave ausente ⇒ sem dados de
	// negociação para aquele valor (não é erro).
	StaffDeals   map[string]DealSummary `json:"staff_deals"`
	BranchDeals  map[string]DealSummary `json:"branch_deals"`
	ProductDeals map[string]DealSummary `json:"product_deals"`

	KeyMetrics          *DealKeyMetrics `json:"key_metrics,omitempty"`
	DealStatusBreakdown map[string]int  `json:"deal_status_breakdown,omitempty"`

	Retention *RetentionReport `json:"retention,omitempty"`
}

// HasActivity informa se o mês tem alguma atividade extraída
func (d *MonthDataset) HasActivity() bool {
	return d != nil && len(d.Activities) > 0
}
