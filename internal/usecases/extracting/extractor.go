// Package extracting achata a estrutura aninhada dos exports em registros de
// atividade e normaliza os três facets em um dataset canônico por mês.
// Transformações puras: nenhum acesso a disco ou rede aqui.
package extracting

import (
	sourcedomain "github.com/vfg2006/callcenter-analytics-api/infrastructure/source/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/pkg/utils"
)

// ExtractDailyActivity converte o mapa operador→atividade do 基本分析 em uma
// sequência achatada de ActivityRecord: um registro para o produto principal
// e um por produto secundário, sempre que call_count > 0. Entradas com
// call_count <= 0 (inclusive ausente) são descartadas — filtragem, não
// preenchimento com zero. A ordem de saída não é garantida.
func ExtractDailyActivity(staff map[string]sourcedomain.StaffActivity) []domain.ActivityRecord {
	records := make([]domain.ActivityRecord, 0, len(staff))

	for staffName, activity := range staff {
		branch := activity.Branch
		if branch == "" {
			branch = domain.BranchUnassigned
		}

		joinDate := utils.NormalizeExportTimestamp(activity.JoinDate)

		for _, day := range activity.DailyActivity {
			date := utils.NormalizeExportTimestamp(day.Date)

			if main := day.MainProduct; main != nil && main.CallCount > 0 {
				records = append(records, newRecord(date, staffName, branch, joinDate, *main, domain.ProductTypeMain))
			}

			for _, sub := range day.SubProducts {
				if sub.CallCount > 0 {
					records = append(records, newRecord(date, staffName, branch, joinDate, sub, domain.ProductTypeSub))
				}
			}
		}
	}

	return records
}

func newRecord(date, staffName, branch, joinDate string, p sourcedomain.ProductActivity, productType string) domain.ActivityRecord {
	return domain.ActivityRecord{
		Date:             date,
		StaffName:        staffName,
		Branch:           branch,
		Product:          p.Product,
		ProductType:      productType,
		CallCount:        p.CallCount,
		ConnectedCount:   p.ChargeConnected,
		AppointmentCount: p.GetAppointment,
		CallHours:        p.CallHours,
		JoinDate:         joinDate,
	}
}
