package domain

// Tipos de produto de uma atividade diária. Os exports distinguem o produto
// principal do operador dos produtos secundários reportados no mesmo dia.
const (
	ProductTypeMain = "main"
	ProductTypeSub  = "sub"
)

// BranchUnassigned é o rótulo usado quando o export não traz o branch do
// operador. O literal precisa casar com as chaves de 月次サマリー, então não é
// traduzido.
const BranchUnassigned = "未設定"

// ActivityRecord é uma linha achatada de atividade: um operador, um dia, um
// produto. Só é materializado quando call_count > 0 — dias sem ligação são
// filtrados na extração, não zerados.
type ActivityRecord struct {
	// Date é a data de calendário em JST no formato YYYY-MM-DD. Quando o
	// timestamp do export não pôde ser interpretado, carrega o valor bruto.
	Date             string  `json:"date"`
	StaffName        string  `json:"staff_name"`
	Branch           string  `json:"branch"`
	Product          string  `json:"product"`
	ProductType      string  `json:"product_type"`
	CallCount        int     `json:"call_count"`
	ConnectedCount   int     `json:"connected_count"`
	AppointmentCount int     `json:"appointment_count"`
	CallHours        float64 `json:"call_hours"`
	// JoinDate no formato YYYY-MM-DD; vazio quando desconhecida.
	JoinDate string `json:"join_date,omitempty"`
}
