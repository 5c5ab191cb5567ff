package aggregating

import "errors"

var (
	// ErrMonthNotFound indica que a origem não tem dados para o mês pedido
	ErrMonthNotFound = errors.New("mês sem dados na origem")

	// ErrUnknownMetric indica um nome de métrica que nenhum rollup produz
	ErrUnknownMetric = errors.New("métrica desconhecida")

	// ErrUnknownDimension indica uma dimensão de agrupamento inexistente
	ErrUnknownDimension = errors.New("dimensão desconhecida")
)
