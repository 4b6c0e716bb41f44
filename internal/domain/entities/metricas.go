package entities

// Metricas is the dashboard summary served by /orcamentos/estatisticas.
type Metricas struct {
	TotalOrcamentos     int     `json:"totalOrcamentos"`
	OrcamentosPendentes int     `json:"orcamentosPendentes"`
	OrcamentosAprovados int     `json:"orcamentosAprovados"`
	ValorTotalPotencial float64 `json:"valorTotalPotencial"`
	TaxaConversaoGeral  float64 `json:"taxaConversaoGeral"`
	OrcamentosExpirados int     `json:"orcamentosExpirados"`
	ValorConvertido     float64 `json:"valorConvertido"`
}
