package entities

// OpcaoFrete is a carrier quote returned by the freight calculation.
// It is ephemeral until applied to an Orcamento.
type OpcaoFrete struct {
	Transportadora string  `json:"transportadora"`
	Servico        string  `json:"servico"`
	Prazo          int     `json:"prazo"`
	Valor          float64 `json:"valor"`
	CodigoServico  string  `json:"codigo_servico,omitempty"`
}

type CalculoFreteRequest struct {
	CEPDestino string  `json:"cep_destino"`
	ValorTotal float64 `json:"valor_total"`
}

type AplicarFreteRequest struct {
	OpcaoFrete
	CEPDestino string `json:"cep_destino,omitempty"`
}
