package entities

// ClienteResumo is a customer hit from /clientes/buscar/.
type ClienteResumo struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email,omitempty"`
	CPFCNPJ  string `json:"cpf_cnpj,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	UF       string `json:"uf,omitempty"`
}

// ProdutoResumo is a stock product hit from /produtos-estoque/buscar/.
type ProdutoResumo struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Nome        string  `json:"nome"`
	Preco       float64 `json:"preco"`
	Quantidade  float64 `json:"quantidade"`
	Categoria   string  `json:"categoria,omitempty"`
	Localizacao string  `json:"localizacao,omitempty"`
}
