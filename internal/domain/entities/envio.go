package entities

const MetodoEnvioWhatsApp = "whatsapp"

// EnvioOrcamento is the body of the send-notification endpoint.
type EnvioOrcamento struct {
	Metodo                string `json:"metodo"`
	NumeroWhatsApp        string `json:"numero_whatsapp,omitempty"`
	MensagemPersonalizada string `json:"mensagem_personalizada,omitempty"`
}

// FiltroOrcamentos scopes the remote listing.
type FiltroOrcamentos struct {
	VendedorID int64
	Status     OrcamentoStatus
}
