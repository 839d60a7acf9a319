package models

// Cliente do pet shop, com um pet vinculado.
// As tags JSON preservam o formato gravado na chave "@Clientes".
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
	PetName string `json:"pet"`
}
