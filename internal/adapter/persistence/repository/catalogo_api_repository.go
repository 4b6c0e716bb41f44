package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/infrastructure/httpclient"
	"dl_orcamentos/internal/usecase/interfaces"
)

// CatalogoAPIRepository searches customers and stock products.
type CatalogoAPIRepository struct {
	client *httpclient.Client
}

var _ interfaces.ICatalogoRepository = (*CatalogoAPIRepository)(nil)

func NewCatalogoAPIRepository(client *httpclient.Client) *CatalogoAPIRepository {
	return &CatalogoAPIRepository{client: client}
}

func (r *CatalogoAPIRepository) BuscarClientes(ctx context.Context, termo string) ([]entities.ClienteResumo, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/clientes/buscar/", url.Values{"termo": {termo}}, &raw); err != nil {
		return nil, err
	}
	out := []entities.ClienteResumo{}
	if isJSONArray(raw) {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode clientes: %w", err)
		}
		return out, nil
	}
	var resp struct {
		envelope
		Clientes []entities.ClienteResumo `json:"clientes"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("decode clientes: %w", err)
		}
	}
	if err := resp.failure(); err != nil {
		return nil, err
	}
	if resp.Clientes != nil {
		out = resp.Clientes
	}
	return out, nil
}

func (r *CatalogoAPIRepository) BuscarProdutos(ctx context.Context, termo string, limit int) ([]entities.ProdutoResumo, error) {
	q := url.Values{"termo": {termo}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/produtos-estoque/buscar/", q, &raw); err != nil {
		return nil, err
	}
	out := []entities.ProdutoResumo{}
	if isJSONArray(raw) {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode produtos: %w", err)
		}
		return out, nil
	}
	var resp struct {
		envelope
		Total    int                      `json:"total"`
		Produtos []entities.ProdutoResumo `json:"produtos"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("decode produtos: %w", err)
		}
	}
	if err := resp.failure(); err != nil {
		return nil, err
	}
	if resp.Produtos != nil {
		out = resp.Produtos
	}
	return out, nil
}
