// Package pdf renders a quote as a printable A4 document.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase/interfaces"
	"dl_orcamentos/pkg"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	margin   = 20.0
	fontName = "Helvetica"
)

// Empresa is the letterhead printed on every quote.
type Empresa struct {
	Nome     string
	CNPJ     string
	Endereco string
	Contato  string
	Site     string
	Slogan   string
}

var DefaultEmpresa = Empresa{
	Nome:     "DL AUTO PEÇAS",
	CNPJ:     "12.345.678/0001-90",
	Endereco: "Rua das Autopeças, 123 - São Paulo/SP",
	Contato:  "Tel: (11) 99999-9999 | Email: contato@dlautopecas.com.br",
	Site:     "www.dlautopecas.com.br",
	Slogan:   "DL Auto Peças - Sua parceira em autopeças de qualidade",
}

var condicoesComerciais = []string{
	"Forma de pagamento: PIX, Cartão de Crédito, Dinheiro",
	"Prazo de entrega: Conforme opção de frete escolhida",
	"Validade da proposta: 7 dias",
	"Garantia: Conforme especificação do fabricante",
}

type OrcamentoRenderer struct {
	empresa Empresa
}

var _ interfaces.IPDFRenderer = (*OrcamentoRenderer)(nil)

func NewOrcamentoRenderer(empresa Empresa) *OrcamentoRenderer {
	if empresa.Nome == "" {
		empresa = DefaultEmpresa
	}
	return &OrcamentoRenderer{empresa: empresa}
}

// tr converts to cp1252, the encoding of the core fonts. Runes outside it
// are replaced.
func (r *OrcamentoRenderer) tr(s string) string {
	out, err := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).String(s)
	if err != nil {
		return s
	}
	return out
}

func (r *OrcamentoRenderer) Render(o entities.Orcamento, emitidoEm time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, 35)
	doc.SetTitle("Orçamento "+o.Numero, true)
	doc.SetCreator(r.empresa.Nome, true)
	doc.SetCreationDate(emitidoEm)
	doc.AliasNbPages("")

	pageW, pageH := doc.GetPageSize()
	contentW := pageW - 2*margin

	doc.SetFooterFunc(func() {
		doc.SetY(pageH - 30)
		r.rule(doc, pageW)
		doc.SetFont(fontName, "", 9)
		doc.CellFormat(contentW, 5, r.tr(r.empresa.Slogan), "", 1, "L", false, 0, "")
		doc.CellFormat(contentW/2, 5, r.empresa.Site, "", 0, "L", false, 0, "")
		doc.CellFormat(contentW/2, 5, fmt.Sprintf("%s %d/{nb}", r.tr("Página"), doc.PageNo()), "", 1, "R", false, 0, "")
	})
	doc.AddPage()

	r.header(doc, pageW, contentW)
	r.dadosOrcamento(doc, pageW, contentW, o, emitidoEm)
	r.dadosCliente(doc, pageW, contentW, o)
	subtotal := r.itens(doc, pageW, o)
	r.resumo(doc, pageW, contentW, o, subtotal)
	r.condicoes(doc, contentW)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf %s: %w", o.Numero, err)
	}
	return buf.Bytes(), nil
}

func (r *OrcamentoRenderer) rule(doc *fpdf.Fpdf, pageW float64) {
	doc.SetDrawColor(200, 200, 200)
	y := doc.GetY()
	doc.Line(margin, y, pageW-margin, y)
	doc.Ln(4)
}

func (r *OrcamentoRenderer) section(doc *fpdf.Fpdf, contentW float64, title string) {
	doc.SetFont(fontName, "B", 13)
	doc.CellFormat(contentW, 8, r.tr(title), "", 1, "L", false, 0, "")
}

func (r *OrcamentoRenderer) line(doc *fpdf.Fpdf, contentW float64, size float64, text string) {
	doc.SetFont(fontName, "", size)
	doc.CellFormat(contentW, size*0.5, r.tr(text), "", 1, "L", false, 0, "")
}

func (r *OrcamentoRenderer) header(doc *fpdf.Fpdf, pageW, contentW float64) {
	doc.SetFont(fontName, "B", 20)
	doc.CellFormat(contentW, 10, r.tr(r.empresa.Nome), "", 1, "L", false, 0, "")
	r.line(doc, contentW, 10, "CNPJ: "+r.empresa.CNPJ)
	r.line(doc, contentW, 10, r.empresa.Endereco)
	r.line(doc, contentW, 10, r.empresa.Contato)
	doc.Ln(2)
	r.rule(doc, pageW)
}

func (r *OrcamentoRenderer) dadosOrcamento(doc *fpdf.Fpdf, pageW, contentW float64, o entities.Orcamento, emitidoEm time.Time) {
	doc.SetFont(fontName, "B", 16)
	doc.CellFormat(contentW, 9, r.tr("ORÇAMENTO: "+o.Numero), "", 1, "L", false, 0, "")
	r.line(doc, contentW, 11, "Data: "+formatData(o.DataCriacao, emitidoEm))
	if !o.Validade.IsZero() {
		r.line(doc, contentW, 11, "Validade: "+o.Validade.Format("02/01/2006"))
	}
	if o.VendedorNome != "" {
		r.line(doc, contentW, 11, "Vendedor: "+o.VendedorNome)
	}
	doc.Ln(2)
	r.rule(doc, pageW)
}

func (r *OrcamentoRenderer) dadosCliente(doc *fpdf.Fpdf, pageW, contentW float64, o entities.Orcamento) {
	r.section(doc, contentW, "DADOS DO CLIENTE")
	r.line(doc, contentW, 11, "Nome: "+o.ClienteNome)
	if o.ClienteID > 0 {
		r.line(doc, contentW, 11, "Código: "+strconv.FormatInt(o.ClienteID, 10))
	}
	doc.Ln(2)
	r.rule(doc, pageW)
}

var (
	itemHeaders = []string{"Item", "Descrição", "Qtd", "Valor Unit.", "Subtotal"}
	itemWidths  = []float64{14, 80, 16, 30, 30}
	itemAligns  = []string{"C", "L", "R", "R", "R"}
)

// itens draws the item table and returns the items subtotal. Without items
// the quote total stands in for it.
func (r *OrcamentoRenderer) itens(doc *fpdf.Fpdf, pageW float64, o entities.Orcamento) decimal.Decimal {
	r.section(doc, pageW-2*margin, "ITENS DO ORÇAMENTO")

	doc.SetFont(fontName, "B", 10)
	doc.SetFillColor(217, 225, 242)
	for i, h := range itemHeaders {
		doc.CellFormat(itemWidths[i], 7, r.tr(h), "B", 0, itemAligns[i], true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont(fontName, "", 10)
	if len(o.Itens) == 0 {
		doc.CellFormat(pageW-2*margin, 7, r.tr("Itens não detalhados"), "", 1, "L", false, 0, "")
		doc.Ln(2)
		r.rule(doc, pageW)
		return decimal.NewFromFloat(o.ValorTotal)
	}

	subtotal := decimal.Zero
	for i, it := range o.Itens {
		valor := decimal.NewFromFloat(it.Quantidade).Mul(decimal.NewFromFloat(it.PrecoUnitario)).Round(2)
		subtotal = subtotal.Add(valor)
		cols := []string{
			strconv.Itoa(i + 1),
			truncate(doc, r.tr(it.NomeProduto), itemWidths[1]-2),
			decimal.NewFromFloat(it.Quantidade).String(),
			r.tr(pkg.FormatBRLFloat(it.PrecoUnitario)),
			r.tr(pkg.FormatBRL(valor)),
		}
		for c, txt := range cols {
			doc.CellFormat(itemWidths[c], 6, txt, "", 0, itemAligns[c], false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(2)
	r.rule(doc, pageW)
	return subtotal
}

func (r *OrcamentoRenderer) resumo(doc *fpdf.Fpdf, pageW, contentW float64, o entities.Orcamento, subtotal decimal.Decimal) {
	r.section(doc, contentW, "RESUMO FINANCEIRO")

	frete := decimal.Zero
	if o.FreteValor != nil {
		frete = decimal.NewFromFloat(*o.FreteValor)
	}
	total := subtotal.Add(frete)

	labelW := contentW - 45
	row := func(style string, size float64, label, valor string) {
		doc.SetFont(fontName, style, size)
		doc.CellFormat(labelW, 7, r.tr(label), "", 0, "R", false, 0, "")
		doc.CellFormat(45, 7, r.tr(valor), "", 1, "R", false, 0, "")
	}
	row("", 11, "Subtotal:", pkg.FormatBRL(subtotal))
	freteLabel := "Frete:"
	if o.FreteTransportadora != nil {
		freteLabel = "Frete (" + *o.FreteTransportadora
		if o.FretePrazoEntrega != nil {
			freteLabel += fmt.Sprintf(", %d dias", *o.FretePrazoEntrega)
		}
		freteLabel += "):"
	}
	row("", 11, freteLabel, pkg.FormatBRL(frete))
	row("B", 14, "TOTAL:", pkg.FormatBRL(total))
	doc.Ln(4)
}

func (r *OrcamentoRenderer) condicoes(doc *fpdf.Fpdf, contentW float64) {
	r.section(doc, contentW, "CONDIÇÕES COMERCIAIS")
	doc.SetFont(fontName, "", 10)
	for _, c := range condicoesComerciais {
		doc.MultiCell(contentW, 5, r.tr("- "+c), "", "L", false)
	}
}

func formatData(ts entities.Timestamp, fallback time.Time) string {
	if ts.IsZero() {
		return fallback.Format("02/01/2006")
	}
	return ts.Format("02/01/2006")
}

func truncate(doc *fpdf.Fpdf, s string, width float64) string {
	if doc.GetStringWidth(s) <= width {
		return s
	}
	// s is already cp1252, one byte per glyph
	b := []byte(s)
	for len(b) > 0 && doc.GetStringWidth(string(b)+"...") > width {
		b = b[:len(b)-1]
	}
	return string(b) + "..."
}
