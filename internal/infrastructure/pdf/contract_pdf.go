// Package pdf genera el comprobante de contrato de servicio en A4.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: HareWare + Nº contrato + fecha de emisión          │
//	│  CONTRATANTE: razón social, nombre fantasía, CNPJ, contacto │
//	│  TABLA: plan | usuarios | vigencia | inicio | término       │
//	│  SITUACIÓN: pago / último pago / estado                     │
//	│  FOOTER: QR de referencia + leyenda                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/pkg/cnpj"
)

var _ ports.ContractPDFGenerator = (*MarotoContractPDF)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006"

// MarotoContractPDF implementa ports.ContractPDFGenerator con Maroto v2.
type MarotoContractPDF struct {
	// Now fecha de emisión; nil usa time.Now.
	Now func() time.Time
}

// NewMarotoContractPDF construye el generador.
func NewMarotoContractPDF() *MarotoContractPDF { return &MarotoContractPDF{} }

// GenerateContractPDF genera el PDF y devuelve sus bytes.
func (g *MarotoContractPDF) GenerateContractPDF(contract *entity.Contract, company *entity.Company) ([]byte, error) {
	if contract == nil || company == nil {
		return nil, fmt.Errorf("pdf: contrato y empresa son obligatorios")
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Contrato %d", contract.ID), true).
		WithAuthor("HareWare", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(contract, now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(termsHeaderRow(), termsRow(contract))
	m.AddRows(line.NewRow(4))
	m.AddRows(statusRow(contract))
	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(contract, company))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(c *entity.Contract, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("HareWare", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Plataforma de catálogo e campanhas", props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("CONTRATO DE SERVIÇO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Nº %06d", c.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido em "+issued.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func partyRow(company *entity.Company) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CONTRATANTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(company.LegalName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("%s   |   CNPJ: %s", nonEmpty(company.TradeName, "-"), cnpj.Format(company.CNPJ)),
				props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(fmt.Sprintf("Endereço: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "-"), nonEmpty(company.Phone, "-"), nonEmpty(company.Email, "-"),
			), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

var termColumns = []struct {
	label string
	size  int
}{
	{"Plano", 2}, {"Usuários", 2}, {"Vigência", 2}, {"Início", 3}, {"Término", 3},
}

func termsHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(termColumns))
	for _, tc := range termColumns {
		cols = append(cols, col.New(tc.size).Add(text.New(tc.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorWhite, Top: 2,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func termsRow(c *entity.Contract) core.Row {
	seats := "-"
	if n, ok := entity.PlanSeatLimit(c.Plan); ok {
		seats = strconv.Itoa(n)
	}
	values := []string{
		strconv.Itoa(c.Plan),
		seats,
		fmt.Sprintf("%d dias", c.TermDays),
		c.StartDate.Format(dateLayout),
		c.EndDate.Format(dateLayout),
	}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(termColumns[i].size).Add(text.New(v, props.Text{
			Size: 9, Align: align.Center, Top: 2,
		})))
	}
	return row.New(9).Add(cols...)
}

func statusRow(c *entity.Contract) core.Row {
	lastPayment := "-"
	if c.LastPaymentDate != nil {
		lastPayment = c.LastPaymentDate.Format(dateLayout)
	}
	return row.New(16).Add(
		col.New(4).Add(
			text.New("Pagamento", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(yesNo(c.Paid, "Pago", "Pendente"), props.Text{Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("Último pagamento", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(lastPayment, props.Text{Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("Situação", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(yesNo(c.Active, "Ativo", "Inativo"), props.Text{Size: 10, Top: 6}),
		),
	)
}

func footerRow(c *entity.Contract, company *entity.Company) core.Row {
	ref := fmt.Sprintf("HW-CONTRATO:%d:%s", c.ID, company.CNPJ)
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Referência: "+ref, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("O acesso dos usuários da contratante fica limitado ao número de usuários do plano "+
				"e à vigência indicada acima.", props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
