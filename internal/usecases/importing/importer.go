package importing

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/domain"
)

// Importer converte as abas da planilha em contas de uma plataforma
type Importer struct {
	platform   domain.Platform
	layout     domain.SheetLayout
	categories []string
}

func NewImporter(platform domain.Platform, layout domain.SheetLayout, categories []string) *Importer {
	return &Importer{
		platform:   platform,
		layout:     layout,
		categories: categories,
	}
}

// importState acumula o resultado enquanto as linhas são percorridas
type importState struct {
	accounts []*domain.Account
	byName   map[string]*domain.Account
	cursor   int
	lastDate []string
	report   domain.ImportReport
}

// Run percorre todas as abas e devolve as contas na ordem em que apareceram.
// Contas em existing são mantidas com seus históricos e recebem as novas amostras.
func (im *Importer) Run(tabs [][][]string, existing []*domain.Account) ([]*domain.Account, domain.ImportReport) {
	state := &importState{
		accounts: make([]*domain.Account, 0, len(existing)),
		byName:   make(map[string]*domain.Account, len(existing)),
		report:   domain.ImportReport{Platform: im.platform.Name},
	}

	for _, acc := range existing {
		if _, dup := state.byName[acc.Name]; dup {
			continue
		}
		state.byName[acc.Name] = acc
		state.accounts = append(state.accounts, acc)
	}

	for _, tab := range tabs {
		state.report.Tabs++
		state.cursor = 0

		for i, row := range tab {
			if i == 0 {
				continue
			}
			state.report.RowsRead++
			im.processRow(state, row)
		}
	}

	state.report.Accounts = len(state.accounts)
	return state.accounts, state.report
}

func (im *Importer) processRow(state *importState, row []string) {
	name := normalizeName(cell(row, im.layout.NameColumn))
	if name == "" {
		state.report.RowsSkipped++
		return
	}

	if next := state.cursor + 1; next < len(im.categories) && name == normalizeName(im.categories[next]) {
		state.cursor = next
		state.report.CategoriesSeen++
		return
	}

	rawLink := cell(row, im.layout.LinkColumn)
	linkValid := IsCellValid(rawLink)

	var externalID *string
	if linkValid {
		externalID = ExtractExternalID(im.platform, rawLink)
	}

	acc, exists := state.byName[name]
	if !exists {
		acc = &domain.Account{
			Name:       name,
			Category:   im.category(state.cursor),
			ExternalID: externalID,
			History:    make([]domain.Sample, 0),
		}
		if linkValid {
			acc.Link = stringPtr(rawLink)
		}
		state.byName[name] = acc
		state.accounts = append(state.accounts, acc)
	} else if acc.ExternalID == nil && linkValid {
		acc.Link = stringPtr(rawLink)
		acc.ExternalID = externalID
	}

	if !linkValid {
		return
	}

	sample, ok := im.buildSample(state, row)
	if !ok {
		state.report.RowsWithoutDate++
		logrus.WithFields(logrus.Fields{
			"platform": im.platform.Name,
			"account":  name,
		}).Warn("Linha ignorada: nenhuma data válida encontrada")
		return
	}

	if im.platform.DedupSamplesByDate && acc.HasSampleOn(sample.Date) {
		state.report.DuplicatesSkipped++
		return
	}

	acc.History = append(acc.History, sample)
	state.report.SamplesAppended++
}

func (im *Importer) buildSample(state *importState, row []string) (domain.Sample, bool) {
	parts := CoerceDate(cell(row, im.layout.DateColumn), state.lastDate)
	date, ok := DateFromParts(parts)
	if !ok && len(state.lastDate) == 3 {
		parts = state.lastDate
		date, ok = DateFromParts(parts)
	}
	if !ok {
		return domain.Sample{}, false
	}
	state.lastDate = parts

	sample := domain.Sample{
		Date:    date,
		Metrics: make(map[string]*int64, len(im.platform.Metrics)),
	}

	for _, metric := range im.platform.Metrics {
		column, mapped := im.layout.MetricColumns[metric.Key]
		if !mapped {
			continue
		}

		raw := cell(row, column)
		if IsCellValid(raw) {
			sample.Metrics[metric.Key] = CoerceNumber(raw)
		} else {
			sample.Metrics[metric.Key] = nil
		}
	}

	if im.platform.HasCampaigns && im.layout.CampaignsColumn >= 0 {
		sample.Campaigns = splitCampaigns(cell(row, im.layout.CampaignsColumn))
	}

	return sample, true
}

func (im *Importer) category(cursor int) string {
	if cursor < len(im.categories) {
		return im.categories[cursor]
	}
	return ""
}

// cell devolve "" para colunas ausentes em linhas curtas
func cell(row []string, column int) string {
	if column < 0 || column >= len(row) {
		return ""
	}
	return row[column]
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, "\n", " "))
}

func splitCampaigns(raw string) []string {
	if !IsCellValid(raw) {
		return nil
	}

	campaigns := make([]string, 0)
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			campaigns = append(campaigns, c)
		}
	}
	return campaigns
}

func stringPtr(s string) *string {
	return &s
}
