package domain

// SheetLayout indica em quais colunas da planilha estão os campos de uma plataforma
type SheetLayout struct {
	NameColumn    int
	LinkColumn    int
	DateColumn    int
	MetricColumns map[string]int
	// CampaignsColumn negativo indica que a plataforma não registra campanhas
	CampaignsColumn int
}

// ImportReport resume uma execução de importação
type ImportReport struct {
	RunID             string       `json:"runId"`
	Platform          PlatformName `json:"platform"`
	Tabs              int          `json:"tabs"`
	RowsRead          int          `json:"rowsRead"`
	RowsSkipped       int          `json:"rowsSkipped"`
	RowsWithoutDate   int          `json:"rowsWithoutDate"`
	CategoriesSeen    int          `json:"categoriesSeen"`
	Accounts          int          `json:"accounts"`
	SamplesAppended   int          `json:"samplesAppended"`
	DuplicatesSkipped int          `json:"duplicatesSkipped"`
}

// UpdateFailure registra uma consulta ao monitor que não pôde ser concluída
type UpdateFailure struct {
	Actor string `json:"actor"`
	Date  string `json:"date"`
	Error string `json:"error"`
}

// UpdateReport resume uma atualização a partir do monitor de dados
type UpdateReport struct {
	Platform     PlatformName `json:"platform"`
	Actors       int          `json:"actors"`
	NewAccounts  int          `json:"newAccounts"`
	SamplesAdded int          `json:"samplesAdded"`
	// SkippedActors conta atores repetidos ou sem link quando a plataforma exige
	SkippedActors int             `json:"skippedActors"`
	Failures      []UpdateFailure `json:"failures,omitempty"`
}
