package domain

import (
	"fmt"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Account é uma entidade acompanhada em uma rede social
type Account struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name       string             `bson:"name" json:"name"`
	ExternalID *string            `bson:"external_id" json:"externalId"`
	Category   string             `bson:"category" json:"category"`
	Link       *string            `bson:"link" json:"link"`
	History    []Sample           `bson:"history" json:"history"`
}

// Sample é uma observação datada das métricas de uma conta.
// Métricas nulas representam células inválidas na origem.
type Sample struct {
	Date      time.Time         `bson:"date"`
	Metrics   map[string]*int64 `bson:",inline"`
	Campaigns []string          `bson:"campaigns,omitempty"`
}

func (s Sample) Value(metric string) *int64 {
	if s.Metrics == nil {
		return nil
	}
	return s.Metrics[metric]
}

func (s Sample) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Metrics)+2)
	for key, value := range s.Metrics {
		out[key] = value
	}
	out["date"] = s.Date
	if len(s.Campaigns) > 0 {
		out["campaigns"] = s.Campaigns
	}
	return json.Marshal(out)
}

func (s *Sample) UnmarshalJSON(data []byte) error {
	raw := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Metrics = make(map[string]*int64, len(raw))
	for key, value := range raw {
		switch key {
		case "date":
			if err := json.Unmarshal(value, &s.Date); err != nil {
				return fmt.Errorf("data inválida: %w", err)
			}
		case "campaigns":
			if err := json.Unmarshal(value, &s.Campaigns); err != nil {
				return fmt.Errorf("campanhas inválidas: %w", err)
			}
		default:
			var v *int64
			if err := json.Unmarshal(value, &v); err != nil {
				return fmt.Errorf("métrica %s inválida: %w", key, err)
			}
			s.Metrics[key] = v
		}
	}
	return nil
}

func (a *Account) ExternalIDValue() string {
	if a.ExternalID == nil {
		return ""
	}
	return *a.ExternalID
}

func (a *Account) LinkValue() string {
	if a.Link == nil {
		return ""
	}
	return *a.Link
}

// HasSampleOn indica se já existe amostra no mesmo dia (UTC)
func (a *Account) HasSampleOn(date time.Time) bool {
	for _, s := range a.History {
		if SameDay(s.Date, date) {
			return true
		}
	}
	return false
}

// InsertSample insere a amostra mantendo o histórico em ordem cronológica
func (a *Account) InsertSample(sample Sample) {
	idx := sort.Search(len(a.History), func(i int) bool {
		return a.History[i].Date.After(sample.Date)
	})
	a.History = append(a.History, Sample{})
	copy(a.History[idx+1:], a.History[idx:])
	a.History[idx] = sample
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Link é uma referência navegável no formato usado pela API
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type AccountSummary struct {
	Name       string  `json:"name"`
	ExternalID *string `json:"externalId"`
	Link       *string `json:"link"`
	Links      []Link  `json:"links"`
}

type AccountListResponse struct {
	Error    bool             `json:"error"`
	Import   Link             `json:"import"`
	Accounts []AccountSummary `json:"accounts"`
}

// AccountDetailResponse expõe os campos da conta no mesmo nível dos links
type AccountDetailResponse struct {
	*Account
	Links []Link `json:"links"`
}

type LatestResponse struct {
	Error  bool             `json:"error"`
	Latest map[string]int64 `json:"latest"`
}

type PlatformIndexResponse struct {
	Error bool   `json:"error"`
	Links []Link `json:"links"`
}
