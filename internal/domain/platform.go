package domain

type PlatformName string

const (
	PlatformFacebook  PlatformName = "facebook"
	PlatformInstagram PlatformName = "instagram"
	PlatformTwitter   PlatformName = "twitter"
	PlatformYoutube   PlatformName = "youtube"
)

// Metric é uma característica numérica acompanhada no histórico de uma conta
type Metric struct {
	Key   string `json:"val"`
	Label string `json:"name"`
}

// Platform descreve tudo o que varia entre as redes sociais importadas
type Platform struct {
	Name       PlatformName
	Collection string
	Metrics    []Metric
	// LatestQuota é a quantidade de métricas que encerra a busca dos valores mais recentes
	LatestQuota int
	// IDSelectors são os segmentos de caminho que antecedem o identificador no link
	IDSelectors []string
	// DedupSamplesByDate faz a importação ignorar amostras de datas já registradas
	DedupSamplesByDate bool
	// MergeOnImport carrega as contas existentes antes de reimportar a planilha
	MergeOnImport bool
	Updatable     bool
	// UpdateRequiresLink faz a atualização pelo monitor ignorar contas salvas sem link
	UpdateRequiresLink bool
	HasCampaigns       bool
}

var platforms = []Platform{
	{
		Name:       PlatformFacebook,
		Collection: "facebook",
		Metrics: []Metric{
			{Key: "likes", Label: "Curtidas"},
			{Key: "followers", Label: "Seguidores"},
		},
		LatestQuota: 2,
		IDSelectors: []string{"pg"},
	},
	{
		Name:       PlatformInstagram,
		Collection: "instagramAccount",
		Metrics: []Metric{
			{Key: "followers", Label: "Seguidores"},
			{Key: "following", Label: "Seguindo"},
			{Key: "num_of_posts", Label: "Postagens"},
		},
		LatestQuota: 3,
		IDSelectors: []string{"pg"},
	},
	{
		Name:       PlatformTwitter,
		Collection: "twitterAccount",
		Metrics: []Metric{
			{Key: "tweets", Label: "Tweets"},
			{Key: "followers", Label: "Seguidores"},
			{Key: "following", Label: "Seguindo"},
			{Key: "likes", Label: "Curtidas"},
			{Key: "moments", Label: "Momentos"},
		},
		LatestQuota:  5,
		IDSelectors:  []string{"pg"},
		Updatable:    true,
		HasCampaigns: true,
	},
	{
		Name:       PlatformYoutube,
		Collection: "youtubeAccount",
		Metrics: []Metric{
			{Key: "subscribers", Label: "Inscritos"},
			{Key: "videos", Label: "Vídeos"},
			{Key: "views", Label: "Visualizações"},
		},
		LatestQuota:        3,
		IDSelectors:        []string{"channel", "user"},
		DedupSamplesByDate: true,
		MergeOnImport:      true,
		Updatable:          true,
		UpdateRequiresLink: true,
	},
}

// Platforms retorna as plataformas suportadas na ordem de exibição
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

func PlatformByName(name string) (Platform, bool) {
	for _, p := range platforms {
		if string(p.Name) == name {
			return p, true
		}
	}
	return Platform{}, false
}

// Domain retorna o domínio exigido nos links de perfil, ex.: "facebook.com"
func (p Platform) Domain() string {
	return string(p.Name) + ".com"
}

func (p Platform) MetricKeys() []string {
	keys := make([]string, 0, len(p.Metrics))
	for _, m := range p.Metrics {
		keys = append(keys, m.Key)
	}
	return keys
}

func (p Platform) Metric(key string) (Metric, bool) {
	for _, m := range p.Metrics {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}
