package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-metrics-api/internal/domain"
)

func TestExtractExternalID(t *testing.T) {
	facebook, _ := domain.PlatformByName("facebook")
	youtube, _ := domain.PlatformByName("youtube")
	twitter, _ := domain.PlatformByName("twitter")

	tests := []struct {
		name     string
		platform domain.Platform
		link     string
		want     *string
	}{
		{
			name:     "Página do facebook com seletor",
			platform: facebook,
			link:     "https://www.facebook.com/pg/coletivo/posts",
			want:     stringPtr("coletivo"),
		},
		{
			name:     "Perfil do facebook com query string",
			platform: facebook,
			link:     "https://www.facebook.com/movimento?ref=br_rs",
			want:     stringPtr("movimento"),
		},
		{
			name:     "Canal do youtube",
			platform: youtube,
			link:     "https://www.youtube.com/channel/UC123abc",
			want:     stringPtr("UC123abc"),
		},
		{
			name:     "Usuário do youtube sem www",
			platform: youtube,
			link:     "https://youtube.com/user/fulano",
			want:     stringPtr("fulano"),
		},
		{
			name:     "Perfil do twitter com http",
			platform: twitter,
			link:     "http://twitter.com/perfil",
			want:     stringPtr("perfil"),
		},
		{
			name:     "Domínio de outra rede",
			platform: facebook,
			link:     "https://twitter.com/perfil",
			want:     nil,
		},
		{
			name:     "Link sem caminho",
			platform: facebook,
			link:     "https://www.facebook.com/",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExternalID(tt.platform, tt.link))
		})
	}
}
