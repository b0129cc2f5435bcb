package importing

import (
	"slices"
	"strings"

	"github.com/vfg2006/social-metrics-api/internal/domain"
)

// ExtractExternalID obtém o identificador da conta a partir do link do perfil.
// Ex.: https://www.facebook.com/pg/coletivo/posts → "coletivo".
func ExtractExternalID(platform domain.Platform, link string) *string {
	host := platform.Domain()
	if !strings.Contains(link, host) {
		return nil
	}

	path := link
	for _, prefix := range []string{"https://www.", "https://", "http://www.", "http://"} {
		path = strings.Replace(path, prefix+host+"/", "", 1)
	}

	segments := strings.Split(path, "/")
	id := segments[0]
	if slices.Contains(platform.IDSelectors, id) && len(segments) > 1 {
		id = segments[1]
	}

	id, _, _ = strings.Cut(id, "?")
	if id == "" {
		return nil
	}
	return &id
}
