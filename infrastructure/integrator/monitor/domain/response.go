package monitordomain

// ActorsResponse é a lista de atores acompanhados pelo monitor
type ActorsResponse struct {
	Actors []string `json:"actors"`
}

// DatesResponse é a lista de datas coletadas pelo monitor
type DatesResponse struct {
	Dates []string `json:"dates"`
}

// TwitterCounts são os contadores de um perfil em uma data
type TwitterCounts struct {
	TweetsCount    *int64 `json:"tweets_count"`
	FollowersCount *int64 `json:"followers_count"`
	FollowingCount *int64 `json:"following_count"`
	LikesCount     *int64 `json:"likes_count"`
}

// YoutubeCounts são os contadores de um canal em uma data
type YoutubeCounts struct {
	Subscribers *int64 `json:"subscribers"`
	VideoCount  *int64 `json:"video_count"`
	ViewCount   *int64 `json:"view_count"`
}
