package models

// AdminStats is the dashboard aggregation payload. All counts reflect
// store state at call time; nothing here is cached.
type AdminStats struct {
	Users      UserStats       `json:"users"`
	Content    ContentStats    `json:"content"`
	Engagement EngagementStats `json:"engagement"`
	AgeRatings []AgeRatingStat `json:"ageRatings"`
}

type UserStats struct {
	Total   int64 `json:"total"`
	Clients int64 `json:"clients"`
	Admins  int64 `json:"admins"`
}

type ContentStats struct {
	Total  int64 `json:"total"`
	Movies int64 `json:"movies"`
	Series int64 `json:"series"`
}

type EngagementStats struct {
	TotalViews     int64 `json:"totalViews"`
	UniqueViewers  int64 `json:"uniqueViewers"`
	TotalFavorites int64 `json:"totalFavorites"`
}
