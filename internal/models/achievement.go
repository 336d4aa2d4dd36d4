package models

type Achievement struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

type AchievementList struct {
	Username     string        `json:"username"`
	Earned       int           `json:"earned"`
	Total        int           `json:"total"`
	Achievements []Achievement `json:"achievements"`
}
