package model

// DashboardStats is the summary returned by GET /dashboard/stats. All counts
// are scoped to the requesting user. AverageAccuracy is the unweighted mean
// of result scores, 0 when no results exist. StudyStreak is a placeholder
// that always reports zero.
type DashboardStats struct {
	TotalWords       int64         `json:"total_words"`
	TotalCollections int64         `json:"total_collections"`
	WordsLearned     int64         `json:"words_learned"`
	AverageAccuracy  float64       `json:"average_accuracy"`
	StudyStreak      int           `json:"study_streak"`
	RecentActivity   []*QuizResult `json:"recent_activity"`
}
