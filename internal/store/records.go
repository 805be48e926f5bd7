// Package store persists resumes, interview records, and prediction records
// as flat files under a configured data directory.
package store

// AnalysisEntry is one model review of a QA item. Entries are append-only;
// re-analyzing an answer adds a new entry rather than overwriting.
type AnalysisEntry struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// QAItem is a single question/answer pair inside an interview. Ordering of
// items in InterviewRecord.QuestionsAnswers is insertion order and is
// preserved across save/load round-trips.
type QAItem struct {
	Question  string          `json:"question"`
	Answer    string          `json:"answer"`
	Notes     string          `json:"notes,omitempty"`
	Timestamp string          `json:"timestamp"`
	Analysis  []AnalysisEntry `json:"analysis,omitempty"`
}

// InterviewRecord is the persisted form of an interview, stored as one
// pretty-printed JSON file named <interview_id>.json.
type InterviewRecord struct {
	InterviewID      string   `json:"interview_id"`
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Position         string   `json:"position" validate:"required"`
	InterviewDate    string   `json:"interview_date" validate:"required"`
	QuestionsAnswers []QAItem `json:"questions_answers" validate:"required"`
	Summary          string   `json:"summary,omitempty"`
	SaveTime         string   `json:"save_time,omitempty"`
}

// ResumeRecord is the structured form of a resume: identity, storage
// location, upload time, and the extracted field values.
type ResumeRecord struct {
	ResumeID   string            `json:"resume_id"`
	FilePath   string            `json:"file_path"`
	UploadTime string            `json:"upload_time"`
	UserInfo   map[string]string `json:"user_info"`
}

// PredictionRecord is the persisted form of a prediction, mirroring the
// interview file-per-record layout under the predictions directory.
type PredictionRecord struct {
	PredictionID         string   `json:"prediction_id"`
	TargetPosition       string   `json:"target_position" validate:"required"`
	TargetCompany        string   `json:"target_company,omitempty"`
	ResumeID             string   `json:"resume_id,omitempty"`
	RecommendedQuestions []string `json:"recommended_questions"`
	RecommendedTopics    []string `json:"recommended_topics"`
	PreparationPlan      string   `json:"preparation_plan,omitempty"`
	GeneratedTime        string   `json:"generated_time"`
	SaveTime             string   `json:"save_time,omitempty"`
}
