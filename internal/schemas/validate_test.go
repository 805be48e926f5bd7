package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInterviewRecord_Valid(t *testing.T) {
	doc := []byte(`{
		"interview_id": "abc123",
		"title": "Backend Interview",
		"company": "Acme",
		"position": "Engineer",
		"interview_date": "2024-01-01",
		"questions_answers": [
			{"question": "Why Go?", "answer": "Concurrency", "timestamp": "2024-01-01T10:00:00"}
		]
	}`)
	assert.NoError(t, ValidateInterviewRecord(doc))
}

func TestValidateInterviewRecord_MissingQuestionsAnswers(t *testing.T) {
	doc := []byte(`{
		"interview_id": "abc123",
		"title": "Backend Interview",
		"company": "Acme",
		"position": "Engineer",
		"interview_date": "2024-01-01"
	}`)
	err := ValidateInterviewRecord(doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateInterviewRecord_EmptyTitle(t *testing.T) {
	doc := []byte(`{
		"interview_id": "abc123",
		"title": "",
		"company": "Acme",
		"position": "Engineer",
		"interview_date": "2024-01-01",
		"questions_answers": []
	}`)
	assert.Error(t, ValidateInterviewRecord(doc))
}

func TestValidatePredictionRecord_Valid(t *testing.T) {
	doc := []byte(`{
		"prediction_id": "p1",
		"target_position": "Backend Engineer",
		"recommended_questions": ["Why Go?"],
		"recommended_topics": [],
		"generated_time": "2024-02-01T09:00:00"
	}`)
	assert.NoError(t, ValidatePredictionRecord(doc))
}

func TestValidatePredictionRecord_MissingPosition(t *testing.T) {
	doc := []byte(`{"prediction_id": "p1", "generated_time": "2024-02-01T09:00:00"}`)
	assert.Error(t, ValidatePredictionRecord(doc))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := ValidateInterviewRecord([]byte("{not json"))
	var sle *SchemaLoadError
	assert.ErrorAs(t, err, &sle)
}
