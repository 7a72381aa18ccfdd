package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDayPlans_WrappedObject(t *testing.T) {
	content := `{"roadmap": [
		{"day": 1, "module": "Arrays", "topic": "Two Pointers", "time_min": 60},
		{"day": 2, "module": "Arrays", "topic": "Sliding Window", "time_min": 90}
	]}`

	plans, err := parseDayPlans(content)
	assert.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.Equal(t, "Two Pointers", plans[0].Topic)
	assert.Equal(t, 90, plans[1].TimeMinutes)
}

func TestParseDayPlans_BareArray(t *testing.T) {
	content := `[{"day": 1, "module": "Go", "topic": "Goroutines", "time_min": 45}]`

	plans, err := parseDayPlans(content)
	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, "Goroutines", plans[0].Topic)
}

func TestParseDayPlans_CodeFenced(t *testing.T) {
	content := "```json\n{\"roadmap\": [{\"day\": 1, \"module\": \"SQL\", \"topic\": \"Joins\", \"time_min\": 30}]}\n```"

	plans, err := parseDayPlans(content)
	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, "Joins", plans[0].Topic)
}

func TestParseDayPlans_Resources(t *testing.T) {
	content := `{"roadmap": [{
		"day": 1,
		"module": "Arrays",
		"topic": "Kadane's Algorithm",
		"resources": [{"title": "Explanation", "url": "https://example.com/kadane"}],
		"time_min": 90
	}]}`

	plans, err := parseDayPlans(content)
	assert.NoError(t, err)
	assert.Len(t, plans[0].Resources, 1)
	assert.Equal(t, "https://example.com/kadane", plans[0].Resources[0].URL)
}

func TestParseDayPlans_Invalid(t *testing.T) {
	_, err := parseDayPlans("The roadmap is as follows: day one, arrays.")
	assert.Error(t, err)
}

func TestParseQuizQuestions_WrappedObject(t *testing.T) {
	content := `{"questions": [
		{"question": "What does a channel do?", "options": ["A", "B", "C", "D"], "correct_answer": "A"}
	]}`

	questions, err := parseQuizQuestions(content)
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, "A", questions[0].CorrectAnswer)
}

func TestParseQuizQuestions_BareArray(t *testing.T) {
	content := `[{"question": "Q?", "options": ["yes", "no"], "correct_answer": "yes"}]`

	questions, err := parseQuizQuestions(content)
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\": 1}":                     `{"a": 1}`,
		"```json\n{\"a\": 1}\n```":       `{"a": 1}`,
		"```\n{\"a\": 1}\n```":           `{"a": 1}`,
		"  \n```json\n{\"a\": 1}\n```\n": `{"a": 1}`,
	}
	for input, want := range cases {
		assert.Equal(t, want, stripCodeFences(input))
	}
}
