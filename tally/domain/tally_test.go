package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const submission = `{
	"eventId": "evt-1",
	"eventType": "FORM_SUBMISSION",
	"createdAt": "2024-06-01T22:00:00.000Z",
	"data": {
		"responseId": "resp-1",
		"submissionId": "sub-1",
		"formId": "form-1",
		"formName": "Pilot Night",
		"fields": [
			{"key": "q1", "label": "Venue / Business Name", "type": "INPUT_TEXT", "value": "Club Space"},
			{"key": "q2", "label": "Your Email", "type": "INPUT_EMAIL", "value": "owner@space.co"},
			{"key": "q3", "label": "IG handle", "type": "INPUT_TEXT", "value": "@ClubSpace"},
			{"key": "q4", "label": "Best night for a shoot", "type": "MULTIPLE_CHOICE", "value": ["Friday", "Saturday"]},
			{"key": "q5", "label": "Phone", "type": "INPUT_PHONE_NUMBER", "value": 3055550100},
			{"key": "q6", "label": "Newsletter", "type": "CHECKBOXES", "value": null}
		]
	}
}`

func TestPayload_Decode(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(submission), &p))

	assert.Equal(t, EventFormSubmission, p.EventType)
	assert.Equal(t, "resp-1", p.Data.ResponseID)
	assert.Len(t, p.Data.Fields, 6)
	assert.Equal(t, FieldValue("Friday,Saturday"), p.Data.Fields[3].Value)
	assert.Equal(t, FieldValue("3055550100"), p.Data.Fields[4].Value)
	assert.Equal(t, FieldValue(""), p.Data.Fields[5].Value)
}

func TestResponse_Lookup(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(submission), &p))

	assert.Equal(t, "Club Space", p.Data.Lookup("venue", "business"))
	assert.Equal(t, "owner@space.co", p.Data.Lookup("email"))
	assert.Equal(t, "@ClubSpace", p.Data.Lookup("instagram", "ig"))
	assert.Equal(t, "Friday,Saturday", p.Data.Lookup("night", "preferred"))
	assert.Equal(t, "Club Space", p.Data.Lookup("name"))
	assert.Equal(t, "", p.Data.Lookup("newsletter"))
	assert.Equal(t, "", p.Data.Lookup("budget"))
}
