package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const EventFormSubmission = "FORM_SUBMISSION"

var ErrInvalidSignature = errors.New("Invalid signature")

// Payload is the body Tally posts for every webhook event.
type Payload struct {
	EventID   string    `json:"eventId"`
	EventType string    `json:"eventType"`
	CreatedAt time.Time `json:"createdAt"`
	Data      Response  `json:"data"`
}

type Response struct {
	ResponseID   string  `json:"responseId"`
	SubmissionID string  `json:"submissionId"`
	RespondentID string  `json:"respondentId"`
	FormID       string  `json:"formId"`
	FormName     string  `json:"formName"`
	Fields       []Field `json:"fields"`
}

type Field struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Type  string     `json:"type"`
	Value FieldValue `json:"value"`
}

// FieldValue holds an answer as text. Tally sends strings, numbers, booleans,
// lists of option ids or null depending on the question type.
type FieldValue string

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = FieldValue(value)
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, p := range value {
			parts = append(parts, fmt.Sprint(p))
		}

		*v = FieldValue(strings.Join(parts, ","))
	default:
		*v = FieldValue(fmt.Sprint(value))
	}

	return nil
}

// Lookup returns the value of the first field whose label contains one of the
// given words, case insensitive, trying the words in order.
func (r *Response) Lookup(words ...string) string {
	for _, w := range words {
		w = strings.ToLower(w)

		for _, f := range r.Fields {
			if strings.Contains(strings.ToLower(f.Label), w) && f.Value != "" {
				return strings.TrimSpace(string(f.Value))
			}
		}
	}

	return ""
}

var ErrInvalidPayload = errors.New("Invalid payload")

// WebhookResult is what a processed Tally event produced.
type WebhookResult struct {
	SubmissionID string `json:"submissionId,omitempty"`
	LeadID       string `json:"leadId,omitempty"`
	Ignored      bool   `json:"-"`
}
