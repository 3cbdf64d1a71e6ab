// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rlemos/provinha/ent/answerevent"
	"github.com/rlemos/provinha/ent/attemptevent"
	"github.com/rlemos/provinha/ent/llmrequestevent"
	"github.com/rlemos/provinha/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescFormat is the schema descriptor for format field.
	answereventDescFormat := answereventFields[2].Descriptor()
	// answerevent.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	answerevent.FormatValidator = answereventDescFormat.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescChosenIndex is the schema descriptor for chosen_index field.
	answereventDescChosenIndex := answereventFields[4].Descriptor()
	// answerevent.DefaultChosenIndex holds the default value on creation for the chosen_index field.
	answerevent.DefaultChosenIndex = answereventDescChosenIndex.Default.(int)
	// answereventDescCorrectIndex is the schema descriptor for correct_index field.
	answereventDescCorrectIndex := answereventFields[5].Descriptor()
	// answerevent.DefaultCorrectIndex holds the default value on creation for the correct_index field.
	answerevent.DefaultCorrectIndex = answereventDescCorrectIndex.Default.(int)
	// answereventDescStudentText is the schema descriptor for student_text field.
	answereventDescStudentText := answereventFields[6].Descriptor()
	// answerevent.DefaultStudentText holds the default value on creation for the student_text field.
	answerevent.DefaultStudentText = answereventDescStudentText.Default.(string)
	// answereventDescAdherence is the schema descriptor for adherence field.
	answereventDescAdherence := answereventFields[7].Descriptor()
	// answerevent.DefaultAdherence holds the default value on creation for the adherence field.
	answerevent.DefaultAdherence = answereventDescAdherence.Default.(string)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescContentID is the schema descriptor for content_id field.
	attempteventDescContentID := attempteventFields[1].Descriptor()
	// attemptevent.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	attemptevent.ContentIDValidator = attempteventDescContentID.Validators[0].(func(string) error)
	// attempteventDescContentTitle is the schema descriptor for content_title field.
	attempteventDescContentTitle := attempteventFields[2].Descriptor()
	// attemptevent.DefaultContentTitle holds the default value on creation for the content_title field.
	attemptevent.DefaultContentTitle = attempteventDescContentTitle.Default.(string)
	// attempteventDescAction is the schema descriptor for action field.
	attempteventDescAction := attempteventFields[3].Descriptor()
	// attemptevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	attemptevent.ActionValidator = attempteventDescAction.Validators[0].(func(string) error)
	// attempteventDescQuestionsPresented is the schema descriptor for questions_presented field.
	attempteventDescQuestionsPresented := attempteventFields[4].Descriptor()
	// attemptevent.DefaultQuestionsPresented holds the default value on creation for the questions_presented field.
	attemptevent.DefaultQuestionsPresented = attempteventDescQuestionsPresented.Default.(int)
	// attempteventDescScoreHalves is the schema descriptor for score_halves field.
	attempteventDescScoreHalves := attempteventFields[5].Descriptor()
	// attemptevent.DefaultScoreHalves holds the default value on creation for the score_halves field.
	attemptevent.DefaultScoreHalves = attempteventDescScoreHalves.Default.(int)
	// attempteventDescTotalPoints is the schema descriptor for total_points field.
	attempteventDescTotalPoints := attempteventFields[6].Descriptor()
	// attemptevent.DefaultTotalPoints holds the default value on creation for the total_points field.
	attemptevent.DefaultTotalPoints = attempteventDescTotalPoints.Default.(int)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
