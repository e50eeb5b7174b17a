package email

import "encoding/json"

// TypeSend is the event type of an email notification job
const TypeSend = "send-email"

// Event is the envelope of every message on the job topic
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type SendEmail struct {
	JobId   string `json:"job_id"`
	Address string `json:"address"`
}

// Job is returned to the caller as soon as the job is enqueued
type Job struct {
	Message string `json:"message" example:"Email task submitted"`
	TaskId  string `json:"task_id" example:"8c8a2a7e-6f2e-4f4b-9b7e-4c3b7b3b5f0e"`
}
