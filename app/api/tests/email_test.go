package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ribgsilva/note-service/business/v1/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail(t *testing.T) {
	a := newApp(t)

	w := a.request(http.MethodPost, "/send-email/?email=alice@example.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var job email.Job
	decode(t, w, &job)
	assert.Equal(t, "Email task submitted", job.Message)
	require.NotEmpty(t, job.TaskId)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	m, err := a.sub.Receive(ctx)
	require.NoError(t, err)
	m.Ack()

	var e email.Event
	require.NoError(t, json.Unmarshal(m.Body, &e))
	assert.Equal(t, email.TypeSend, e.Type)
	var se email.SendEmail
	require.NoError(t, json.Unmarshal(e.Data, &se))
	assert.Equal(t, job.TaskId, se.JobId)
	assert.Equal(t, "alice@example.com", se.Address)
}

func TestSendEmailInvalidAddress(t *testing.T) {
	a := newApp(t)

	for _, q := range []string{"", "?email=", "?email=not-an-address"} {
		w := a.request(http.MethodPost, "/send-email/"+q, "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, q)
	}
}
