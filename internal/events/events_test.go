package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/job-portal/internal/events"
)

func TestDispatcherRunsAllHandlers(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(events.EventJobCreated, func(context.Context, events.Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Subscribe(events.EventJobCreated, func(context.Context, events.Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(events.EventApplicationSubmitted, func(context.Context, events.Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), events.New(events.EventJobCreated, "job-1", "hr@a.com", nil))
	require.Error(t, err)
	require.Equal(t, []string{"first", "second"}, calls)
}

type recordingPublisher struct {
	channel string
	message []byte
	err     error
}

func (r *recordingPublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	r.channel = channel
	r.message, _ = message.([]byte)
	cmd := redis.NewIntCmd(ctx)
	if r.err != nil {
		cmd.SetErr(r.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisForwarderPublishesJSON(t *testing.T) {
	pub := &recordingPublisher{}
	d := events.NewInMemoryDispatcher()
	events.NewRedisForwarder(pub, "portal.events", zap.NewNop()).Register(d)

	event := events.New(events.EventApplicationSubmitted, "job-1", "a@x.com", events.ApplicationSubmittedPayload{
		ApplicantEmail:   "a@x.com",
		HREmail:          "hr@a.com",
		ApplicationCount: 3,
	})
	require.NoError(t, d.Publish(context.Background(), event))
	require.Equal(t, "portal.events", pub.channel)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pub.message, &decoded))
	require.Equal(t, "application_submitted", decoded["type"])
	require.Equal(t, event.ID, decoded["id"])
}

func TestRedisForwarderSurfacesPublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("connection refused")}
	f := events.NewRedisForwarder(pub, "portal.events", zap.NewNop())
	err := f.Forward(context.Background(), events.New(events.EventJobCreated, "job-1", "hr@a.com", nil))
	require.Error(t, err)
}
