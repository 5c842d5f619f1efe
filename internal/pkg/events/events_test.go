package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistrationEvent(t *testing.T) {
	at := time.Date(2026, 1, 10, 9, 0, 0, 0, time.FixedZone("TRT", 3*3600))
	event := NewRegistrationEvent(TypeRegistrationCreated, 11, 2, "ada@example.com", 3, 75, at)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
	assert.Equal(t, []byte("ada@example.com"), event.Key())

	payload, err := event.Encode()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "registration.created", decoded["type"])
	assert.Equal(t, float64(11), decoded["registrationId"])
	assert.Equal(t, float64(75), decoded["price"])
	assert.Equal(t, "2026-01-10T06:00:00Z", decoded["occurredAt"])

	other := NewRegistrationEvent(TypeRegistrationCreated, 11, 2, "ada@example.com", 3, 75, at)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), RegistrationEvent{}))
	p.Close()
}

func TestNewKafkaPublisherValidation(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "registrations", 0)
	assert.Error(t, err)

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "", 0)
	assert.Error(t, err)
}
