package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/climate-scenario-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("key-1"),
		Value:     []byte(`{"co2":420}`),
		Topic:     "scenario-requests",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("ui-gateway")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("key-1"), raw.Key)
	assert.JSONEq(t, `{"co2":420}`, string(raw.Value))
	assert.Equal(t, "scenario-requests", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "ui-gateway", raw.Headers["source"])
	assert.Nil(t, raw.Commit)
}

func TestMapOutputEventToMessage(t *testing.T) {
	event := domain.OutputEvent{
		Key:   []byte("scn-abc123"),
		Value: []byte(`{"id":"scn-abc123"}`),
		Headers: map[string]string{
			"air_quality":  "Medium",
			"evaluated_at": "2026-03-01T12:00:00Z",
		},
	}

	msg := mapOutputEventToMessage(event)

	assert.Equal(t, []byte("scn-abc123"), msg.Key)
	assert.Equal(t, event.Value, msg.Value)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "air_quality", msg.Headers[0].Key)
	assert.Equal(t, []byte("Medium"), msg.Headers[0].Value)
	assert.Equal(t, "evaluated_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2026-03-01T12:00:00Z"), msg.Headers[1].Value)
}

func TestMapOutputEventToMessage_MissingHeaders(t *testing.T) {
	msg := mapOutputEventToMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("v")})
	assert.Empty(t, msg.Headers)
}
