package events

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePublisherWritesTopicAndPayload(t *testing.T) {
	var buf bytes.Buffer
	pub := NewConsolePublisher(&buf)

	err := pub.Publish("order_events", []byte(`{"order_id":"o1"}`))

	require.NoError(t, err)
	assert.Equal(t, "[order_events] {\"order_id\":\"o1\"}\n", buf.String())
	assert.NoError(t, pub.Close())
}

func TestOrderEventMarshal(t *testing.T) {
	occurredAt := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	order := &models.Order{
		ID:          "o1",
		CustomerID:  "c1",
		Status:      models.OrderReady,
		TotalAmount: "12.50",
	}

	payload, err := NewOrderEvent(order, occurredAt).Marshal()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "o1", decoded["order_id"])
	assert.Equal(t, "ready", decoded["status"])
	assert.Equal(t, "12.50", decoded["total_amount"])
}
