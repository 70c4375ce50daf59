package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter is a test writer that records messages written.
type fakeWriter struct {
	msgs   []skafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestProducer_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewProducerWithWriter(fw)

	err := p.Publish(context.Background(), "product.created", map[string]string{"productId": "p-1"})
	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)

	msg := fw.msgs[0]
	assert.Equal(t, "product.created", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event", msg.Headers[0].Key)

	var body map[string]string
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "p-1", body["productId"])

	require.NoError(t, p.Close())
	assert.True(t, fw.closed)
}

func TestProducer_Publish_Errors(t *testing.T) {
	p := NewProducerWithWriter(&fakeWriter{err: errors.New("leader not available")})
	err := p.Publish(context.Background(), "product.deleted", map[string]string{})
	assert.ErrorContains(t, err, "leader not available")

	err = NewProducerWithWriter(&fakeWriter{}).Publish(context.Background(), "seed.completed", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal")
}
