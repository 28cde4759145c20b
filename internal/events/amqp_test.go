package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	published  []amqp091.Publishing
	keys       []string
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp091.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	channel := &fakeChannel{}
	publisher, err := newPublisherWithChannel(channel, "finance.events")
	require.NoError(t, err)
	assert.Equal(t, []string{"finance.events:topic"}, channel.declared)

	event := NewTransactionEvent(TransactionCreated, 42, 7)
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, channel.published, 1)
	assert.Equal(t, []string{TransactionCreated}, channel.keys)
	msg := channel.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)

	var decoded TransactionEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, int64(42), decoded.TransactionID)
	assert.Equal(t, int64(7), decoded.UserID)
	assert.Equal(t, TransactionCreated, decoded.Type)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	channel := &fakeChannel{publishErr: errors.New("channel closed")}
	publisher, err := newPublisherWithChannel(channel, "finance.events")
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), NewTransactionEvent(TransactionDeleted, 1, 1))
	assert.EqualError(t, err, "publish event: channel closed")
}

func TestAMQPPublisher_DeclareError(t *testing.T) {
	_, err := newPublisherWithChannel(&fakeChannel{declareErr: errors.New("access refused")}, "finance.events")
	assert.EqualError(t, err, "declare exchange: access refused")
}

func TestAMQPPublisher_Close(t *testing.T) {
	channel := &fakeChannel{}
	publisher, err := newPublisherWithChannel(channel, "finance.events")
	require.NoError(t, err)

	assert.NoError(t, publisher.Close())
	assert.True(t, channel.closed)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), NewTransactionEvent(TransactionUpdated, 1, 1)))
	assert.NoError(t, p.Close())
}
