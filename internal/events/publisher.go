package events

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// Publisher delivers order lifecycle events to an external destination.
type Publisher interface {
	Publish(topic string, msg []byte) error
	Close() error
}

type ConsolePublisher struct {
	w io.Writer
}

func NewConsolePublisher(w io.Writer) *ConsolePublisher {
	return &ConsolePublisher{w: w}
}

func (c *ConsolePublisher) Publish(topic string, msg []byte) error {
	_, err := fmt.Fprintf(c.w, "[%s] %s\n", topic, msg)
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (c *ConsolePublisher) Close() error {
	return nil
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewKafkaPublisher(brokerList string) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	producer, err := sarama.NewSyncProducer(strings.Split(brokerList, ","), saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaPublisher{producer: producer}, nil
}

func (k *KafkaPublisher) Publish(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is not initialized")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	return err
}

func (k *KafkaPublisher) Close() error {
	if k.producer == nil {
		return nil
	}
	return k.producer.Close()
}
