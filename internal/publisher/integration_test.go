//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"result_ingestor/internal/domain"
	"result_ingestor/internal/testutil"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-" + name,
		RoutingKey: "test-routing-key-" + name,
		QueueName:  "test-queue-" + name,
	}
}

func completedMapping() *domain.ResultEventMapping {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.ResultEventMapping{
		EventID:       1000001,
		APIEventID:    "a085aa8beb661722ad957e5d8c15f798",
		CompType:      "soccer_epl",
		Completed:     true,
		Outcome:       testutil.Ptr(domain.OutcomeHomeWin),
		Score:         testutil.Ptr("3-1"),
		LastUpdatedDt: &now,
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCompleted() {
	cfg := s.config("completed")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.Publish(s.ctx, completedMapping())
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
	s.Equal("a085aa8beb661722ad957e5d8c15f798", msg.CorrelationId)
	_, err = uuid.Parse(msg.MessageId)
	s.NoError(err)

	var received ResultMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(ActionCompleted, received.Action)
	s.Equal(int64(1000001), received.Result.EventID)
	s.True(received.Result.Completed)
	s.Require().NotNil(received.Result.Outcome)
	s.Equal(domain.OutcomeHomeWin, *received.Result.Outcome)
	s.Require().NotNil(received.Result.Score)
	s.Equal("3-1", *received.Result.Score)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_UniqueMessageIDs() {
	cfg := s.config("ids")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.NoError(pub.Publish(s.ctx, completedMapping()))
	first := s.consumeMessage(cfg)
	s.NoError(pub.Publish(s.ctx, completedMapping()))
	second := s.consumeMessage(cfg)

	s.Require().NotNil(first)
	s.Require().NotNil(second)
	s.NotEqual(first.MessageId, second.MessageId)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
