package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// DefaultSubject subject событий переходов
const DefaultSubject = "shortlink.clicks"

// publisher часть *nats.Conn, нужная NATSPublisher
type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher отправляет события переходов в NATS. Публикация буферизуется
// клиентом и не ждёт сервера.
type NATSPublisher struct {
	conn    publisher
	subject string
	now     func() time.Time
	logger  *zap.Logger
}

func NewNATSPublisher(conn *nats.Conn, subject string, logger *zap.Logger) *NATSPublisher {
	return newNATSPublisher(conn, subject, logger)
}

func newNATSPublisher(conn publisher, subject string, logger *zap.Logger) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSPublisher{conn: conn, subject: subject, now: time.Now, logger: logger}
}

// Record публикует ClickEvent
func (p *NATSPublisher) Record(code model.Code) {
	data, err := json.Marshal(model.ClickEvent{Code: code, At: p.now().UTC()})
	if err != nil {
		p.logger.Warn("failed to encode click event", zap.String("code", string(code)), zap.Error(err))
		return
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		p.logger.Warn("failed to publish click event", zap.String("code", string(code)), zap.Error(err))
	}
}

// clickRecorder получатель декодированных событий
type clickRecorder interface {
	Record(code model.Code)
}

// NATSConsumer читает события переходов из queue group и передаёт их
// в Recorder, который агрегирует их в хранилище
type NATSConsumer struct {
	recorder clickRecorder
	logger   *zap.Logger
	sub      *nats.Subscription
}

func NewNATSConsumer(recorder clickRecorder, logger *zap.Logger) *NATSConsumer {
	return &NATSConsumer{recorder: recorder, logger: logger}
}

// Subscribe подписывается на subject в составе queue group
func (c *NATSConsumer) Subscribe(conn *nats.Conn, subject, queue string) error {
	if subject == "" {
		subject = DefaultSubject
	}

	sub, err := conn.QueueSubscribe(subject, queue, c.HandleMsg)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	c.sub = sub

	c.logger.Info("subscribed to click events", zap.String("subject", subject), zap.String("queue", queue))
	return nil
}

// HandleMsg обрабатывает одно сообщение
func (c *NATSConsumer) HandleMsg(msg *nats.Msg) {
	var event model.ClickEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		c.logger.Warn("failed to decode click event", zap.String("subject", msg.Subject), zap.Error(err))
		return
	}
	if event.Code == "" {
		c.logger.Warn("click event without code", zap.String("subject", msg.Subject))
		return
	}

	c.recorder.Record(event.Code)
}

// Drain отписывается, дожидаясь обработки уже полученных сообщений
func (c *NATSConsumer) Drain() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Drain()
}
