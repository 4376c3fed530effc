package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"trekkit/internal/platform/rabbitmq"
)

// Sender delivers one rendered mail. The default implementation only logs;
// wiring a real SMTP transport is a deployment concern.
type Sender interface {
	Send(job rabbitmq.MailJob) error
}

type LogSender struct{}

func (LogSender) Send(job rabbitmq.MailJob) error {
	log.Info().Str("to", job.To).Str("subject", job.Subject).Msg("mail dispatched")
	return nil
}

// MailWorker consumes queued mail jobs and hands them to a Sender.
type MailWorker struct {
	conn      *amqp.Connection
	sender    Sender
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewMailWorker(conn *amqp.Connection, sender Sender, queueName string) *MailWorker {
	return &MailWorker{
		conn:      conn,
		sender:    sender,
		queueName: queueName,
	}
}

func (w *MailWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open mail worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare mail queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume mail queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var job rabbitmq.MailJob
				if err := json.Unmarshal(d.Body, &job); err != nil {
					log.Error().Err(err).Msg("mail worker decode job failed")
					_ = d.Nack(false, false)
					continue
				}

				if err := w.sender.Send(job); err != nil {
					log.Error().Err(err).Str("to", job.To).Msg("mail worker send failed")
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *MailWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
