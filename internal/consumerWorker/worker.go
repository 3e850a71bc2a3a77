package consumerWorker

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/zlog"

	"alumniPortal/internal/dto"
	"alumniPortal/internal/mailer"
	"alumniPortal/internal/rabbit"
)

// Reader drains notification messages from RabbitMQ and turns them
// into email, keeping mail delivery off the request path.
type Reader struct {
	RMQ    *rabbit.Client
	mailer *mailer.Mailer
	done   chan struct{}
	cancel context.CancelFunc
}

func NewReader(rmq *rabbit.Client, m *mailer.Mailer) *Reader {
	return &Reader{
		RMQ:    rmq,
		mailer: m,
		done:   make(chan struct{}),
	}
}

func (r *Reader) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	zlog.Logger.Info().Msg("notification worker started")

	go func() {
		defer close(r.done)

		handler := func(body []byte) error {
			var msg dto.NotificationMessage
			if err := json.Unmarshal(body, &msg); err != nil {
				zlog.Logger.Error().
					Err(err).
					Msgf("Failed to unmarshal message: %s", string(body))
				return err
			}

			zlog.Logger.Info().
				Str("kind", msg.Kind).
				Str("email", msg.Email).
				Msg("received notification message")

			if err := r.mailer.SendNotification(msg.Kind, msg.Name, msg.Email); err != nil {
				// Mail failures are logged and acked; requeueing would
				// hammer the SMTP server with the same broken message.
				zlog.Logger.Warn().
					Err(err).
					Str("email", msg.Email).
					Msg("failed to send notification email")
			}

			return nil
		}

		if err := r.RMQ.Consume(handler); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to start consuming")
			return
		}

		<-cctx.Done()
		zlog.Logger.Info().Msg("notification worker stopped by context")
	}()
}

func (r *Reader) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}
