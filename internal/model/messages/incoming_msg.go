package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const privateMessage = "Sorry, this tracker is private."

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type config interface {
	OwnerID() int64
}

// Service answers chat messages. The tracker keeps a single person's data,
// so when an owner is configured everybody else is turned away.
type Service struct {
	tgClient messageSender
	handler  MessageHandler
	ownerID  int64
}

func NewService(tgClient messageSender, handler MessageHandler, config config) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  handler,
		ownerID:  config.OwnerID(),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	if s.ownerID != 0 && msg.UserID != s.ownerID {
		logger.Warn("message from a stranger", zap.Int64("userID", msg.UserID))
		return s.tgClient.SendMessage(privateMessage, msg.UserID)
	}

	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp, msg.UserID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}
