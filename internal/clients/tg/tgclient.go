package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	updatesTimeout      = 60
	baseTimeout         = 5 * time.Second
)

type config interface {
	Token() string
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client         *tgbotapi.BotAPI
	messageTimeout time.Duration
}

// New connects to the bot API. extraTimeout widens the per-message deadline
// for handlers that wait on the rate service.
func New(config config, extraTimeout time.Duration) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(config.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	logger.Info("authorized on telegram", zap.String("bot", client.Self.UserName))
	return &Client{client: client, messageTimeout: baseTimeout + extraTimeout}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// SetCommands publishes the command menu shown by Telegram clients.
func (c *Client) SetCommands(menu []messages.MenuItem) error {
	botCmds := make([]tgbotapi.BotCommand, 0, len(menu))
	for _, item := range menu {
		botCmds = append(botCmds, tgbotapi.BotCommand{Command: item.Command, Description: item.Description})
	}
	_, err := c.client.Request(tgbotapi.NewSetMyCommands(botCmds...))
	return errors.Wrap(err, "set commands")
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel messageHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updatesTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel messageHandler) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	logger.Info(update.Message.Text, zap.String("user", update.Message.From.UserName))

	ctx, cancel := context.WithTimeout(ctx, c.messageTimeout)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		UserID: update.Message.From.ID,
	})
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}
