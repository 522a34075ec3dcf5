package messages

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/view"
)

type ownerConfig int64

func (c ownerConfig) OwnerID() int64 { return int64(c) }

type failingHandler struct{}

func (failingHandler) HandleMessage(context.Context, string, int64) (string, error) {
	return "", errors.New("storage is down")
}

func Test_OnStartCommand_ShouldAnswerWithWelcomeMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	handler, _, _, _ := newTestHandler(t, false)

	sender.SendMessageMock.
		Expect(view.WelcomeText, int64(123)).
		Return(nil)

	model := NewService(sender, handler, ownerConfig(0))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	handler, _, _, _ := newTestHandler(t, true)

	sender.SendMessageMock.
		Expect(dontUnderstandMessage+"\n"+helpMessage, int64(123)).
		Return(nil)

	model := NewService(sender, handler, ownerConfig(123))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnStranger_ShouldRefuse(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(privateMessage, int64(7)).
		Return(nil)

	model := NewService(sender, failingHandler{}, ownerConfig(123))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/dashboard",
		UserID: 7,
	})

	assert.NoError(t, err)
}

func Test_OnHandlerFailure_ShouldApologise(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("Sorry, something wrong happened...\n", int64(123)).
		Return(nil)

	model := NewService(sender, failingHandler{}, ownerConfig(0))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/dashboard",
		UserID: 123,
	})

	assert.Error(t, err)
}
