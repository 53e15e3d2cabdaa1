package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"salon-admin/internal/apiclient"
)

// Bot serves the two chat commands of the admin panel: /start registers the
// caller through the web service, /admin deep-links into the panel.
type Bot struct {
	api           *tgbotapi.BotAPI
	client        *apiclient.Client
	publicBaseURL string
}

func New(token string, client *apiclient.Client, publicBaseURL string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		client:        client,
		publicBaseURL: publicBaseURL,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
			continue
		}
		if err := b.handleMessage(ctx, update.Message); err != nil {
			log.Printf("handle message: %v", err)
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "admin":
		return b.handleAdmin(msg)
	default:
		return b.reply(msg, "Commands: /start to register, /admin to open the admin panel.")
	}
}

// handleStart registers the caller with the web service. A failed call is
// reported to the user as text; the polling loop keeps running either way.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	user, existed, err := b.client.RegisterUser(ctx, apiclient.RegisterRequest{
		ID:        msg.From.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
	})
	if err != nil {
		log.Printf("register user %d: %v", msg.From.ID, err)
		return b.reply(msg, "Registration is unavailable right now, please try again later.")
	}

	if existed {
		return b.reply(msg, fmt.Sprintf("Welcome back, %s %s!", user.FirstName, user.LastName))
	}
	return b.reply(msg, fmt.Sprintf("Hi %s %s, welcome aboard!", user.FirstName, user.LastName))
}

// handleAdmin sends the two deep links as WebApp buttons. No admin check
// happens here; the web routes enforce the gate themselves.
func (b *Bot) handleAdmin(msg *tgbotapi.Message) error {
	usersURL := fmt.Sprintf("%s/api/v1/users?cur_user_id=%d", b.publicBaseURL, msg.From.ID)
	servicesURL := fmt.Sprintf("%s/api/v1/services?cur_user_id=%d", b.publicBaseURL, msg.From.ID)

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.KeyboardButton{
			Text:   "Manage users",
			WebApp: &tgbotapi.WebAppInfo{URL: usersURL},
		}),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.KeyboardButton{
			Text:   "Manage services",
			WebApp: &tgbotapi.WebAppInfo{URL: servicesURL},
		}),
	)

	reply := tgbotapi.NewMessage(msg.Chat.ID, "The admin panel is one tap below.")
	reply.ReplyMarkup = keyboard
	if _, err := b.api.Send(reply); err != nil {
		return fmt.Errorf("send admin menu: %w", err)
	}
	return nil
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) error {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	if _, err := b.api.Send(out); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}
