package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	gomail "github.com/wneessen/go-mail"
)

const DefaultTimeout = 15 * time.Second

// SMTPConfig holds the relay settings. Secure selects implicit TLS; otherwise
// STARTTLS is used when the relay offers it.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPTransport sends each email over a fresh relay connection.
type SMTPTransport struct {
	cfg SMTPConfig
}

func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &SMTPTransport{cfg: cfg}
}

func (t *SMTPTransport) Send(ctx context.Context, e Email) error {
	if t.cfg.Host == "" {
		return errors.New("smtp host not configured")
	}

	msg, err := buildMessage(e)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", t.cfg.Host, err)
	}
	return nil
}

func (t *SMTPTransport) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(t.cfg.Port),
		gomail.WithTimeout(t.cfg.Timeout),
	}
	if t.cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if t.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(t.cfg.Username),
			gomail.WithPassword(t.cfg.Password),
		)
	}
	return opts
}

func buildMessage(e Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(e.From.Name, e.From.Email); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	if e.ReplyTo != "" {
		if err := msg.ReplyTo(e.ReplyTo); err != nil {
			return nil, fmt.Errorf("set reply-to: %w", err)
		}
	}
	msg.Subject(HeaderSafe(e.Subject))
	msg.SetMessageIDWithValue(uuid.NewString() + "@" + domainOf(e.From.Email))
	msg.SetDate()
	msg.SetBodyString(gomail.TypeTextHTML, e.HTML)
	return msg, nil
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}
