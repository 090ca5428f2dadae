package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the mail-provider connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier delivers notifications over SMTP.
type SMTPNotifier struct {
	cfg    SMTPConfig
	client *gomail.Client
}

// NewSMTPNotifier builds a notifier for the given provider. The connection
// is established per send; go-mail handles dialing and TLS.
func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: build smtp client: %w", err)
	}

	return &SMTPNotifier{cfg: cfg, client: client}, nil
}

func (n *SMTPNotifier) Send(ctx context.Context, kind Kind, recipient string, p Payload) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("mail: set sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("mail: set recipient: %w", err)
	}

	subject, body, err := render(kind, p)
	if err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send %s to %s: %w", kind, recipient, err)
	}
	return nil
}

func render(kind Kind, p Payload) (subject, body string, err error) {
	switch kind {
	case KindVerify:
		return "Verify your email",
			fmt.Sprintf("Hi %s,\n\nYour verification code is: %s\n\nIt expires in 10 minutes.\n", p.DisplayName, p.Code),
			nil
	case KindWelcome:
		return "Welcome aboard",
			fmt.Sprintf("Hi %s,\n\nYour email address is now verified. Welcome!\n", p.DisplayName),
			nil
	case KindResetRequest:
		return "Reset your password",
			fmt.Sprintf("Hi %s,\n\nFollow this link to reset your password:\n\n%s\n\nThe link expires in 1 hour. If you did not request this, ignore this email.\n", p.DisplayName, p.ResetLink),
			nil
	case KindResetSuccess:
		return "Your password was changed",
			fmt.Sprintf("Hi %s,\n\nYour password has been reset. If this wasn't you, contact support immediately.\n", p.DisplayName),
			nil
	default:
		return "", "", fmt.Errorf("mail: unknown notification kind %q", kind)
	}
}
