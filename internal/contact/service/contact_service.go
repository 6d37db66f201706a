package service

import (
	"context"
	"regexp"
	"time"

	"github.com/vicdevman/portfolio-api/internal/apperr"
	catalogdomain "github.com/vicdevman/portfolio-api/internal/catalog/domain"
	"github.com/vicdevman/portfolio-api/internal/contact/domain"
	"github.com/vicdevman/portfolio-api/internal/contact/mail"
	"github.com/vicdevman/portfolio-api/internal/logging"
)

const (
	msgFieldsRequired  = "All fields are required"
	msgInvalidEmail    = "Invalid email address"
	msgNotConfigured   = "Mail relay not configured"
	msgSendFailed      = "Failed to send email"
	notificationSender = "Portfolio Contact"
	confirmationTitle  = "Thanks for reaching out!"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Settings are the addresses used for contact mail. RelayConfigured reports
// whether the SMTP host is set.
type Settings struct {
	From            string
	OwnerAddress    string
	RelayConfigured bool
}

// ContactService relays a contact form submission to the owner and sends
// the visitor a confirmation.
type ContactService struct {
	transport mail.Transport
	settings  Settings
	owner     catalogdomain.Owner
	now       func() time.Time
}

func NewContactService(t mail.Transport, s Settings, owner catalogdomain.Owner) *ContactService {
	return &ContactService{transport: t, settings: s, owner: owner, now: time.Now}
}

// Submit validates the submission and sends the owner notification followed
// by the sender confirmation. The confirmation is skipped if the first send fails.
func (s *ContactService) Submit(ctx context.Context, sub domain.Submission) error {
	logger := logging.NewLogger(ctx)

	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return apperr.InvalidRequest(msgFieldsRequired)
	}
	if !emailPattern.MatchString(sub.Email) {
		return apperr.InvalidRequest(msgInvalidEmail)
	}
	if !s.settings.RelayConfigured || s.settings.From == "" || s.settings.OwnerAddress == "" {
		return apperr.Configuration(msgNotConfigured)
	}

	data := mail.TemplateData{
		Name:       sub.Name,
		Email:      sub.Email,
		Message:    sub.Message,
		OwnerName:  s.owner.Name,
		OwnerTitle: s.owner.Title,
		Links:      s.owner.Links,
		Year:       s.now().Year(),
	}

	notification, err := mail.RenderOwnerNotification(data)
	if err != nil {
		return apperr.Internal(err)
	}
	confirmation, err := mail.RenderSenderConfirmation(data)
	if err != nil {
		return apperr.Internal(err)
	}

	err = s.transport.Send(ctx, mail.Email{
		From:    mail.Address{Name: notificationSender, Email: s.settings.From},
		To:      s.settings.OwnerAddress,
		ReplyTo: sub.Email,
		Subject: "New Contact Form Submission from " + sub.Name,
		HTML:    notification,
	})
	if err != nil {
		return apperr.Delivery(msgSendFailed, err)
	}

	err = s.transport.Send(ctx, mail.Email{
		From:    mail.Address{Name: s.owner.Name, Email: s.settings.From},
		To:      sub.Email,
		Subject: confirmationTitle,
		HTML:    confirmation,
	})
	if err != nil {
		return apperr.Delivery(msgSendFailed, err)
	}

	logger.LogInfo("contact.submit", "contact emails sent")
	return nil
}
