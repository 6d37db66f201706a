package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	catalogdomain "github.com/vicdevman/portfolio-api/internal/catalog/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	ownerNotificationTmpl  = "owner_notification.html"
	senderConfirmationTmpl = "sender_confirmation.html"
)

// TemplateData is the input to both contact templates. Name, Email and
// Message come from the visitor and are escaped on render.
type TemplateData struct {
	Name       string
	Email      string
	Message    string
	OwnerName  string
	OwnerTitle string
	Links      []catalogdomain.Link
	Year       int
}

func RenderOwnerNotification(d TemplateData) (string, error) {
	return render(ownerNotificationTmpl, d)
}

func RenderSenderConfirmation(d TemplateData) (string, error) {
	return render(senderConfirmationTmpl, d)
}

func render(name string, d TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
