package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	texttemplate "text/template"
)

//go:embed templates/email/*.html
var templateFiles embed.FS

// NoticeType identifies a kind of email the shop sends
type NoticeType string

const (
	EmailVerificationNotice NoticeType = "email_verification"
	OrderReceiptNotice      NoticeType = "order_receipt"
	OrderAdminNotice        NoticeType = "order_admin"

	// LineItemsFragment renders the order line-item table shared by the order emails
	LineItemsFragment = "line_items"
)

// NoticeTemplate is the raw form of a notice. Subject is a text template and
// Html an HTML template, both executed with the same data.
type NoticeTemplate struct {
	Subject string
	Html    string
}

type compiledNotice struct {
	subject *texttemplate.Template
	html    *template.Template
}

// TemplateRegistry holds the parsed notice templates and HTML fragments.
type TemplateRegistry struct {
	notices   map[NoticeType]compiledNotice
	fragments map[string]*template.Template
}

// RegistryOption configures a TemplateRegistry
type RegistryOption func(*TemplateRegistry) error

func loadTemplate(filename string) string {
	content, err := templateFiles.ReadFile(filename)
	if err != nil {
		slog.Error("Error reading template file!", "err", err, "filename", filename)
		return ""
	}
	return string(content)
}

// NewTemplateRegistry creates a registry and applies the options in order
func NewTemplateRegistry(opts ...RegistryOption) (*TemplateRegistry, error) {
	r := &TemplateRegistry{
		notices:   make(map[NoticeType]compiledNotice),
		fragments: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RegisterNotice parses and stores a notice template, replacing any previous one
func (r *TemplateRegistry) RegisterNotice(noticeType NoticeType, nt NoticeTemplate) error {
	if noticeType == "" {
		return fmt.Errorf("invalid input: notice type cannot be empty")
	}
	if nt.Subject == "" || nt.Html == "" {
		return fmt.Errorf("invalid template for %s: subject and html are required", noticeType)
	}

	subject, err := texttemplate.New(string(noticeType) + "_subject").Parse(nt.Subject)
	if err != nil {
		return fmt.Errorf("failed to parse subject template for %s: %w", noticeType, err)
	}
	html, err := template.New(string(noticeType)).Parse(nt.Html)
	if err != nil {
		return fmt.Errorf("failed to parse html template for %s: %w", noticeType, err)
	}

	r.notices[noticeType] = compiledNotice{subject: subject, html: html}
	return nil
}

// RegisterFragment parses and stores a reusable HTML fragment
func (r *TemplateRegistry) RegisterFragment(name, html string) error {
	if name == "" || html == "" {
		return fmt.Errorf("invalid input: fragment name and html cannot be empty")
	}
	t, err := template.New(name).Parse(html)
	if err != nil {
		return fmt.Errorf("failed to parse fragment %s: %w", name, err)
	}
	r.fragments[name] = t
	return nil
}

// Compose renders a notice into a message addressed to `to`
func (r *TemplateRegistry) Compose(noticeType NoticeType, to string, data any) (Message, error) {
	notice, ok := r.notices[noticeType]
	if !ok {
		return Message{}, fmt.Errorf("no template registered for notice type: %s", noticeType)
	}

	var subject bytes.Buffer
	if err := notice.subject.Execute(&subject, data); err != nil {
		return Message{}, fmt.Errorf("failed to render subject for %s: %w", noticeType, err)
	}
	var body bytes.Buffer
	if err := notice.html.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("failed to render html for %s: %w", noticeType, err)
	}

	return Message{To: to, Subject: subject.String(), HTML: body.String()}, nil
}

// RenderFragment renders a fragment to HTML that can be embedded in a notice
// without being escaped again.
func (r *TemplateRegistry) RenderFragment(name string, data any) (template.HTML, error) {
	t, ok := r.fragments[name]
	if !ok {
		return "", fmt.Errorf("no fragment registered: %s", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render fragment %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// WithNotice registers a custom notice template
func WithNotice(noticeType NoticeType, nt NoticeTemplate) RegistryOption {
	return func(r *TemplateRegistry) error {
		return r.RegisterNotice(noticeType, nt)
	}
}

// WithEmailVerificationTemplate registers the email confirmation link template
func WithEmailVerificationTemplate() RegistryOption {
	return WithNotice(EmailVerificationNotice, NoticeTemplate{
		Subject: "Confirm your email address",
		Html:    loadTemplate("templates/email/email_verification.html"),
	})
}

// WithOrderTemplates registers the customer receipt, the admin notice and the
// line-item fragment they share.
func WithOrderTemplates() RegistryOption {
	return func(r *TemplateRegistry) error {
		if err := r.RegisterFragment(LineItemsFragment, loadTemplate("templates/email/line_items.html")); err != nil {
			return err
		}
		if err := r.RegisterNotice(OrderReceiptNotice, NoticeTemplate{
			Subject: "Your order receipt",
			Html:    loadTemplate("templates/email/order_receipt.html"),
		}); err != nil {
			return err
		}
		return r.RegisterNotice(OrderAdminNotice, NoticeTemplate{
			Subject: "New order received - Code {{.TrackingCode}}",
			Html:    loadTemplate("templates/email/order_admin.html"),
		})
	}
}

// WithDefaultTemplates registers every built-in template
func WithDefaultTemplates() RegistryOption {
	return func(r *TemplateRegistry) error {
		for _, opt := range []RegistryOption{WithEmailVerificationTemplate(), WithOrderTemplates()} {
			if err := opt(r); err != nil {
				return err
			}
		}
		return nil
	}
}

// DefaultTemplates returns a registry with every built-in template. The
// templates are embedded, so a failure here is a programming error.
func DefaultTemplates() *TemplateRegistry {
	r, err := NewTemplateRegistry(WithDefaultTemplates())
	if err != nil {
		panic(fmt.Sprintf("notification: built-in templates are invalid: %v", err))
	}
	return r
}
