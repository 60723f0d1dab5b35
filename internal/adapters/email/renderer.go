package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	texttemplate "text/template"

	"panelrecut/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// emailTimeFormat renders timestamps the way the notification emails
// display them, e.g. "June 1, 2025 at 10:30 AM".
const emailTimeFormat = "January 2, 2006 at 3:04 PM"

// generalPrefix is the placeholder panel-type prefix stripped for display.
var generalPrefix = regexp.MustCompile(`(?i)^General\s*`)

// contentRenderer implements domain.EmailContentRenderer using embedded
// template files. HTML and text bodies are rendered from the same
// request snapshot.
type contentRenderer struct {
	companyName string
}

// NewContentRenderer returns a renderer that brands messages with the
// given company name.
func NewContentRenderer(companyName string) domain.EmailContentRenderer {
	return &contentRenderer{companyName: companyName}
}

type panelView struct {
	DisplayType string
	PanelNumber string
	Material    string
	Side        domain.Side
	Quantity    int
}

type requestEmailData struct {
	CompanyName string
	Request     *domain.DamageRequest
	SubmittedAt string
	UpdatedAt   string
	Status      domain.Status
	Panels      []panelView
}

// RenderNewRequest renders the new-request notification: request summary
// plus the full panel list.
func (r *contentRenderer) RenderNewRequest(req *domain.DamageRequest) (domain.EmailContent, error) {
	return r.render("new_request", r.newData(req))
}

// RenderStatusUpdate renders the status-update notification: request
// summary, the new status, and the update time. No panel list.
func (r *contentRenderer) RenderStatusUpdate(req *domain.DamageRequest) (domain.EmailContent, error) {
	return r.render("status_update", r.newData(req))
}

func (r *contentRenderer) newData(req *domain.DamageRequest) requestEmailData {
	panels := make([]panelView, len(req.Panels))
	for i, p := range req.Panels {
		panels[i] = panelView{
			DisplayType: strings.TrimSpace(generalPrefix.ReplaceAllString(p.PanelType, "")),
			PanelNumber: p.PanelNumber,
			Material:    p.Material,
			Side:        p.Side,
			Quantity:    p.Quantity,
		}
	}
	return requestEmailData{
		CompanyName: r.companyName,
		Request:     req,
		SubmittedAt: req.SubmittedAt.Format(emailTimeFormat),
		UpdatedAt:   req.UpdatedAt.Format(emailTimeFormat),
		Status:      req.Status,
		Panels:      panels,
	}
}

func (r *contentRenderer) render(name string, data requestEmailData) (domain.EmailContent, error) {
	subject, err := renderFile(name+"_subject.txt", data, false)
	if err != nil {
		return domain.EmailContent{}, fmt.Errorf("render subject: %w", err)
	}
	htmlBody, err := renderFile(name+".html", data, true)
	if err != nil {
		return domain.EmailContent{}, fmt.Errorf("render html: %w", err)
	}
	textBody, err := renderFile(name+".txt", data, false)
	if err != nil {
		return domain.EmailContent{}, fmt.Errorf("render text: %w", err)
	}
	return domain.EmailContent{
		Subject: strings.TrimSpace(subject),
		HTML:    htmlBody,
		Text:    textBody,
	}, nil
}

func renderFile(name string, data requestEmailData, html bool) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if html {
		t, err := template.New(name).Parse(string(raw))
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	} else {
		t, err := texttemplate.New(name).Parse(string(raw))
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
