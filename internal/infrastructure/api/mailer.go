package api

import (
	"context"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/repository"
)

// CheckSession fetches the current mailer session status
func (c *Client) CheckSession(ctx context.Context) (*repository.SessionStatus, error) {
	var status repository.SessionStatus
	if err := c.get(ctx, "/mailer/session", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Logout clears the mailer session on the backend
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/mailer/logout", struct{}{}, nil)
}

// AuthURL returns the absolute authorization URL the login popup opens; the
// redirect flow behind it is driven by the backend.
func (c *Client) AuthURL() string {
	return c.url("/mailer/auth/google")
}

// GetEmailTemplate fetches an email template by id
func (c *Client) GetEmailTemplate(ctx context.Context, id string) (*entity.EmailTemplate, error) {
	var tmpl entity.EmailTemplate
	if err := c.get(ctx, "/email_templates/"+id, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// EmailTemplates returns the template-resource view of the API client
func (c *Client) EmailTemplates() repository.EmailTemplateRepository {
	return templateAPI{c}
}

type templateAPI struct {
	client *Client
}

func (a templateAPI) Get(ctx context.Context, id string) (*entity.EmailTemplate, error) {
	return a.client.GetEmailTemplate(ctx, id)
}

type versionResponse struct {
	Version string `json:"version"`
}

// Version reports the backend version
func (c *Client) Version(ctx context.Context) (string, error) {
	var resp versionResponse
	if err := c.get(ctx, "/version", &resp); err != nil {
		return "", err
	}
	return resp.Version, nil
}
