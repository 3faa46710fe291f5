package eventify

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// ClubForm carries the fields of a club create/update submission.
type ClubForm struct {
	Name        string
	Description string
	FBLink      string
	Image       []byte
	ImageName   string
}

func (f ClubForm) encode() (contentType string, body []byte, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"name", f.Name},
		{"description", f.Description},
		{"fbLink", f.FBLink},
	}
	for _, fld := range fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return "", nil, fmt.Errorf("writing field %s: %w", fld.name, err)
		}
	}

	if len(f.Image) > 0 {
		name := f.ImageName
		if name == "" {
			name = "image"
		}
		fw, err := w.CreateFormFile("image", name)
		if err != nil {
			return "", nil, fmt.Errorf("creating image part: %w", err)
		}
		if _, err := fw.Write(f.Image); err != nil {
			return "", nil, fmt.Errorf("writing image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("closing multipart writer: %w", err)
	}
	return w.FormDataContentType(), buf.Bytes(), nil
}

// ListClubs returns all clubs. The collection arrives nested under
// data.clubs.
func (c *Client) ListClubs(ctx context.Context) ([]model.Club, error) {
	const op = "clubs.list"

	env, err := c.get(ctx, op, "/api/clubs")
	if err != nil {
		return nil, err
	}

	payload, err := decodeData[struct {
		Clubs []model.Club `json:"clubs"`
	}](op, env)
	if err != nil {
		return nil, err
	}
	if payload.Clubs == nil {
		return []model.Club{}, nil
	}
	return payload.Clubs, nil
}

// CreateClub submits a new club as a multipart form.
func (c *Client) CreateClub(ctx context.Context, form ClubForm) error {
	const op = "clubs.create"

	contentType, body, err := form.encode()
	if err != nil {
		return wrapError(op, err)
	}
	_, _, err = c.send(ctx, op, http.MethodPost, "/api/clubs/", contentType, body)
	return err
}

// UpdateClub updates an existing club as a multipart form.
func (c *Client) UpdateClub(ctx context.Context, id string, form ClubForm) error {
	const op = "clubs.update"

	contentType, body, err := form.encode()
	if err != nil {
		return wrapError(op, err)
	}
	_, _, err = c.send(ctx, op, http.MethodPatch, "/api/clubs/update/"+id, contentType, body)
	return err
}

// DeleteClub removes a club.
func (c *Client) DeleteClub(ctx context.Context, id string) error {
	const op = "clubs.delete"

	_, _, err := c.send(ctx, op, http.MethodDelete, "/api/clubs/delete/"+id, "", nil)
	return err
}
