package eventify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// EventForm carries the fields of an event create/update submission.
// The image, when present, is forwarded as-is; this client never
// processes image data.
type EventForm struct {
	Name        string
	Description string
	Date        string
	ClubID      string
	CreatedBy   string
	Buttons     []model.Button
	Image       []byte
	ImageName   string
}

// encode renders the form as a multipart body, matching the API's
// expected field names. Buttons are sent as a JSON-encoded array.
func (f EventForm) encode() (contentType string, body []byte, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"name", f.Name},
		{"description", f.Description},
		{"date", f.Date},
		{"club", f.ClubID},
		{"createdBy", f.CreatedBy},
	}
	for _, fld := range fields {
		if fld.value == "" && (fld.name == "club" || fld.name == "createdBy") {
			continue // updates omit ownership fields
		}
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return "", nil, fmt.Errorf("writing field %s: %w", fld.name, err)
		}
	}

	buttons := f.Buttons
	if buttons == nil {
		buttons = []model.Button{}
	}
	buttonsJSON, err := json.Marshal(buttons)
	if err != nil {
		return "", nil, fmt.Errorf("marshaling buttons: %w", err)
	}
	if err := w.WriteField("buttons", string(buttonsJSON)); err != nil {
		return "", nil, fmt.Errorf("writing buttons: %w", err)
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

// ListEvents returns all published events. The collection arrives nested
// under data.events.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	const op = "events.list"

	env, err := c.get(ctx, op, "/api/events")
	if err != nil {
		return nil, err
	}

	payload, err := decodeData[struct {
		Events []model.Event `json:"events"`
	}](op, env)
	if err != nil {
		return nil, err
	}
	if payload.Events == nil {
		return []model.Event{}, nil
	}
	return payload.Events, nil
}

// ListEventsByCreator returns the events created by the given user.
func (c *Client) ListEventsByCreator(ctx context.Context, userID string) ([]model.Event, error) {
	const op = "events.listByCreator"

	env, err := c.get(ctx, op, "/api/events/creator/"+userID)
	if err != nil {
		return nil, err
	}

	payload, err := decodeData[struct {
		Events []model.Event `json:"events"`
	}](op, env)
	if err != nil {
		return nil, err
	}
	if payload.Events == nil {
		return []model.Event{}, nil
	}
	return payload.Events, nil
}

// CreateEvent submits a new event as a multipart form.
func (c *Client) CreateEvent(ctx context.Context, form EventForm) error {
	const op = "events.create"

	contentType, body, err := form.encode()
	if err != nil {
		return wrapError(op, err)
	}
	_, _, err = c.send(ctx, op, http.MethodPost, "/api/events", contentType, body)
	return err
}

// UpdateEvent updates an existing event as a multipart form. Fields left
// empty in the form are omitted where the API allows partial updates.
func (c *Client) UpdateEvent(ctx context.Context, id string, form EventForm) error {
	const op = "events.update"

	contentType, body, err := form.encode()
	if err != nil {
		return wrapError(op, err)
	}
	_, _, err = c.send(ctx, op, http.MethodPatch, "/api/events/"+id, contentType, body)
	return err
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	const op = "events.delete"

	_, _, err := c.send(ctx, op, http.MethodDelete, "/api/events/delete/"+id, "", nil)
	return err
}
