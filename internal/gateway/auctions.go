package gateway

import (
	"auction-client/internal/listfilter"
	"auction-client/internal/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
)

// ListAuctions returns the auctions matching filter
func (c *Client) ListAuctions(ctx context.Context, filter listfilter.Filter) ([]models.AuctionRecord, error) {
	var records []models.AuctionRecord
	err := c.do(ctx, request{
		op:     "list_auctions",
		method: http.MethodGet,
		path:   c.auctionsPath(),
		query:  filter.Values(),
		decode: func(data json.RawMessage) error {
			raw, err := pick(data, auctionsKeys)
			if err != nil {
				return err
			}
			var dtos []auctionDTO
			if !isNull(raw) {
				if err := json.Unmarshal(raw, &dtos); err != nil {
					return fmt.Errorf("decode auctions: %w", err)
				}
			}
			records = make([]models.AuctionRecord, 0, len(dtos))
			for i := range dtos {
				record, err := c.auctionRecord(&dtos[i])
				if err != nil {
					return err
				}
				records = append(records, record)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetAuction returns one auction including its bids and the caller's own bid
func (c *Client) GetAuction(ctx context.Context, id int64) (models.AuctionRecord, error) {
	var record models.AuctionRecord
	err := c.do(ctx, request{
		op:     "get_auction",
		method: http.MethodGet,
		path:   c.auctionsPath(strconv.FormatInt(id, 10)),
		decode: func(data json.RawMessage) error {
			raw, err := pick(data, auctionKeys)
			if err != nil {
				return err
			}
			if isNull(raw) {
				return fmt.Errorf("auction %d is null", id)
			}
			var dto auctionDTO
			if err := json.Unmarshal(raw, &dto); err != nil {
				return fmt.Errorf("decode auction: %w", err)
			}
			record, err = c.auctionRecord(&dto)
			return err
		},
	})
	if err != nil {
		return models.AuctionRecord{}, err
	}
	return record, nil
}

// CreateAuction uploads a new listing with its cover and returns its id
func (c *Client) CreateAuction(ctx context.Context, draft models.AuctionDraft, cover models.CoverImage) (int64, error) {
	body, contentType, err := multipartBody(cover, c.draftFields(draft))
	if err != nil {
		return 0, malformed("create_auction", err)
	}

	var id int64
	err = c.do(ctx, request{
		op:          "create_auction",
		method:      http.MethodPost,
		path:        c.auctionsPath(),
		body:        body,
		contentType: contentType,
		decode: func(data json.RawMessage) error {
			raw, err := pick(data, auctionIDKeys)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(raw, &id); err != nil {
				return fmt.Errorf("decode auction id: %w", err)
			}
			if id <= 0 {
				return fmt.Errorf("invalid auction id %d", id)
			}
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateAuction replaces the editable fields of a listing
func (c *Client) UpdateAuction(ctx context.Context, id int64, draft models.AuctionDraft) error {
	form := url.Values{}
	for _, f := range c.draftFields(draft) {
		form.Set(f.name, f.value)
	}

	return c.do(ctx, request{
		op:          "update_auction",
		method:      http.MethodPut,
		path:        c.auctionsPath(strconv.FormatInt(id, 10)),
		body:        []byte(form.Encode()),
		contentType: formContentType,
	})
}

// ChangeCover replaces the cover image of a listing
func (c *Client) ChangeCover(ctx context.Context, id int64, cover models.CoverImage) error {
	body, contentType, err := multipartBody(cover, nil)
	if err != nil {
		return malformed("change_cover", err)
	}

	return c.do(ctx, request{
		op:          "change_cover",
		method:      http.MethodPost,
		path:        c.auctionsPath(strconv.FormatInt(id, 10), "cover"),
		body:        body,
		contentType: contentType,
	})
}

// DeleteAuction removes a listing
func (c *Client) DeleteAuction(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op:     "delete_auction",
		method: http.MethodDelete,
		path:   c.auctionsPath(strconv.FormatInt(id, 10)),
	})
}

// AddBid places the caller's bid on a listing
func (c *Client) AddBid(ctx context.Context, id int64, amount int64) error {
	form := url.Values{}
	form.Set("bid", strconv.FormatInt(amount, 10))

	return c.do(ctx, request{
		op:          "add_bid",
		method:      http.MethodPost,
		path:        c.auctionsPath(strconv.FormatInt(id, 10), "bids"),
		body:        []byte(form.Encode()),
		contentType: formContentType,
	})
}

// DeleteBid withdraws the caller's bid on a listing
func (c *Client) DeleteBid(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op:     "delete_bid",
		method: http.MethodDelete,
		path:   c.auctionsPath(strconv.FormatInt(id, 10), "bids"),
	})
}

func (c *Client) auctionRecord(dto *auctionDTO) (models.AuctionRecord, error) {
	if err := c.validate.Struct(dto); err != nil {
		return models.AuctionRecord{}, fmt.Errorf("validate auction %d: %w", dto.ID, err)
	}
	return dto.toModel(c.loc)
}

type formField struct {
	name  string
	value string
}

// draftFields lists the draft in the gateway's field order
func (c *Client) draftFields(draft models.AuctionDraft) []formField {
	return []formField{
		{name: "title", value: draft.Title},
		{name: "description", value: draft.Description},
		{name: "start_bid", value: strconv.FormatInt(draft.StartBid, 10)},
		{name: "closed_at", value: formatTime(draft.ClosedAt, c.loc)},
	}
}

func multipartBody(cover models.CoverImage, fields []formField) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	filename := filepath.Base(cover.Filename)
	if cover.Filename == "" {
		filename = "cover"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cover"; filename=%q`, filename))
	header.Set("Content-Type", http.DetectContentType(cover.Content))

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("cover part: %w", err)
	}
	if _, err := part.Write(cover.Content); err != nil {
		return nil, "", fmt.Errorf("cover part: %w", err)
	}

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("field %s: %w", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
