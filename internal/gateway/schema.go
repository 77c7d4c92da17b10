package gateway

import (
	"auction-client/internal/models"
	"encoding/json"
	"fmt"
	"time"
)

// Wire schemas for the gateway payloads. Every response is decoded into one of
// these and validated before it is mapped to the models package.

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type identityDTO struct {
	ID    int64  `json:"id" validate:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// authorDTO may omit its id; the record's user_id then names the owner
type authorDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

type loginData struct {
	User  *identityDTO `json:"user" validate:"required"`
	Token string       `json:"token" validate:"required"`
}

type meData struct {
	User *identityDTO `json:"user" validate:"required"`
}

type bidDTO struct {
	ID        int64  `json:"id"`
	Bid       int64  `json:"bid" validate:"gt=0"`
	CreatedAt string `json:"created_at"`
}

type auctionDTO struct {
	ID          int64      `json:"id" validate:"required"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Cover       string     `json:"cover"`
	StartBid    int64      `json:"start_bid" validate:"gte=0"`
	ClosedAt    string     `json:"closed_at" validate:"required"`
	UserID      int64      `json:"user_id"`
	Author      *authorDTO `json:"author"`
	Bids        []bidDTO   `json:"bids" validate:"dive"`
	MyBid       *bidDTO    `json:"my_bid" validate:"omitempty"`
}

// Payload keys, production spelling last
var (
	auctionKeys   = []string{"auction", "aucation"}
	auctionsKeys  = []string{"auctions", "aucations"}
	auctionIDKeys = []string{"auction_id", "aucation_id"}
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// WireTimeLayout is the layout the gateway expects for closed_at
const WireTimeLayout = "2006-01-02 15:04:05"

func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func formatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(WireTimeLayout)
}

func (d identityDTO) toModel() models.Identity {
	return models.Identity{ID: d.ID, Name: d.Name, Email: d.Email, Photo: d.Photo}
}

func (d bidDTO) toModel(loc *time.Location) (models.Bid, error) {
	bid := models.Bid{ID: d.ID, Amount: d.Bid}
	if d.CreatedAt != "" {
		t, err := parseTime(d.CreatedAt, loc)
		if err != nil {
			return models.Bid{}, fmt.Errorf("bid %d created_at: %w", d.ID, err)
		}
		bid.CreatedAt = t
	}
	return bid, nil
}

func (d auctionDTO) toModel(loc *time.Location) (models.AuctionRecord, error) {
	closedAt, err := parseTime(d.ClosedAt, loc)
	if err != nil {
		return models.AuctionRecord{}, fmt.Errorf("auction %d closed_at: %w", d.ID, err)
	}

	record := models.AuctionRecord{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		CoverURL:    d.Cover,
		StartBid:    d.StartBid,
		ClosedAt:    closedAt,
		Bids:        make([]models.Bid, 0, len(d.Bids)),
	}

	if d.Author != nil {
		record.Author = models.Identity{ID: d.Author.ID, Name: d.Author.Name, Email: d.Author.Email, Photo: d.Author.Photo}
	}
	if record.Author.ID == 0 {
		record.Author.ID = d.UserID
	}
	if record.Author.ID == 0 {
		return models.AuctionRecord{}, fmt.Errorf("auction %d has no owner", d.ID)
	}

	for _, b := range d.Bids {
		bid, err := b.toModel(loc)
		if err != nil {
			return models.AuctionRecord{}, fmt.Errorf("auction %d: %w", d.ID, err)
		}
		record.Bids = append(record.Bids, bid)
	}
	if d.MyBid != nil {
		bid, err := d.MyBid.toModel(loc)
		if err != nil {
			return models.AuctionRecord{}, fmt.Errorf("auction %d my_bid: %w", d.ID, err)
		}
		record.MyBid = &bid
	}
	return record, nil
}
