package models

import "time"

// Identity is the public profile of an authenticated user as issued by the gateway
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// Session pairs the signed-in identity with its credential token.
// Either both are set or neither is.
type Session struct {
	Identity *Identity
	Token    string
}

// Authenticated reports whether the session carries both halves of a credential
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.Token != ""
}

// Bid is a single offer on an auction
type Bid struct {
	ID        int64     `json:"id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AuctionRecord is an auction listing as returned by the gateway
type AuctionRecord struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverURL    string    `json:"cover_url"`
	StartBid    int64     `json:"start_bid"`
	ClosedAt    time.Time `json:"closed_at"`
	Author      Identity  `json:"author"`
	Bids        []Bid     `json:"bids"`
	MyBid       *Bid      `json:"my_bid,omitempty"`
}

// AuctionDraft holds the editable fields of an auction listing
type AuctionDraft struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	StartBid    int64     `json:"start_bid" validate:"gt=0"`
	ClosedAt    time.Time `json:"closed_at" validate:"required"`
}

// CoverImage is an image upload for an auction cover
type CoverImage struct {
	Filename string
	Content  []byte
}

// Empty reports whether no image was provided
func (c CoverImage) Empty() bool {
	return len(c.Content) == 0
}
