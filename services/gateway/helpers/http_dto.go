package helpers

// Request DTOs, bound from form or multipart bodies
type RegisterRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type AuctionRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	StartBid    int64  `form:"start_bid" binding:"required,gt=0"`
	ClosedAt    string `form:"closed_at" binding:"required"`
}

type BidRequest struct {
	Bid int64 `form:"bid" binding:"required,gt=0"`
}

type ListQuery struct {
	IsMe     *int `form:"is_me" binding:"omitempty,oneof=0 1"`
	IsClosed *int `form:"is_closed" binding:"omitempty,oneof=0 1"`
}

// Response DTOs, in the production gateway's wire format
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

type BidResponse struct {
	ID        int64  `json:"id"`
	Bid       int64  `json:"bid"`
	CreatedAt string `json:"created_at"`
}

type AuctionResponse struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Cover       string        `json:"cover"`
	StartBid    int64         `json:"start_bid"`
	ClosedAt    string        `json:"closed_at"`
	UserID      int64         `json:"user_id"`
	Author      *UserResponse `json:"author"`
	Bids        []BidResponse `json:"bids"`
	MyBid       *BidResponse  `json:"my_bid"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}

type AuctionsResponse struct {
	Auctions []AuctionResponse `json:"auctions"`
}

type AuctionDetailResponse struct {
	Auction AuctionResponse `json:"auction"`
}

type AuctionIDResponse struct {
	AuctionID int64 `json:"auction_id"`
}
