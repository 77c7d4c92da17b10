package helpers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"auction-client/internal/biddingerrors"
	"auction-client/services/gateway/store"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key holding the authenticated store.User
const UserKey = "gateway.user"

// WireTimeLayout is how the gateway writes and reads timestamps
const WireTimeLayout = "2006-01-02 15:04:05"

const maxCoverBytes = 5 << 20

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err and sends it
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/store errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrUnknownToken):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, biddingerrors.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid email or password"
	case errors.Is(err, biddingerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, biddingerrors.ErrRegistrationFailed):
		return http.StatusBadRequest, "registration failed"
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrNotOwner):
		return http.StatusForbidden, "only the auction owner can do this"
	case errors.Is(err, biddingerrors.ErrInvalidDraft):
		return http.StatusBadRequest, invalidDraftMessage(err)
	case errors.Is(err, biddingerrors.ErrNotPositive):
		return http.StatusBadRequest, "bid amount must be positive"
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, biddingerrors.ErrOwnerCannotBid):
		return http.StatusForbidden, "you cannot bid on your own auction"
	case errors.Is(err, biddingerrors.ErrAlreadyBid):
		return http.StatusConflict, "you already have a bid on this auction"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrNoBidToWithdraw):
		return http.StatusNotFound, "no bid to withdraw"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// invalidDraftMessage keeps the field detail after the sentinel
func invalidDraftMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, " - "); i >= 0 {
		return msg[i+3:]
	}
	return "invalid auction"
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// CurrentUser returns the user the auth middleware attached
func CurrentUser(c *gin.Context) (store.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return store.User{}, false
	}
	u, ok := v.(store.User)
	return u, ok
}

// ParseID reads a positive integer path parameter
func ParseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

// ReadCover reads the "cover" file of a multipart request
func ReadCover(c *gin.Context) (store.Cover, error) {
	fh, err := c.FormFile("cover")
	if err != nil {
		return store.Cover{}, fmt.Errorf("%w - cover is required", biddingerrors.ErrInvalidDraft)
	}
	if fh.Size > maxCoverBytes {
		return store.Cover{}, fmt.Errorf("%w - cover is larger than %d bytes", biddingerrors.ErrInvalidDraft, maxCoverBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return store.Cover{}, fmt.Errorf("open cover: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return store.Cover{}, fmt.Errorf("read cover: %w", err)
	}
	if len(content) == 0 {
		return store.Cover{}, fmt.Errorf("%w - cover is empty", biddingerrors.ErrInvalidDraft)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return store.Cover{}, fmt.Errorf("%w - cover must be an image", biddingerrors.ErrInvalidDraft)
	}
	return store.Cover{Filename: fh.Filename, ContentType: contentType, Content: content}, nil
}

// ParseWireTime reads a closing time written in loc
func ParseWireTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{WireTimeLayout, "2006-01-02 15:04", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w - closed_at must look like %s", biddingerrors.ErrInvalidDraft, WireTimeLayout)
}

// ToUserResponse converts a store user to its wire form
func ToUserResponse(u store.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Photo: u.Photo}
}

// ToAuctionResponse converts a store auction to its wire form as seen by viewerID
func ToAuctionResponse(a store.Auction, author store.User, viewerID int64, coverURL string, loc *time.Location) AuctionResponse {
	authorResp := ToUserResponse(author)
	resp := AuctionResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		StartBid:    a.StartBid,
		ClosedAt:    a.ClosedAt.In(loc).Format(WireTimeLayout),
		UserID:      a.UserID,
		Author:      &authorResp,
		Bids:        make([]BidResponse, 0, len(a.Bids)),
	}
	if a.HasCover {
		resp.Cover = coverURL
	}
	for _, b := range a.Bids {
		resp.Bids = append(resp.Bids, toBidResponse(b, loc))
	}
	if mine := a.BidBy(viewerID); mine != nil {
		bid := toBidResponse(*mine, loc)
		resp.MyBid = &bid
	}
	return resp
}

func toBidResponse(b store.Bid, loc *time.Location) BidResponse {
	return BidResponse{ID: b.ID, Bid: b.Amount, CreatedAt: b.CreatedAt.In(loc).Format(WireTimeLayout)}
}
