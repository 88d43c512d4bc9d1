package httpapi

import (
	"time"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type registerRequest struct {
	Username  string `json:"username" form:"username" binding:"required"`
	Password  string `json:"password" form:"password" binding:"required"`
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Phone     string `json:"phone" form:"phone" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type sendMessageRequest struct {
	ToUsername string `json:"to_username" form:"to_username" binding:"required"`
	Body       string `json:"body" form:"body" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userListItem struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type profileResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type userResponse struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// messageResponse covers the detail view and both mailboxes; mailboxes omit
// the participant that is implied by the route.
type messageResponse struct {
	ID       int64            `json:"id"`
	Body     string           `json:"body"`
	SentAt   time.Time        `json:"sent_at"`
	ReadAt   *time.Time       `json:"read_at"`
	FromUser *profileResponse `json:"from_user,omitempty"`
	ToUser   *profileResponse `json:"to_user,omitempty"`
}

type newMessageResponse struct {
	ID           int64     `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

type readReceiptResponse struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}

func toProfile(u models.UserSummary) *profileResponse {
	return &profileResponse{Username: u.Username, FirstName: u.FirstName, LastName: u.LastName, Phone: u.Phone}
}

func toUser(u *models.User) userResponse {
	return userResponse{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func toMessage(m *models.Message, withFrom, withTo bool) messageResponse {
	r := messageResponse{ID: m.ID, Body: m.Body, SentAt: m.SentAt, ReadAt: m.ReadAt}
	if withFrom {
		r.FromUser = toProfile(m.FromUser)
	}
	if withTo {
		r.ToUser = toProfile(m.ToUser)
	}
	return r
}
