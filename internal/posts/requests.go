package posts

import (
	"time"

	"github.com/youruser/clubposts/internal/graphic"
)

// Options shared by every post kind. LayoutID 0 lets the picker decide.
type Options struct {
	Theme    string `json:"theme"`
	LayoutID int    `json:"layout_id"`
}

type MatchdayRequest struct {
	Options
	Opponent    string    `json:"opponent"`
	Competition string    `json:"competition"`
	Venue       string    `json:"venue"`
	KickOff     time.Time `json:"kick_off"`
	TicketURL   string    `json:"ticket_url"`
	// PlayerIDs picks up to two featured players; empty uses the first two
	// active players of the roster.
	PlayerIDs []string `json:"player_ids"`
}

type TrainingRequest struct {
	Options
	Title    string    `json:"title"`
	Session  string    `json:"session"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"starts_at"`
	// PhotoRef defaults to the photo of the first active player.
	PhotoRef string `json:"photo_ref"`
}

type SpotlightRequest struct {
	Options
	Headline string `json:"headline"`
	Quote    string `json:"quote"`
}

// Result is the uniform outcome of a generation call.
type Result struct {
	Success   bool      `json:"success"`
	ImageData string    `json:"image_data,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
	GraphicID string    `json:"graphic_id,omitempty"`
	LayoutID  int       `json:"layout_id,omitempty"`

	Graphic *graphic.Generated `json:"-"`
}

func failure(err error) Result {
	return Result{Success: false, Error: err.Error(), ErrorCode: codeOf(err)}
}

func success(g graphic.Generated) Result {
	return Result{Success: true, ImageData: g.ImageData, GraphicID: g.ID, LayoutID: g.LayoutID, Graphic: &g}
}
