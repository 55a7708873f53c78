// Package graphic defines the generated post artifact shared by the post
// service, the graphic stores and the exporter.
package graphic

import "time"

// Kind is the type of post a graphic was generated for.
type Kind string

const (
	KindMatchday  Kind = "matchday"
	KindTraining  Kind = "training"
	KindSpotlight Kind = "spotlight"
)

// Generated is one finished post. It is never modified after creation.
type Generated struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	LayoutID    int       `json:"layout_id"`
	Theme       string    `json:"theme"`
	PlayerID    string    `json:"player_id,omitempty"`
	PlayerName  string    `json:"player_name,omitempty"`
	Number      int       `json:"number,omitempty"`
	ImageData   string    `json:"image_data"`
	GeneratedAt time.Time `json:"generated_at"`
}
