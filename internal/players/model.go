package players

import "errors"

// ErrPlayerNotFound is returned by repositories for unknown ids.
var ErrPlayerNotFound = errors.New("player not found")

type Player struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Team        string `json:"team"`
	PhotoURL    string `json:"photo_url"`
	Nationality string `json:"nationality"`
	Active      bool   `json:"active"`
}
