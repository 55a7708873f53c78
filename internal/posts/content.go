package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/youruser/clubposts/internal/graphic"
	imagepkg "github.com/youruser/clubposts/internal/image"
	"github.com/youruser/clubposts/internal/players"
)

const dateLayout = "Mon 2 Jan 15:04"

func (s *Service) lookupPlayer(ctx context.Context, id string) (players.Player, error) {
	p, err := s.deps.Players.Get(ctx, id)
	if errors.Is(err, players.ErrPlayerNotFound) {
		return players.Player{}, &ContentNotFoundError{What: "player", ID: id, Err: err}
	}
	if err != nil {
		return players.Player{}, fmt.Errorf("lookup player %s: %w", id, err)
	}
	return p, nil
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// featuredPlayers resolves ids, or the first n active players with a photo.
func (s *Service) featuredPlayers(ctx context.Context, ids []string, n int) ([]players.Player, error) {
	var out []players.Player
	if len(ids) > 0 {
		for _, id := range ids {
			if len(out) == n {
				break
			}
			p, err := s.lookupPlayer(ctx, id)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	}
	all, err := s.deps.Players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	for _, p := range players.Filter(all, players.FilterOptions{ActiveOnly: true}) {
		if len(out) == n {
			break
		}
		if p.PhotoURL != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, &ContentNotFoundError{What: "active player with photo"}
	}
	return out, nil
}

func photoRefs(ps []players.Player) []string {
	var refs []string
	for _, p := range ps {
		if p.PhotoURL != "" {
			refs = append(refs, p.PhotoURL)
		}
	}
	return refs
}

func (s *Service) matchdayJob(ctx context.Context, req MatchdayRequest) (job, error) {
	if strings.TrimSpace(req.Opponent) == "" {
		return job{}, errors.New("matchday post needs an opponent")
	}
	featured, err := s.featuredPlayers(ctx, req.PlayerIDs, 2)
	if err != nil {
		return job{}, err
	}
	var kickOff string
	if !req.KickOff.IsZero() {
		kickOff = req.KickOff.Format(dateLayout)
	}
	return job{
		kind: graphic.KindMatchday,
		key:  req.Opponent + "|" + req.KickOff.Format("2006-01-02"),
		opts: req.Options,
		content: imagepkg.Content{
			Headline:     "MATCHDAY",
			Subline:      "vs " + req.Opponent,
			Body:         joinNonEmpty(" · ", req.Competition, kickOff, req.Venue),
			VerticalText: strings.ToUpper(s.deps.Brand.ClubName),
			LinkURL:      req.TicketURL,
		},
		photoRefs: photoRefs(featured),
	}, nil
}

func (s *Service) trainingJob(ctx context.Context, req TrainingRequest) (job, error) {
	refs := []string{req.PhotoRef}
	if req.PhotoRef == "" {
		featured, err := s.featuredPlayers(ctx, nil, 1)
		if err != nil {
			return job{}, err
		}
		refs = photoRefs(featured)
	}
	title := req.Title
	if title == "" {
		title = "TRAINING"
	}
	session := req.Session
	if session == "" {
		session = "Open session"
	}
	var starts string
	if !req.StartsAt.IsZero() {
		starts = req.StartsAt.Format(dateLayout)
	}
	return job{
		kind: graphic.KindTraining,
		key:  session + "|" + req.StartsAt.Format("2006-01-02"),
		opts: req.Options,
		content: imagepkg.Content{
			Headline:     strings.ToUpper(title),
			Subline:      session,
			Body:         joinNonEmpty(" · ", starts, req.Location),
			VerticalText: strings.ToUpper(s.deps.Brand.Tagline),
		},
		photoRefs: refs,
	}, nil
}

func (s *Service) spotlightJob(ctx context.Context, playerID string, req SpotlightRequest) (job, error) {
	p, err := s.lookupPlayer(ctx, playerID)
	if err != nil {
		return job{}, err
	}
	if p.PhotoURL == "" {
		return job{}, &ContentNotFoundError{What: "photo for player", ID: playerID}
	}
	headline := req.Headline
	if headline == "" {
		headline = "PLAYER SPOTLIGHT"
	}
	body := req.Quote
	if body == "" {
		body = joinNonEmpty(" · ", p.Position, p.Nationality, p.Team)
	}
	return job{
		kind: graphic.KindSpotlight,
		key:  p.ID + "|" + s.deps.Now().Format("2006-01-02"),
		opts: req.Options,
		content: imagepkg.Content{
			Headline:     headline,
			Subline:      fmt.Sprintf("#%d %s", p.Number, p.Name),
			Body:         body,
			VerticalText: strings.ToUpper(p.Name),
		},
		photoRefs: []string{p.PhotoURL},
		player:    &p,
	}, nil
}
