package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/youruser/clubposts/internal/app"
	"github.com/youruser/clubposts/internal/posts"
)

const timeLayout = "2006-01-02 15:04"

var (
	opponent    string
	competition string
	venue       string
	kickOff     string
	ticketURL   string
	playerIDs   []string

	trainingTitle string
	session       string
	location      string
	startsAt      string
	photoRef      string

	headline string
	quote    string
)

var matchdayCmd = &cobra.Command{
	Use:   "matchday",
	Short: "Render a matchday announcement",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ko, err := parseTime(kickOff)
		if err != nil {
			return err
		}
		req := posts.MatchdayRequest{
			Options:     options(),
			Opponent:    opponent,
			Competition: competition,
			Venue:       venue,
			KickOff:     ko,
			TicketURL:   ticketURL,
			PlayerIDs:   playerIDs,
		}
		return withApp(cmd.Context(), func(a *app.App) posts.Result {
			return a.Service.GenerateMatchdayPost(cmd.Context(), a.Service.NewCanvas(), req)
		})
	},
}

var trainingCmd = &cobra.Command{
	Use:   "training",
	Short: "Render a training session post",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		at, err := parseTime(startsAt)
		if err != nil {
			return err
		}
		req := posts.TrainingRequest{
			Options:  options(),
			Title:    trainingTitle,
			Session:  session,
			Location: location,
			StartsAt: at,
			PhotoRef: photoRef,
		}
		return withApp(cmd.Context(), func(a *app.App) posts.Result {
			return a.Service.GenerateTrainingPost(cmd.Context(), a.Service.NewCanvas(), req)
		})
	},
}

var spotlightCmd = &cobra.Command{
	Use:   "spotlight <playerId>",
	Short: "Render a player spotlight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := posts.SpotlightRequest{Options: options(), Headline: headline, Quote: quote}
		return withApp(cmd.Context(), func(a *app.App) posts.Result {
			return a.Service.GeneratePlayerSpotlightPost(cmd.Context(), a.Service.NewCanvas(), args[0], req)
		})
	},
}

func init() {
	f := matchdayCmd.Flags()
	f.StringVar(&opponent, "opponent", "", "opposing club (required)")
	f.StringVar(&competition, "competition", "", "competition name")
	f.StringVar(&venue, "venue", "", "stadium or ground")
	f.StringVar(&kickOff, "kickoff", "", "kick-off time, "+timeLayout)
	f.StringVar(&ticketURL, "tickets", "", "ticket link, rendered as a QR code")
	f.StringSliceVar(&playerIDs, "players", nil, "up to two featured player ids")
	_ = matchdayCmd.MarkFlagRequired("opponent")

	f = trainingCmd.Flags()
	f.StringVar(&trainingTitle, "title", "", "post title")
	f.StringVar(&session, "session", "", "session description")
	f.StringVar(&location, "location", "", "training ground")
	f.StringVar(&startsAt, "starts", "", "start time, "+timeLayout)
	f.StringVar(&photoRef, "photo", "", "photo path or URL")

	f = spotlightCmd.Flags()
	f.StringVar(&headline, "headline", "", "headline text")
	f.StringVar(&quote, "quote", "", "player quote")
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, want %s", s, timeLayout)
	}
	return t, nil
}
