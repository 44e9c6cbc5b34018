package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/tuidle/internal/model"
)

const (
	topOpenersCount = 5
	formWindow      = 5
)

// Source is the read side of the game store.
type Source interface {
	ListGames(ctx context.Context, cfg model.StatsConfig) ([]model.GameAggregate, error)
	ListOpeners(ctx context.Context, gameIDs []string) ([]string, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Games   []model.GameAggregate
	Summary Summary
	Openers []WordCount
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st Source, cfg model.StatsConfig) (Report, error) {
	games, err := st.ListGames(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	openers, err := st.ListOpeners(ctx, ids)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Games:   games,
		Summary: Summarize(games),
		Openers: TopOpeners(openers, topOpenersCount),
	}, nil
}

// RenderReport prints every section of the plain-text report.
func RenderReport(w io.Writer, r Report, width int, forceColor bool) error {
	if err := RenderSummary(w, r.Summary); err != nil {
		return err
	}
	if r.Summary.Played == 0 {
		return nil
	}
	if err := RenderDistribution(w, r.Summary, width, forceColor); err != nil {
		return err
	}
	if err := RenderForm(w, r.Games, formWindow); err != nil {
		return err
	}
	if err := RenderOpeners(w, r.Openers); err != nil {
		return err
	}
	return RenderHistory(w, r.Games)
}
