package views

import (
	"context"
	"io"
	"strconv"

	"github.com/AdamBeresnev/padel-rounds/internal/padel"
	"github.com/AdamBeresnev/padel-rounds/internal/service"
	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error and skips everything after it, like
// a generated component does. Markup goes through raw, every value through
// text, which escapes it.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) int(n int) {
	h.raw(strconv.Itoa(n))
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

func component(f func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		f(h)
		return h.err
	})
}

func layout(title string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(title)
		h.raw(`</title></head><body><main>`)
		h.render(body)
		h.raw(`</main><footer>organizer `)
		h.text(GetOrganizerID(h.ctx).String())
		h.raw(`</footer></body></html>`)
	})
}

func Index(tournaments []padel.Tournament) templ.Component {
	return layout("Padel tournaments", component(func(h *htmlWriter) {
		h.raw(`<h1>Your tournaments</h1><ul>`)
		for _, t := range tournaments {
			h.render(tournamentItem(t))
		}
		h.raw(`</ul>`)
	}))
}

func tournamentItem(t padel.Tournament) templ.Component {
	return component(func(h *htmlWriter) {
		status := "in progress"
		if t.IsCompleted {
			status = "completed"
		}
		h.raw(`<li><a href="/tournaments/`)
		h.text(t.ID.String())
		h.raw(`">`)
		h.text(t.Name)
		h.raw(`</a> `)
		h.text(string(t.Type))
		h.raw(`, `)
		h.text(status)
		h.raw(`</li>`)
	})
}

func TournamentView(data *service.TournamentData) templ.Component {
	rounds := PrepareRoundData(data.Players, data.Matches)
	return layout(data.Tournament.Name, component(func(h *htmlWriter) {
		h.raw(`<h1>`)
		h.text(data.Tournament.Name)
		h.raw(`</h1><p>`)
		h.text(string(data.Tournament.Type))
		h.raw(` on `)
		h.int(data.Tournament.NumberOfCourts)
		h.raw(` court(s), `)
		h.text(string(data.State))
		h.raw(`</p>`)

		h.render(standingsTable(data.Standings))
		for _, r := range rounds.RoundNums {
			h.render(roundSection(rounds, r))
		}
	}))
}

func standingsTable(standings []padel.Player) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<h2>Standings</h2><table><tr><th>#</th><th>Player</th><th>Points</th><th>W</th><th>D</th><th>L</th><th>Played</th></tr>`)
		for i, p := range standings {
			h.raw(`<tr><td>`)
			h.int(i + 1)
			h.raw(`</td><td>`)
			h.text(p.Name)
			for _, n := range []int{p.TotalPoints, p.Wins, p.Draws, p.Losses, p.GamesPlayed} {
				h.raw(`</td><td>`)
				h.int(n)
			}
			h.raw(`</td></tr>`)
		}
		h.raw(`</table>`)
	})
}

func roundSection(rounds RoundData, round int) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<h2>Round `)
		h.int(round)
		h.raw(`</h2><ol>`)
		for _, m := range rounds.Rounds[round] {
			h.render(matchItem(rounds, m))
		}
		h.raw(`</ol>`)

		if resting := rounds.Resting[round]; len(resting) > 0 {
			h.raw(`<p>Resting:`)
			for _, p := range resting {
				h.raw(` `)
				h.text(p.Name)
			}
			h.raw(`</p>`)
		}
	})
}

func matchItem(rounds RoundData, m padel.Match) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<li id="match-`)
		h.text(m.ID.String())
		h.raw(`">Court `)
		h.int(m.CourtNumber)
		h.raw(`: `)
		h.text(rounds.TeamName(m.Team1()))
		if m.IsPlayed {
			h.raw(` `)
			h.int(m.ScoreTeam1)
			h.raw(` - `)
			h.int(m.ScoreTeam2)
			h.raw(` `)
		} else {
			h.raw(` vs `)
		}
		h.text(rounds.TeamName(m.Team2()))
		h.raw(`</li>`)
	})
}
