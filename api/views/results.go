package views

import (
	"lolookup/api/converters"
	"lolookup/api/dto"
	queuevalues "lolookup/pkg/riotvalues/queue"
	"lolookup/pkg/scoring"
	"strings"
)

// TableColumns is the column order of a match table.
var TableColumns = []scoring.Column{
	scoring.ColumnName,
	scoring.ColumnChampion,
	scoring.ColumnKills,
	scoring.ColumnDeaths,
	scoring.ColumnAssists,
	scoring.ColumnKDA,
	scoring.ColumnDamageDealt,
	scoring.ColumnDamageTaken,
	scoring.ColumnHealing,
	scoring.ColumnCCTime,
	scoring.ColumnCCingOthers,
	scoring.ColumnGold,
	scoring.ColumnCS,
	scoring.ColumnVision,
	scoring.ColumnEffectiveness,
}

var columnLabels = map[scoring.Column]string{
	scoring.ColumnName:          "Player",
	scoring.ColumnChampion:      "Champion",
	scoring.ColumnKills:         "K",
	scoring.ColumnDeaths:        "D",
	scoring.ColumnAssists:       "A",
	scoring.ColumnKDA:           "KDA",
	scoring.ColumnDamageDealt:   "Damage",
	scoring.ColumnDamageTaken:   "Taken",
	scoring.ColumnHealing:       "Healing",
	scoring.ColumnCCTime:        "CC Time",
	scoring.ColumnCCingOthers:   "CCing",
	scoring.ColumnGold:          "Gold",
	scoring.ColumnCS:            "CS",
	scoring.ColumnVision:        "Vision",
	scoring.ColumnEffectiveness: "Score",
}

var teamNames = map[int]string{
	100: "Blue Team",
	200: "Red Team",
}

// PlayerHeader is the searched player block.
type PlayerHeader struct {
	GameName      string
	TagLine       string
	Region        string
	ProfileIconId int
	SummonerLevel int
}

// HeaderCell is a sortable column header.
type HeaderCell struct {
	Label     string
	URL       string
	Active    bool
	Direction scoring.Direction
}

// Cell is a rendered table value.
type Cell struct {
	Text string
	Best bool
}

// Row is a participant line.
type Row struct {
	PlayerURL string
	Searched  bool
	Win       bool
	Cells     []Cell
}

// TeamPanel summarizes one team of a match.
type TeamPanel struct {
	Name       string
	TeamId     int
	Win        bool
	Kills      int
	Deaths     int
	Assists    int
	Gold       int
	Damage     int
	Towers     int
	Dragons    int
	Barons     int
	Inhibitors int
	Heralds    int
}

// MatchView is a match card of the results page.
type MatchView struct {
	MatchId  string
	Date     string
	Duration string
	Queue    string
	Ranked   bool
	Win      bool
	Headers  []HeaderCell
	Rows     []Row
	Teams    []TeamPanel
}

// ResultsPage is the player page.
type ResultsPage struct {
	Title    string
	Player   PlayerHeader
	WinStats scoring.WinStats
	Stats    *dto.PlayerStats
	Matches  []MatchView
	Error    string
}

// ResultsInput is what the results page is built from.
type ResultsInput struct {
	Account  dto.AccountResponse
	Region   string
	Matches  []dto.Match
	Stats    *dto.PlayerStats
	Sort     SortStates
	BasePath string
	Weights  scoring.Weights
}

// BuildResults creates the results page from the looked up account and its matches.
func BuildResults(in ResultsInput) ResultsPage {
	weights := in.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights
	}

	region := strings.ToLower(in.Region)
	if region == "" {
		region = strings.ToLower(in.Account.Summoner.Region)
	}

	page := ResultsPage{
		Title: in.Account.Account.GameName + "#" + in.Account.Account.TagLine,
		Player: PlayerHeader{
			GameName:      in.Account.Account.GameName,
			TagLine:       in.Account.Account.TagLine,
			Region:        strings.ToUpper(region),
			ProfileIconId: in.Account.Summoner.ProfileIconId,
			SummonerLevel: in.Account.Summoner.SummonerLevel,
		},
		Stats:   in.Stats,
		Matches: make([]MatchView, 0, len(in.Matches)),
	}

	all := make([][]scoring.Participant, 0, len(in.Matches))
	for _, match := range in.Matches {
		participants := converters.ToScoringParticipants(match)
		all = append(all, participants)
		page.Matches = append(page.Matches, buildMatch(match, participants, in, region, weights))
	}
	page.WinStats = scoring.CalculateWinStats(all, in.Account.Account.GameName)

	return page
}

func buildMatch(match dto.Match, participants []scoring.Participant, in ResultsInput, region string, w scoring.Weights) MatchView {
	matchId := match.Metadata.MatchId
	searched := in.Account.Account.Puuid
	searchedName := in.Account.Account.GameName

	view := MatchView{
		MatchId:  matchId,
		Date:     FormatDate(match.Info.GameCreation),
		Duration: FormatDuration(match.Info.GameDuration),
		Queue:    queuevalues.Name(match.Info.QueueId, match.Info.GameMode),
		Ranked:   queuevalues.IsRanked(match.Info.QueueId),
		Headers:  buildHeaders(matchId, in.Sort, in.BasePath),
	}

	best := make(map[scoring.Column]float64, len(scoring.HighlightColumns))
	for _, c := range scoring.HighlightColumns {
		if v, ok := scoring.BestInColumn(participants, c, w); ok {
			best[c] = v
		}
	}

	rows := participants
	if state, ok := in.Sort[matchId]; ok {
		rows = scoring.SortParticipants(participants, state.Column, state.Direction, w)
	}

	for _, p := range rows {
		isSearched := p.Puuid == searched
		if isSearched {
			view.Win = p.Win
		}
		// The searched player's name isn't a link, they are already on their page.
		link := ""
		if !isSearched && !strings.EqualFold(p.RiotIdGameName, searchedName) {
			link = playerURL(p, region)
		}
		view.Rows = append(view.Rows, Row{
			PlayerURL: link,
			Searched:  isSearched,
			Win:       p.Win,
			Cells:     buildCells(p, best, w),
		})
	}

	for _, teamId := range []int{100, 200} {
		view.Teams = append(view.Teams, buildTeam(match, participants, teamId))
	}

	return view
}

func buildHeaders(matchId string, states SortStates, basePath string) []HeaderCell {
	headers := make([]HeaderCell, 0, len(TableColumns))
	current, hasSort := states[matchId]

	for _, c := range TableColumns {
		next := states.With(matchId, states.Next(matchId, c))
		header := HeaderCell{
			Label: columnLabels[c],
			URL:   basePath + "?" + next.Query(),
		}
		if hasSort && current.Column == c {
			header.Active = true
			header.Direction = current.Direction
		}
		headers = append(headers, header)
	}
	return headers
}

func buildCells(p scoring.Participant, best map[scoring.Column]float64, w scoring.Weights) []Cell {
	cells := make([]Cell, 0, len(TableColumns))
	for _, c := range TableColumns {
		cell := Cell{Text: cellText(p, c, w)}
		if v, ok := best[c]; ok {
			cell.Best = scoring.IsBest(p, c, w, v)
		}
		cells = append(cells, cell)
	}
	return cells
}

func cellText(p scoring.Participant, c scoring.Column, w scoring.Weights) string {
	switch c {
	case scoring.ColumnName:
		return p.RiotIdGameName
	case scoring.ColumnChampion:
		return p.ChampionName
	case scoring.ColumnKDA:
		if p.Deaths == 0 {
			return "Perfect"
		}
		return formatFloat(scoring.KDARatio(p.Stats), 2)
	case scoring.ColumnEffectiveness:
		return formatFloat(scoring.EffectivenessScore(p.Stats, w), 1)
	}
	v, _ := c.Value(p, w)
	return formatInt(v)
}

func playerURL(p scoring.Participant, region string) string {
	tagline := p.RiotIdTagline
	if tagline == "" {
		tagline = strings.ToUpper(region)
	}
	return PlayerPath(region, p.RiotIdGameName, tagline)
}

func buildTeam(match dto.Match, participants []scoring.Participant, teamId int) TeamPanel {
	totals := scoring.TeamSummary(participants, teamId)
	panel := TeamPanel{
		Name:    teamNames[teamId],
		TeamId:  teamId,
		Kills:   totals.Kills,
		Deaths:  totals.Deaths,
		Assists: totals.Assists,
		Gold:    totals.Gold,
		Damage:  totals.Damage,
	}

	for _, t := range match.Info.Teams {
		if t.TeamId != teamId {
			continue
		}
		panel.Win = t.Win
		panel.Towers = t.Objectives.Tower.Kills
		panel.Dragons = t.Objectives.Dragon.Kills
		panel.Barons = t.Objectives.Baron.Kills
		panel.Inhibitors = t.Objectives.Inhibitor.Kills
		panel.Heralds = t.Objectives.RiftHerald.Kills
	}
	return panel
}
