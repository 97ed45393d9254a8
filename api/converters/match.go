package converters

import (
	"lolookup/api/dto"
	"lolookup/pkg/database/models"
	"lolookup/pkg/scoring"
)

// ConvertMatch formats a stored match with its participants and teams.
// Participants without a resolved player are left out.
func ConvertMatch(match models.MatchInfo) dto.Match {
	participants := make([]dto.MatchParticipant, 0, len(match.Participants))
	puuids := make([]string, 0, len(match.Participants))

	for _, p := range match.Participants {
		if p.Player == nil {
			continue
		}
		participants = append(participants, NewMatchParticipant(p))
		puuids = append(puuids, p.Player.Puuid)
	}

	teams := make([]dto.Team, 0, len(match.Teams))
	for _, t := range match.Teams {
		teams = append(teams, NewTeam(t))
	}

	var created int64
	if !match.MatchStart.IsZero() {
		created = match.MatchStart.UnixMilli()
	}

	return dto.Match{
		Metadata: dto.MatchMetadata{
			MatchId:      match.MatchId,
			InternalId:   match.ID,
			Participants: puuids,
		},
		Info: dto.MatchInfo{
			GameCreation: created,
			GameDuration: match.MatchDuration,
			GameMode:     match.GameMode,
			GameType:     match.GameType,
			GameVersion:  match.GameVersion,
			QueueId:      match.QueueId,
			PlatformId:   match.PlatformId,
			Participants: participants,
			Teams:        teams,
		},
	}
}

// ConvertMatches formats a list of matches, keeping the order.
func ConvertMatches(matches []models.MatchInfo) []dto.Match {
	result := make([]dto.Match, 0, len(matches))
	for _, m := range matches {
		result = append(result, ConvertMatch(m))
	}
	return result
}

// NewMatchParticipant formats a participant, the player must be loaded.
func NewMatchParticipant(p models.MatchParticipant) dto.MatchParticipant {
	return dto.MatchParticipant{
		Puuid:                       p.Player.Puuid,
		RiotIdGameName:              p.Player.RiotIdGameName,
		RiotIdTagline:               p.Player.RiotIdTagline,
		Region:                      p.Player.Region,
		ParticipantId:               p.ParticipantId,
		ChampionId:                  p.ChampionId,
		ChampionName:                p.ChampionName,
		ChampionLevel:               p.ChampionLevel,
		TeamId:                      p.TeamId,
		TeamPosition:                p.TeamPosition,
		Win:                         p.Win,
		Kills:                       p.Kills,
		Deaths:                      p.Deaths,
		Assists:                     p.Assists,
		TotalDamageDealtToChampions: p.TotalDamageDealtToChampions,
		TotalDamageTaken:            p.TotalDamageTaken,
		TotalHeal:                   p.TotalHeal,
		GoldEarned:                  p.GoldEarned,
		TotalMinionsKilled:          p.TotalMinionsKilled,
		NeutralMinionsKilled:        p.NeutralMinionsKilled,
		VisionScore:                 p.VisionScore,
		TotalTimeCCDealt:            p.TotalTimeCCDealt,
		TimeCCingOthers:             p.TimeCCingOthers,
		Items:                       []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5},
	}
}

// NewTeam formats a team row.
func NewTeam(t models.MatchTeam) dto.Team {
	return dto.Team{
		TeamId: t.TeamId,
		Win:    t.Win,
		Objectives: dto.Objectives{
			Champion:   dto.Objective{Kills: t.ChampionKills},
			Tower:      dto.Objective{Kills: t.TowerKills},
			Inhibitor:  dto.Objective{Kills: t.InhibitorKills},
			Baron:      dto.Objective{Kills: t.BaronKills},
			Dragon:     dto.Objective{Kills: t.DragonKills},
			RiftHerald: dto.Objective{Kills: t.RiftHeraldKills},
		},
	}
}

// ToScoringParticipant maps a formatted participant to a scoring row.
func ToScoringParticipant(p dto.MatchParticipant) scoring.Participant {
	return scoring.Participant{
		Puuid:          p.Puuid,
		RiotIdGameName: p.RiotIdGameName,
		RiotIdTagline:  p.RiotIdTagline,
		ChampionName:   p.ChampionName,
		TeamId:         p.TeamId,
		Win:            p.Win,
		GoldEarned:     p.GoldEarned,
		MinionsKilled:  p.TotalMinionsKilled + p.NeutralMinionsKilled,
		VisionScore:    p.VisionScore,
		Stats: scoring.Stats{
			Kills:                       p.Kills,
			Deaths:                      p.Deaths,
			Assists:                     p.Assists,
			TotalDamageDealtToChampions: p.TotalDamageDealtToChampions,
			TotalDamageTaken:            p.TotalDamageTaken,
			TotalHeal:                   p.TotalHeal,
			TotalTimeCCDealt:            p.TotalTimeCCDealt,
			TimeCCingOthers:             p.TimeCCingOthers,
		},
	}
}

// ToScoringParticipants maps every participant of a match.
func ToScoringParticipants(match dto.Match) []scoring.Participant {
	result := make([]scoring.Participant, 0, len(match.Info.Participants))
	for _, p := range match.Info.Participants {
		result = append(result, ToScoringParticipant(p))
	}
	return result
}
