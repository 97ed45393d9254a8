package models

// All returns every model managed by the schema migration.
func All() []any {
	return []any{
		&PlayerInfo{},
		&MatchInfo{},
		&MatchParticipant{},
		&MatchTeam{},
		&Champion{},
		&CacheBackup{},
	}
}
