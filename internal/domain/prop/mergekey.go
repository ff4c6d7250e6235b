package prop

// MergeKey groups offers that describe the same (player, stat, sport) prop
// after normalization. Two offers merge if and only if their keys are equal.
type MergeKey string

// BuildMergeKey combines the normalized player name, normalized stat type
// and the raw sport id. Sport ids are deliberately left unnormalized:
// unifying them across sources belongs to the sport mapping table, not the
// merge.
func BuildMergeKey(playerName, statType, sportID string) MergeKey {
	return MergeKey(NormalizeName(playerName) + "|" + NormalizeStat(statType) + "|" + sportID)
}

func (o Offer) MergeKey() MergeKey {
	return BuildMergeKey(o.PlayerName, o.StatType, o.SportID)
}
