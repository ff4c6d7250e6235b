package board

import "github.com/riskibarqy/props-dashboard/internal/domain/prop"

// Merge folds offers into one MergedRow per merge key. Offers from sources
// outside enabled contribute nothing at all: no slot and no display
// attributes. For each row, a source's slot holds that source's freshest
// offer; a slot is replaced only by a strictly greater timestamp. The row's
// game display follows the freshest contributing offer overall, skipping
// blank values so a late richer record can fill an earlier empty one.
//
// Offers must arrive in a deterministic order (the snapshot emits them
// sorted by updated_at then id); equal-timestamp conflicts keep the earlier
// offer's slot and display fields, which makes the fold independent of map
// iteration order.
func Merge(offers []prop.Offer, enabled map[prop.Source]struct{}) map[prop.MergeKey]MergedRow {
	rows := make(map[prop.MergeKey]MergedRow, len(offers))
	for _, offer := range offers {
		if _, ok := enabled[offer.Source]; !ok {
			continue
		}

		key := offer.MergeKey()
		row, exists := rows[key]
		if !exists {
			row = MergedRow{
				Key:         key,
				PlayerName:  offer.PlayerName,
				SportID:     offer.SportID,
				StatType:    offer.StatType,
				GameDisplay: offer.GameDisplay,
				TeamAbbr:    offer.TeamAbbr,
				Quotes:      make(map[prop.Source]SourceQuote, 2),
			}
		}

		quote, has := row.Quotes[offer.Source]
		if !has || offer.UpdatedAt.After(quote.UpdatedAt) {
			row.Quotes[offer.Source] = SourceQuote{
				Line:       offer.Line,
				OverPrice:  offer.OverPrice,
				UnderPrice: offer.UnderPrice,
				UpdatedAt:  offer.UpdatedAt,
				RecordID:   offer.ID,
			}
		}

		if offer.UpdatedAt.After(row.LatestUpdate) {
			row.LatestUpdate = offer.UpdatedAt
			if offer.GameDisplay != "" {
				row.GameDisplay = offer.GameDisplay
			}
		}

		rows[key] = row
	}
	return rows
}
