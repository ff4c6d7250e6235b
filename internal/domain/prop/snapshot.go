package prop

import "sort"

// Snapshot is the authoritative in-memory mirror of live prop offers, keyed
// by record id. It is kept current by applying change feed events; it has no
// lifecycle of its own. Callers own synchronization.
type Snapshot struct {
	offers map[string]Offer
}

func NewSnapshot() *Snapshot {
	return &Snapshot{offers: make(map[string]Offer)}
}

// Load replaces the snapshot contents with a bulk-fetched offer set.
// Offers already carrying the removed status are skipped.
func (s *Snapshot) Load(offers []Offer) {
	s.offers = make(map[string]Offer, len(offers))
	for _, offer := range offers {
		if offer.ID == "" || offer.Removed() {
			continue
		}
		offer.Source = NormalizeSource(offer.Source)
		s.offers[offer.ID] = offer
	}
}

// Apply folds one change event into the snapshot. It returns the merge key
// of the affected offer and whether the change should flash the merged row
// (live inserts and updates only). Applying the same event twice is
// idempotent, and a delete for an absent id is a no-op.
func (s *Snapshot) Apply(event ChangeEvent) (MergeKey, bool) {
	switch event.Type {
	case EventInsert, EventUpdate:
		if event.New == nil || event.New.ID == "" {
			return "", false
		}
		offer := *event.New
		offer.Source = NormalizeSource(offer.Source)
		if offer.Removed() {
			// Removed-status upserts are deletions in disguise.
			delete(s.offers, offer.ID)
			return offer.MergeKey(), false
		}
		s.offers[offer.ID] = offer
		return offer.MergeKey(), true
	case EventDelete:
		id := ""
		if event.New != nil {
			id = event.New.ID
		}
		if id == "" && event.Old != nil {
			id = event.Old.ID
		}
		if id == "" {
			return "", false
		}
		existing, ok := s.offers[id]
		if !ok {
			return "", false
		}
		delete(s.offers, id)
		return existing.MergeKey(), false
	default:
		return "", false
	}
}

// Offers returns the snapshot contents ordered by (updated_at, id)
// ascending. The merge fold relies on this order for its equal-timestamp
// tie-break, so the ordering is part of the contract.
func (s *Snapshot) Offers() []Offer {
	out := make([]Offer, 0, len(s.offers))
	for _, offer := range s.offers {
		out = append(out, offer)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Snapshot) Len() int {
	return len(s.offers)
}
