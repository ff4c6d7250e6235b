package mapping

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

// SportMapping maps one source's native sport identifier onto the canonical
// sport name. Rows are configuration edited on the admin screen; the merge
// never consults or mutates them.
type SportMapping struct {
	ID             string
	Source         prop.Source
	SourceSportID  string
	CanonicalSport string
	UpdatedAt      time.Time
}

func (m SportMapping) Validate() error {
	if _, ok := prop.AllSources[m.Source]; !ok {
		return fmt.Errorf("unknown source: %s", m.Source)
	}
	if strings.TrimSpace(m.SourceSportID) == "" {
		return fmt.Errorf("source sport id is required")
	}
	if strings.TrimSpace(m.CanonicalSport) == "" {
		return fmt.Errorf("canonical sport is required")
	}
	return nil
}

// StatMapping maps one source's native stat-type string, optionally scoped
// to a sport, onto the canonical stat name.
type StatMapping struct {
	ID             string
	Source         prop.Source
	SourceStatType string
	SportContext   string
	CanonicalStat  string
	UpdatedAt      time.Time
}

func (m StatMapping) Validate() error {
	if _, ok := prop.AllSources[m.Source]; !ok {
		return fmt.Errorf("unknown source: %s", m.Source)
	}
	if strings.TrimSpace(m.SourceStatType) == "" {
		return fmt.Errorf("source stat type is required")
	}
	if strings.TrimSpace(m.CanonicalStat) == "" {
		return fmt.Errorf("canonical stat is required")
	}
	return nil
}
