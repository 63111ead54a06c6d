package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"selfchart/domain/chart"
	"selfchart/domain/core"
	"selfchart/domain/insight"
	"selfchart/domain/scoring"
)

// TraitColumn stores a scoring.TraitProfile in a JSONB column.
type TraitColumn struct {
	scoring.TraitProfile
}

func (c TraitColumn) Value() (driver.Value, error) {
	return json.Marshal(c.TraitProfile)
}

func (c *TraitColumn) Scan(value interface{}) error {
	return scanJSONB(value, &c.TraitProfile)
}

// ChartColumn stores a chart.ChartProfile in a JSONB column.
type ChartColumn struct {
	chart.ChartProfile
}

func (c ChartColumn) Value() (driver.Value, error) {
	return json.Marshal(c.ChartProfile)
}

func (c *ChartColumn) Scan(value interface{}) error {
	return scanJSONB(value, &c.ChartProfile)
}

// InsightsColumn stores the ordered insight list in a JSONB column.
type InsightsColumn struct {
	insight.Report
}

func (c InsightsColumn) Value() (driver.Value, error) {
	if c.Report == nil {
		return json.Marshal(insight.Report{})
	}
	return json.Marshal(c.Report)
}

func (c *InsightsColumn) Scan(value interface{}) error {
	return scanJSONB(value, &c.Report)
}

// MarshalJSON renders the column as the bare insight list, matching the
// shape returned at submission time.
func (c InsightsColumn) MarshalJSON() ([]byte, error) {
	if c.Report == nil {
		return json.Marshal(insight.Report{})
	}
	return json.Marshal(c.Report)
}

func (c *InsightsColumn) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.Report)
}

func scanJSONB(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSONB column", value)
	}
}

// Reading is a stored quiz result. Created once at submission; the only
// legal mutation afterwards is Purchased false -> true, gated on the
// secret. The secret never leaves the server in any serialized form except
// the creation response.
type Reading struct {
	PublicID    string         `json:"public_id" db:"public_id"`
	Secret      string         `json:"-" db:"secret"`
	Email       string         `json:"email,omitempty" db:"email"`
	Name        string         `json:"name,omitempty" db:"name"`
	Trait       TraitColumn    `json:"trait" db:"trait"`
	Chart       ChartColumn    `json:"chart" db:"chart"`
	Insights    InsightsColumn `json:"insights" db:"insights"`
	Fingerprint string         `json:"fingerprint" db:"fingerprint"`
	Purchased   bool           `json:"purchased" db:"purchased"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

// NewReading assembles a stored reading with a fresh public id and secret.
func NewReading(email, name string, trait scoring.TraitProfile, ch chart.ChartProfile, insights insight.Report, fingerprint core.Hash) (*Reading, error) {
	secret, err := core.NewSecret()
	if err != nil {
		return nil, err
	}
	return &Reading{
		PublicID:    core.NewPublicID().String(),
		Secret:      secret.String(),
		Email:       email,
		Name:        name,
		Trait:       TraitColumn{trait},
		Chart:       ChartColumn{ch},
		Insights:    InsightsColumn{insights},
		Fingerprint: fingerprint.String(),
		Purchased:   false,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
