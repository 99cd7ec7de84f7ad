package classification

import "github.com/desertwitch/spacewatch/internal/schema"

// Health is a normalized health category. Beyond the fixed categories, any
// unanticipated vendor-specific health text passes through verbatim.
type Health string

const (
	// HealthHealthy is a fully operational record.
	HealthHealthy Health = "Healthy"

	// HealthWarning is a degraded but still operational record.
	HealthWarning Health = "Warning"

	// HealthUnhealthy is a failed or failing record.
	HealthUnhealthy Health = "Unhealthy"

	// HealthUnknown is a record whose health could not be determined.
	HealthUnknown Health = "Unknown"
)

// healthCodes maps the subsystem's numeric health codes onto categories.
var healthCodes = map[int64]Health{ //nolint:gochecknoglobals
	1: HealthHealthy,
	2: HealthWarning,
	3: HealthUnhealthy,
}

// healthTexts maps known textual health representations onto categories.
// Matching is case-sensitive; the subsystem emits these spellings verbatim.
var healthTexts = map[string]Health{ //nolint:gochecknoglobals
	"Healthy":   HealthHealthy,
	"OK":        HealthHealthy,
	"Warning":   HealthWarning,
	"Degraded":  HealthWarning,
	"Unhealthy": HealthUnhealthy,
	"Failed":    HealthUnhealthy,
}

// NormalizeHealth maps any raw health representation onto a [Health]
// category. The mapping is total: numeric codes resolve through the fixed
// code table, known texts through the fixed text table, sequences through
// their first element, and anything unset resolves to [HealthUnknown].
// Unrecognized non-empty text passes through verbatim.
func NormalizeHealth(value schema.HealthValue) Health {
	switch value.Kind {
	case schema.HealthNumber:
		if health, ok := healthCodes[value.Number]; ok {
			return health
		}

		return HealthUnknown

	case schema.HealthText:
		if value.Text == "" {
			return HealthUnknown
		}
		if health, ok := healthTexts[value.Text]; ok {
			return health
		}

		return Health(value.Text)

	case schema.HealthList:
		if len(value.List) == 0 {
			return HealthUnknown
		}

		return NormalizeHealth(value.List[0])

	default:
		return HealthUnknown
	}
}
