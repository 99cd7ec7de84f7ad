package classification

import (
	"testing"

	"github.com/desertwitch/spacewatch/internal/schema"
	"github.com/stretchr/testify/assert"
)

// TestNormalizeHealth_Table verifies the full normalization contract: numeric
// codes, known texts, passthrough of unknown text, sequences and unset input.
func TestNormalizeHealth_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input schema.HealthValue
		want  Health
	}{
		{"Code_1_Healthy", schema.HealthValue{Kind: schema.HealthNumber, Number: 1}, HealthHealthy},
		{"Code_2_Warning", schema.HealthValue{Kind: schema.HealthNumber, Number: 2}, HealthWarning},
		{"Code_3_Unhealthy", schema.HealthValue{Kind: schema.HealthNumber, Number: 3}, HealthUnhealthy},
		{"Code_0_Unknown", schema.HealthValue{Kind: schema.HealthNumber, Number: 0}, HealthUnknown},
		{"Code_99_Unknown", schema.HealthValue{Kind: schema.HealthNumber, Number: 99}, HealthUnknown},
		{"Text_Healthy", schema.HealthValue{Kind: schema.HealthText, Text: "Healthy"}, HealthHealthy},
		{"Text_OK", schema.HealthValue{Kind: schema.HealthText, Text: "OK"}, HealthHealthy},
		{"Text_Warning", schema.HealthValue{Kind: schema.HealthText, Text: "Warning"}, HealthWarning},
		{"Text_Degraded", schema.HealthValue{Kind: schema.HealthText, Text: "Degraded"}, HealthWarning},
		{"Text_Unhealthy", schema.HealthValue{Kind: schema.HealthText, Text: "Unhealthy"}, HealthUnhealthy},
		{"Text_Failed", schema.HealthValue{Kind: schema.HealthText, Text: "Failed"}, HealthUnhealthy},
		{"Text_CaseSensitive_NoMatch", schema.HealthValue{Kind: schema.HealthText, Text: "healthy"}, Health("healthy")},
		{"Text_Vendor_Passthrough", schema.HealthValue{Kind: schema.HealthText, Text: "CustomVendorState"}, Health("CustomVendorState")},
		{"Text_Empty_Unknown", schema.HealthValue{Kind: schema.HealthText, Text: ""}, HealthUnknown},
		{"Unset_Unknown", schema.HealthValue{}, HealthUnknown},
		{"List_Empty_Unknown", schema.HealthValue{Kind: schema.HealthList}, HealthUnknown},
		{
			"List_TakesFirst",
			schema.HealthValue{Kind: schema.HealthList, List: []schema.HealthValue{
				{Kind: schema.HealthText, Text: "Degraded"},
				{Kind: schema.HealthText, Text: "OK"},
			}},
			HealthWarning,
		},
		{
			"List_NumericFirst",
			schema.HealthValue{Kind: schema.HealthList, List: []schema.HealthValue{
				{Kind: schema.HealthNumber, Number: 3},
			}},
			HealthUnhealthy,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, NormalizeHealth(tc.input))
		})
	}
}
