package xmlout

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
)

func testBuilder() *Builder {
	return &Builder{
		CodeScheme:        "FMA",
		CodeSchemeVersion: "3.2",
		Now:               func() time.Time { return time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) },
	}
}

func quantity(v float64, unit string) *models.Quantity {
	return &models.Quantity{Value: v, Unit: unit}
}

func TestBuild_AliasFanOut(t *testing.T) {
	goals := []models.ClinicalGoal{{
		Structure:  models.StructureIdentity{ID: "SpinalCord", Code: "7647"},
		Aliases:    []string{"A", "B", "C"},
		Metric:     models.Metric{Name: "Dmax"},
		Priority:   2,
		TemplateID: "T1",
	}}

	doc := testBuilder().Build(goals, BuildInfo{PreviewID: "T1"})
	require.Len(t, doc.Groups, 1)
	require.Len(t, doc.Groups[0].Items, 3)

	for i, wantID := range []string{"A", "B", "C"} {
		item := doc.Groups[0].Items[i]
		assert.Equal(t, wantID, item.ID)
		assert.Equal(t, "SpinalCord", item.Structure.ID)
		require.NotNil(t, item.Structure.Code)
		assert.Equal(t, "7647", item.Structure.Code.Code)
		assert.Equal(t, "FMA", item.Structure.Code.CodeScheme)
		assert.Equal(t, "3.2", item.Structure.Code.CodeSchemeVersion)
		assert.Equal(t, "Dmax", item.Metric.Name)
		assert.Equal(t, 2, item.Priority)
	}
}

func TestBuild_ParametrizedMetricAndVariation(t *testing.T) {
	goals := []models.ClinicalGoal{{
		Structure:  models.StructureIdentity{ID: "PTV70"},
		Aliases:    []string{"PTV70"},
		Metric:     models.Metric{Name: "V", Parametrized: true},
		EvalPoint:  quantity(60, "Gy"),
		Variation:  quantity(5, "%"),
		Priority:   1,
		TemplateID: "T1",
	}}

	doc := testBuilder().Build(goals, BuildInfo{PreviewID: "T1"})
	item := doc.Groups[0].Items[0]

	assert.Equal(t, "V", item.Metric.Name)
	assert.Equal(t, "60.0Gy", item.Metric.Parameter)
	assert.Equal(t, "5.0%", item.Variation)
	assert.Nil(t, item.Structure.Code)
}

func TestBuild_FixedFormHasNoParameter(t *testing.T) {
	goals := []models.ClinicalGoal{{
		Structure:  models.StructureIdentity{ID: "PTV70"},
		Aliases:    []string{"PTV70"},
		Metric:     models.Metric{Name: "Dmean"},
		EvalPoint:  quantity(20, "Gy"),
		Priority:   2,
		TemplateID: "T1",
	}}

	doc := testBuilder().Build(goals, BuildInfo{PreviewID: "T1"})
	assert.Empty(t, doc.Groups[0].Items[0].Metric.Parameter)
}

func TestBuild_GroupOrderFollowsFirstEncounter(t *testing.T) {
	mk := func(template, id string) models.ClinicalGoal {
		return models.ClinicalGoal{
			Structure:  models.StructureIdentity{ID: id},
			Aliases:    []string{id},
			Metric:     models.Metric{Name: "Dmean"},
			Priority:   1,
			TemplateID: template,
		}
	}

	doc := testBuilder().Build([]models.ClinicalGoal{
		mk("T2", "A"), mk("T1", "B"), mk("T2", "C"),
	}, BuildInfo{PreviewID: "p"})

	require.Len(t, doc.Groups, 2)
	assert.Equal(t, "T2", doc.Groups[0].ID)
	assert.Equal(t, "T1", doc.Groups[1].ID)
	require.Len(t, doc.Groups[0].Items, 2)
	assert.Equal(t, "A", doc.Groups[0].Items[0].ID)
	assert.Equal(t, "C", doc.Groups[0].Items[1].ID)
}

func TestBuild_PrimaryGroupOverride(t *testing.T) {
	mk := func(template, id string) models.ClinicalGoal {
		return models.ClinicalGoal{
			Structure:  models.StructureIdentity{ID: id},
			Aliases:    []string{id},
			Metric:     models.Metric{Name: "Dmean"},
			Priority:   1,
			TemplateID: template,
		}
	}

	doc := testBuilder().Build([]models.ClinicalGoal{
		mk("T1", "A"), mk("T2", "B"),
	}, BuildInfo{PreviewID: "Preview", PrimaryGroupID: "Preview"})

	// Only the first group is rekeyed.
	assert.Equal(t, "Preview", doc.Groups[0].ID)
	assert.Equal(t, "T2", doc.Groups[1].ID)
}

func TestBuild_InformationalFieldsNeverSerialize(t *testing.T) {
	goals := []models.ClinicalGoal{{
		Structure:     models.StructureIdentity{ID: "PTV70"},
		Aliases:       []string{"PTV70"},
		Metric:        models.Metric{Name: "Dmean"},
		Priority:      2,
		TemplateID:    "T1",
		Source:        "QUANTEC-SECRET",
		RawTemplateID: "RAW-SECRET",
		Notes:         "ZUSATZ-SECRET",
		Endpoint:      "ENDPOINT-SECRET",
	}}

	doc := testBuilder().Build(goals, BuildInfo{PreviewID: "T1"})
	data, err := Serialize(doc)
	require.NoError(t, err)

	out := string(data)
	for _, leaked := range []string{"QUANTEC-SECRET", "RAW-SECRET", "ZUSATZ-SECRET", "ENDPOINT-SECRET"} {
		assert.False(t, strings.Contains(out, leaked), "informational value %q leaked into XML", leaked)
	}
}

func TestBuild_PreviewMetadata(t *testing.T) {
	doc := testBuilder().Build(nil, BuildInfo{PreviewID: "HN_Standard", SourceName: "hn.xlsx"})

	assert.Equal(t, "HN_Standard", doc.Preview.ID)
	assert.Equal(t, "DoseObjectives", doc.Preview.Type)
	assert.Equal(t, "Unapproved", doc.Preview.ApprovalStatus)
	assert.Contains(t, doc.Preview.Description, "hn.xlsx")
	assert.Contains(t, doc.Preview.ApprovalHistory, "Created [ ")
	assert.NotEmpty(t, doc.Preview.LastModified)
}

func TestBuild_SerializeRoundTrip(t *testing.T) {
	goals := []models.ClinicalGoal{{
		Structure:  models.StructureIdentity{ID: "SpinalCord", Code: "7647"},
		Aliases:    []string{"Cord", "Myelon"},
		Metric:     models.Metric{Name: "V", Parametrized: true},
		EvalPoint:  quantity(60, "Gy"),
		Priority:   1,
		TemplateID: "T1",
	}}

	data, err := Serialize(testBuilder().Build(goals, BuildInfo{PreviewID: "T1"}))
	require.NoError(t, err)

	var parsed Document
	require.NoError(t, xml.Unmarshal(data, &parsed))

	require.Len(t, parsed.Groups, 1)
	require.Len(t, parsed.Groups[0].Items, 2)
	assert.Equal(t, "Cord", parsed.Groups[0].Items[0].ID)
	assert.Equal(t, "Myelon", parsed.Groups[0].Items[1].ID)
	assert.Equal(t, "SpinalCord", parsed.Groups[0].Items[0].Structure.ID)
	assert.Equal(t, "V", parsed.Groups[0].Items[0].Metric.Name)
	assert.Equal(t, "60.0Gy", parsed.Groups[0].Items[0].Metric.Parameter)
	assert.Equal(t, 1, parsed.Groups[0].Items[0].Priority)
}
