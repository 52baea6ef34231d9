package xmlout

import (
	"fmt"
	"time"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
)

// Fixed schema version attributes the importer expects.
const (
	documentVersion = "1.0"
	previewVersion  = "1.2"
	previewType     = "DoseObjectives"
)

// Builder assembles the in-memory document tree from resolved goals.
type Builder struct {
	// CodeScheme and CodeSchemeVersion qualify emitted structure codes.
	CodeScheme        string
	CodeSchemeVersion string
	// AssignedUsers is copied verbatim into the Preview element.
	AssignedUsers string
	// Now supplies timestamps; defaults to time.Now.
	Now func() time.Time
}

// BuildInfo carries per-conversion inputs to the builder.
type BuildInfo struct {
	// PreviewID identifies the template in the importer's preview.
	PreviewID string
	// PrimaryGroupID, when non-empty, rekeys the first group only.
	PrimaryGroupID string
	// SourceName is the input workbook name, recorded in the description.
	SourceName string
}

// Build groups goals by effective TemplateID and assembles the document.
// Group order is first-encounter order; within-group order is row order.
// Informational fields (Source, raw TemplateID, notes, endpoint) are never
// written to the tree.
func (b *Builder) Build(goals []models.ClinicalGoal, info BuildInfo) *Document {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	doc := &Document{
		Version: documentVersion,
		XSI:     xsiNamespace,
		Preview: b.buildPreview(info, now()),
	}

	for i, group := range models.GroupByTemplateID(goals) {
		id := group.ID
		if i == 0 && info.PrimaryGroupID != "" {
			id = info.PrimaryGroupID
		}

		out := MeasureGroup{ID: id}
		for _, goal := range group.Goals {
			out.Items = append(out.Items, b.buildItems(goal)...)
		}
		doc.Groups = append(doc.Groups, out)
	}

	return doc
}

// buildItems fans one goal out into one MeasureItem per alias.
func (b *Builder) buildItems(goal models.ClinicalGoal) []MeasureItem {
	structure := Structure{ID: goal.Structure.ID}
	if goal.Structure.HasCode() {
		structure.Code = &StructureCode{
			Code:              goal.Structure.Code,
			CodeScheme:        b.CodeScheme,
			CodeSchemeVersion: b.CodeSchemeVersion,
		}
	}

	metric := Metric{Name: goal.Metric.Name}
	if goal.Metric.Parametrized && goal.EvalPoint != nil {
		metric.Parameter = FormatQuantity(*goal.EvalPoint)
	}

	variation := ""
	if goal.Variation != nil {
		variation = FormatQuantity(*goal.Variation)
	}

	items := make([]MeasureItem, 0, len(goal.Aliases))
	for _, alias := range goal.Aliases {
		items = append(items, MeasureItem{
			ID:        alias,
			Structure: structure,
			Metric:    metric,
			Variation: variation,
			Priority:  goal.Priority,
		})
	}

	return items
}

func (b *Builder) buildPreview(info BuildInfo, now time.Time) Preview {
	lastModified := now.Format("January 02 2006 15:04:05")
	return Preview{
		Version:        previewVersion,
		ID:             info.PreviewID,
		Type:           previewType,
		ApprovalStatus: "Unapproved",
		Description: fmt.Sprintf("Source: %s | Converted: %s",
			info.SourceName, now.Format("2006-01-02 15:04:05")),
		AssignedUsers:   b.AssignedUsers,
		LastModified:    lastModified,
		ApprovalHistory: fmt.Sprintf("Created [ %s ]", lastModified),
	}
}
