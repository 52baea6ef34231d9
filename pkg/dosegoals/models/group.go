package models

// TemplateGroup is an effective TemplateID with its goals in original row
// order. Group membership and order are stable functions of input row order.
type TemplateGroup struct {
	// ID is the effective TemplateID keying the group.
	ID string `json:"id"`
	// Goals are the group members, in the order their rows appeared.
	Goals []ClinicalGoal `json:"goals"`
}

// GroupByTemplateID partitions goals by effective TemplateID, preserving
// first-encounter group order and within-group row order.
func GroupByTemplateID(goals []ClinicalGoal) []TemplateGroup {
	var groups []TemplateGroup
	index := make(map[string]int)

	for _, g := range goals {
		i, ok := index[g.TemplateID]
		if !ok {
			i = len(groups)
			index[g.TemplateID] = i
			groups = append(groups, TemplateGroup{ID: g.TemplateID})
		}
		groups[i].Goals = append(groups[i].Goals, g)
	}

	return groups
}
