package teams

import (
	"strings"

	"github.com/bacauscout/scout/go/internal/models"
)

type positionRule struct {
	keywords []string
	group    models.PositionGroup
}

// positionRules is evaluated top to bottom; the first rule with a keyword
// contained in the lowercased position wins. Order matters: "Attacking
// Midfield" must hit the midfield rule before the attack rule.
var positionRules = []positionRule{
	{keywords: []string{"goalkeeper"}, group: models.PositionGroupGK},
	{keywords: []string{"back", "defender", "centre-back"}, group: models.PositionGroupDEF},
	{keywords: []string{"midfield", "midfielder"}, group: models.PositionGroupMID},
	{keywords: []string{"forward", "winger", "attack", "striker"}, group: models.PositionGroupFWD},
}

// DefaultPositionGroup is used for missing or unrecognised positions
const DefaultPositionGroup = models.PositionGroupMID

var groupRank = map[models.PositionGroup]int{
	models.PositionGroupGK:  0,
	models.PositionGroupDEF: 1,
	models.PositionGroupMID: 2,
	models.PositionGroupFWD: 3,
}

// ClassifyPosition buckets a free-text position into a squad line
func ClassifyPosition(position *string) models.PositionGroup {
	if position == nil {
		return DefaultPositionGroup
	}
	p := strings.ToLower(*position)
	for _, rule := range positionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.group
			}
		}
	}
	return DefaultPositionGroup
}
