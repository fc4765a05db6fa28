package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bacauscout/scout/go/internal/models"
)

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		position string
		want     models.PositionGroup
	}{
		{"Goalkeeper", models.PositionGroupGK},
		{"Right-Back", models.PositionGroupDEF},
		{"Centre-Back", models.PositionGroupDEF},
		{"Defender", models.PositionGroupDEF},
		{"Attacking Midfielder", models.PositionGroupMID},
		{"Defensive Midfield", models.PositionGroupMID},
		{"Left Winger", models.PositionGroupFWD},
		{"Centre-Forward", models.PositionGroupFWD},
		{"Striker", models.PositionGroupFWD},
		{"Second Striker", models.PositionGroupFWD},
		{"Sweeper", models.PositionGroupMID},
		{"", models.PositionGroupMID},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			pos := tt.position
			assert.Equal(t, tt.want, ClassifyPosition(&pos))
		})
	}

	assert.Equal(t, DefaultPositionGroup, ClassifyPosition(nil))
}
