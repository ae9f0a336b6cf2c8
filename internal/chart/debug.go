package chart

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// DebugTable renders the chart's state sets as a table, one row per item,
// columns Position/State/Origin.
func (c *Chart) DebugTable() string {
	data := [][]string{{"Position", "State", "Origin"}}

	for k, set := range c.Sets {
		for _, st := range set.Elements() {
			data = append(data, []string{
				fmt.Sprintf("%d", k),
				st.String(),
				fmt.Sprintf("%d", st.Origin),
			})
		}
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
