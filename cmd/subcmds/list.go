package subcmds

import (
	"fmt"
	"os"

	"github.com/mitander/kalandra/config"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func ListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the fuzz target roster in priority order",
		Action: func(ctx *cli.Context) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Priority", "Target", "Description"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

			for i, target := range config.DefaultRoster() {
				table.Append([]string{fmt.Sprintf("%d", i+1), target.Name, target.Description})
			}

			table.Render()
			return nil
		},
	}
}
