package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = cellStyle.Foreground(lipgloss.Color("#22c55e"))
	pausedStyle = cellStyle.Foreground(lipgloss.Color("#eab308"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

const statusColumn = 2

func renderCampaigns(w io.Writer, campaigns []campaigning.CampaignWithAdSets) {
	if len(campaigns) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No campaigns found"))
		return
	}

	rows := make([][]string, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			string(c.Status),
			c.AdAccountName,
			c.Platform,
			strconv.Itoa(len(c.AdSets)),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "STATUS", "ACCOUNT", "PLATFORM", "AD SETS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusColumn {
				switch backenddomain.Status(rows[row][col]) {
				case backenddomain.StatusActive, backenddomain.StatusEnabled:
					return activeStyle
				case backenddomain.StatusPaused:
					return pausedStyle
				}
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.Render())
}

func renderMetaState(w io.Writer, state linking.State) {
	if !state.Connected {
		fmt.Fprintln(w, titleStyle.Render("Meta: not connected"))
		if state.Error != "" {
			fmt.Fprintln(w, mutedStyle.Render(state.Error))
		}
		return
	}

	name := ""
	if state.Account != nil {
		name = state.Account.Name
	}
	fmt.Fprintln(w, titleStyle.Render("Meta: connected "+name))

	rows := make([][]string, 0, len(state.AdAccounts))
	for _, acc := range state.AdAccounts {
		active := "no"
		if acc.IsActive {
			active = "yes"
		}
		rows = append(rows, []string{acc.ID, acc.Name, acc.Currency, active})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("AD ACCOUNT", "NAME", "CURRENCY", "ACTIVE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.Render())
}
