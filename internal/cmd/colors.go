package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"orderstatuscolor/server/internal/config"
	"orderstatuscolor/server/internal/database"
	"orderstatuscolor/server/internal/services"
	"orderstatuscolor/server/internal/statuscolor"
)

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Print the resolved color of every order status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogging(cfg)

			db, err := database.ConnectPostgres(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer database.ClosePostgres(db)

			overrides, closeOverrides, err := newOverrideSource(cfg, db)
			if err != nil {
				return err
			}
			defer closeOverrides()

			statusRepo := services.NewOrderStatusRepository(db)
			statuses, err := statusRepo.FindAll(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "listing statuses")
			}
			names := make(map[int]string, len(statuses))
			for _, s := range statuses {
				names[s.ID] = s.Name
			}

			svc := services.NewOrderStatusColorService(overrides, statusRepo, cfg.DefaultColor, cfg.Opacity)
			colors := svc.ResolveColors(cmd.Context(), nil)

			fmt.Fprint(cmd.OutOrStdout(), renderColorTable(colors, names, cfg.Opacity))
			return nil
		},
	}
}

// renderColorTable lists statuses by id with a swatch tinted the way rows are.
func renderColorTable(colors statuscolor.ColorMap, names map[int]string, opacity float64) string {
	ids := make([]int, 0, len(colors))
	for id := range colors {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	idStyle := lipgloss.NewStyle().Width(5).Align(lipgloss.Right)
	nameStyle := lipgloss.NewStyle().Width(20).PaddingLeft(2)

	var b strings.Builder
	for _, id := range ids {
		color := colors[id]
		name := names[id]
		if name == "" {
			name = "-"
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(rowTint(color, opacity))).
			Foreground(lipgloss.Color(color)).
			Padding(0, 1).
			Render(color)
		b.WriteString(idStyle.Render(fmt.Sprint(id)) + nameStyle.Render(name) + swatch + "\n")
	}
	return b.String()
}

// rowTint blends color over white at the given opacity, matching the browser's rgba row background.
func rowTint(hex string, opacity float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return white.BlendRgb(c, opacity).Clamped().Hex()
}
