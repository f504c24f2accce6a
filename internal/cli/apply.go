package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quirk/pkg/quirk"
	"github.com/mesh-intelligence/quirk/pkg/types"
)

func (a *app) newApplyCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "apply <id> --set KIND=VALUE...",
		Short: "Apply property assignments to a stored widget",
		Long: "Record the --set assignments, in the order given, as a preset and replay it\n" +
			"onto the widget, then save the widget. Kinds are STYLE, TEXT, GRAPHIC, ALIGN\n" +
			"and TEXTALIGN. GRAPHIC takes the ID of another stored widget (empty clears it);\n" +
			"ALIGN and TEXTALIGN take canonical names such as BASELINE_LEFT or JUSTIFY.",
		Example: `  quirk apply 0192f0c1-... --set ALIGN=BASELINE_LEFT --set "TEXT=default text"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runApply(cmd, args[0], sets)
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "KIND=VALUE assignment (repeatable, applied in order)")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}

func (a *app) runApply(cmd *cobra.Command, id string, sets []string) error {
	base, err := a.errorHandler()
	if err != nil {
		return userError("%w", err)
	}
	var rejected *quirk.Diagnostic
	handler := quirk.HandlerFunc(func(d quirk.Diagnostic) bool {
		rejected = &d
		return base.Handle(d)
	})

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()
	widgets := store.Widgets()

	target, err := widgets.Get(id)
	if err != nil {
		return storeError("get widget", err)
	}

	preset := quirk.NewPreset(quirk.WithHandler(handler))
	for _, s := range sets {
		kind, value, err := parseAssignment(s)
		if err != nil {
			return userError("%w", err)
		}
		if kind == types.KindGraphic {
			var graphic types.Target
			if value != "" {
				if graphic, err = widgets.Get(value); err != nil {
					return storeError("get graphic", err)
				}
			}
			preset = preset.Set(kind, graphic)
		} else {
			preset = preset.Set(kind, value)
		}
		if preset == nil {
			return userError("assignment %q rejected: %w", s, rejected)
		}
	}

	if quirk.Wrap(target, quirk.WithHandler(handler)).SetPreset(preset) == nil {
		return userError("apply to %s rejected: %w", id, rejected)
	}
	if err := widgets.Save(target); err != nil {
		return storeError("save widget", err)
	}

	a.logger.Debug("applied preset",
		slog.String("widget_id", id),
		slog.Int("entries", preset.Len()),
	)
	return a.printWidgets(cmd.OutOrStdout(), false, target)
}

// parseAssignment splits KIND=VALUE. The kind name is case-insensitive;
// the value is passed through verbatim. PRESET cannot be assigned here.
func parseAssignment(s string) (types.Kind, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", userError("assignment %q must be KIND=VALUE", s)
	}
	kind, err := types.ParseKind(strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return 0, "", err
	}
	if kind == types.KindPreset {
		return 0, "", userError("assignment %q: PRESET cannot be set from the command line", s)
	}
	return kind, value, nil
}
