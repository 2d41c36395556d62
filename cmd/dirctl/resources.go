package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"founderhub/internal/client"
	"founderhub/internal/model"
)

// resourceCmd builds "founders" or "startups" with list, hide, show and delete.
func (a *cli) resourceCmd(r client.Resource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(r),
		Short: "List and moderate " + string(r),
	}

	var (
		search     string
		visibility string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List " + string(r) + " including hidden ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch visibility {
			case "all", "visible", "hidden":
			default:
				return fmt.Errorf("--visibility must be all, visible or hidden")
			}
			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			if err := a.store.Load(ctx); err != nil {
				return err
			}
			snap := a.store.Snapshot()
			switch r {
			case client.Founders:
				rows := filter(snap.Founders, func(f model.Founder) bool {
					return matches(search, f.Name, f.Email) && visibilityMatches(visibility, f.Visible)
				})
				return a.printer().founders(rows)
			default:
				rows := filter(snap.Startups, func(s model.Startup) bool {
					return matches(search, s.Name, s.Industry) && visibilityMatches(visibility, s.Visible)
				})
				return a.printer().startups(rows)
			}
		},
	}
	list.Flags().StringVarP(&search, "search", "q", "", "case-insensitive substring filter")
	list.Flags().StringVar(&visibility, "visibility", "all", "all, visible or hidden")

	cmd.AddCommand(
		list,
		a.visibilityCmd(r, "hide", false),
		a.visibilityCmd(r, "show", true),
		a.deleteCmd(r),
	)
	return cmd
}

// visibilityCmd toggles only rows whose current value differs from want.
func (a *cli) visibilityCmd(r client.Resource, use string, want bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>...",
		Short: strings.ToUpper(use[:1]) + use[1:] + " " + string(r) + " for non-admin users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			if err := a.store.Load(ctx); err != nil {
				return err
			}
			current := visibleByID(a.store.Snapshot(), r)

			var failed int
			for _, id := range args {
				vis, ok := current[id]
				if !ok {
					fmt.Fprintf(a.out, "%s: %v\n", id, client.ErrNotLoaded)
					failed++
					continue
				}
				if vis == want {
					fmt.Fprintf(a.out, "%s: already %s\n", id, visibilityWord(want))
					continue
				}
				if _, err := a.store.ToggleVisibility(ctx, r, id); err != nil {
					a.log.Warn("visibility change failed", zap.String("id", id), zap.Error(err))
					fmt.Fprintf(a.out, "%s: %v\n", id, err)
					failed++
					continue
				}
				fmt.Fprintf(a.out, "%s: %s\n", id, visibilityWord(want))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d %s failed", failed, len(args), r)
			}
			return nil
		},
	}
}

func (a *cli) deleteCmd(r client.Resource) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete " + string(r),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			if err := a.store.Load(ctx); err != nil {
				return err
			}
			var failed int
			for _, id := range args {
				if err := a.store.Delete(ctx, r, id); err != nil {
					fmt.Fprintf(a.out, "%s: %v\n", id, err)
					failed++
					continue
				}
				fmt.Fprintf(a.out, "%s: deleted\n", id)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d %s failed", failed, len(args), r)
			}
			return nil
		},
	}
}

func visibleByID(s client.Snapshot, r client.Resource) map[string]bool {
	out := map[string]bool{}
	if r == client.Founders {
		for _, f := range s.Founders {
			out[f.ID] = f.Visible
		}
		return out
	}
	for _, st := range s.Startups {
		out[st.ID] = st.Visible
	}
	return out
}

func visibilityWord(v bool) string {
	if v {
		return "visible"
	}
	return "hidden"
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func visibilityMatches(filter string, visible bool) bool {
	switch filter {
	case "visible":
		return visible
	case "hidden":
		return !visible
	}
	return true
}
