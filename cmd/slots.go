package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/brewdash/brewdash/internal/schedule"
	"github.com/spf13/cobra"
)

var (
	slotsAt  string
	slotsMin string
)

var slotsCmd = &cobra.Command{
	Use:   "slots [pickup-time]",
	Short: "List today's offerable pickup times, or validate one",
	Long: `Without arguments, lists the pickup times still offerable today given the
configured business hours. With a 12-hour clock argument such as "1:15 PM",
parses and validates it the way the order screen does.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		hours, err := businessHours(cfg)
		if err != nil {
			return err
		}
		now, err := parseTimeFlag(slotsAt)
		if err != nil {
			return err
		}
		var minTime time.Time
		if slotsMin != "" {
			if minTime, err = time.Parse(time.RFC3339, slotsMin); err != nil {
				return fmt.Errorf("invalid --min value: %w", err)
			}
		}

		out := cmd.OutOrStdout()

		if len(args) == 1 {
			candidate, err := schedule.ParseClockText(args[0], now)
			if err != nil {
				var parseErr *schedule.ParseError
				if errors.As(err, &parseErr) {
					fmt.Fprintf(out, "not a valid time: %s\n", parseErr.Input)
					return nil
				}
				return err
			}
			if err := schedule.ValidatePickup(candidate, now, minTime, hours, cfg.SlotInterval); err != nil {
				var vErr *schedule.ValidationError
				if errors.As(err, &vErr) {
					fmt.Fprintf(out, "rejected: %s\n", vErr.Reason)
					return nil
				}
				return err
			}
			fmt.Fprintf(out, "ok: %s\n", candidate.Format("3:04 PM"))
			return nil
		}

		slots := schedule.Slots(now, minTime, hours, cfg.SlotInterval)
		if len(slots) == 0 {
			fmt.Fprintln(out, "No pickup times remaining today.")
			return nil
		}
		for _, slot := range slots {
			fmt.Fprintln(out, slot.Format("3:04 PM"))
		}
		return nil
	},
}

func init() {
	slotsCmd.Flags().StringVar(&slotsAt, "at", "", "treat this RFC3339 time as now (default now)")
	slotsCmd.Flags().StringVar(&slotsMin, "min", "", "minimum pickup time (RFC3339), used when editing an order")
	rootCmd.AddCommand(slotsCmd)
}
