/*
main.go - chronoctl, the command-line front end to the engine

PURPOSE:
  Drives the conversion engine from the terminal: list zones, read the
  current moment through a zone, convert in either direction, and replay
  JSON move sequences against a date.

COMMANDS:
  chronoctl zones
  chronoctl now --zone Europe/Brussels
  chronoctl civil --zone UTC --epoch-ms 0
  chronoctl moment --zone Europe/Brussels --year 2019 --month 3 --day 31 --hour 3
  chronoctl travel --year 2000 --month 2 --day 28 \
      --moves '[{"type":"days","count":3},{"type":"months","count":3}]'

SEE ALSO:
  - factory: the JSON move schema accepted by travel
  - zonefile: the -zones file format
*/
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/chrono"
	"github.com/warp/chrono/calendar"
	"github.com/warp/chrono/clock"
	"github.com/warp/chrono/factory"
	"github.com/warp/chrono/zonefile"
)

var (
	zonePath string
	zoneName string

	epochMillis int64

	year, month, day     int
	hour, minute, second int

	movesJSON string
)

var rootCmd = &cobra.Command{
	Use:   "chronoctl",
	Short: "chronoctl drives the chrono date/time algebra engine",
	Long: `chronoctl converts between physical moments and civil readings
through explicit zone data, and replays calendar move sequences
against dates.`,
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List available zones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		zones, err := registry()
		if err != nil {
			return err
		}
		names := zones.Names()
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s\t%d period(s)\n", name, len(zones[name].Periods))
		}
		return nil
	},
}

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Read the current moment through a zone",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		zone, err := lookupZone()
		if err != nil {
			return err
		}
		printCivil(zone.ToDateAndTime(clock.System{}.Now()))
		return nil
	},
}

var civilCmd = &cobra.Command{
	Use:   "civil",
	Short: "Convert an epoch-millisecond moment to a civil reading",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		zone, err := lookupZone()
		if err != nil {
			return err
		}
		printCivil(zone.ToDateAndTime(chrono.FromEpochMillis(epochMillis)))
		return nil
	},
}

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Convert a civil reading to an epoch-millisecond moment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		zone, err := lookupZone()
		if err != nil {
			return err
		}
		civil := chrono.At(
			calendar.On(year, time.Month(month), day),
			chrono.H24(hour).Minutes(minute).AndSeconds(second),
		)
		fmt.Printf("%d\n", zone.ToMoment(civil).EpochMillis())
		return nil
	},
}

var travelCmd = &cobra.Command{
	Use:   "travel",
	Short: "Replay a JSON move sequence against a date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := factory.ParseMoves([]byte(movesJSON))
		if err != nil {
			return err
		}
		start := calendar.On(year, time.Month(month), day)
		printDate(calendar.Travel(moves, start))
		return nil
	},
}

func registry() (zonefile.Registry, error) {
	zones := zonefile.Presets()
	if zonePath != "" {
		extra, err := zonefile.Load(zonePath)
		if err != nil {
			return nil, err
		}
		zones.Merge(extra)
	}
	return zones, nil
}

func lookupZone() (chrono.TimeZone, error) {
	zones, err := registry()
	if err != nil {
		return chrono.TimeZone{}, err
	}
	return zones.Lookup(zoneName)
}

func printCivil(dt chrono.DateAndTime) {
	g := calendar.ToGregorian(dt.Date)
	view := dt.Time.View()
	fmt.Printf("%04d-%02d-%02d (%s) %02d:%02d:%02d.%03d\n",
		g.Year, g.Month, g.Day, dt.Date.Weekday(),
		view.Hour24, view.Minute, view.Second, view.Millisecond)
}

func printDate(d chrono.Date) {
	g := calendar.ToGregorian(d)
	fmt.Printf("%04d-%02d-%02d (%s)\n", g.Year, g.Month, g.Day, d.Weekday())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&zonePath, "zones", "", "YAML zone file merged over the presets")

	for _, c := range []*cobra.Command{nowCmd, civilCmd, momentCmd} {
		c.Flags().StringVar(&zoneName, "zone", "UTC", "Zone name")
	}

	civilCmd.Flags().Int64Var(&epochMillis, "epoch-ms", 0, "Moment as epoch milliseconds")

	for _, c := range []*cobra.Command{momentCmd, travelCmd} {
		c.Flags().IntVar(&year, "year", 1970, "Civil year")
		c.Flags().IntVar(&month, "month", 1, "Civil month (1-12)")
		c.Flags().IntVar(&day, "day", 1, "Civil day of month")
	}
	momentCmd.Flags().IntVar(&hour, "hour", 0, "Hour (0-23)")
	momentCmd.Flags().IntVar(&minute, "minute", 0, "Minute")
	momentCmd.Flags().IntVar(&second, "second", 0, "Second")

	travelCmd.Flags().StringVar(&movesJSON, "moves", "[]", "JSON move sequence")

	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(civilCmd)
	rootCmd.AddCommand(momentCmd)
	rootCmd.AddCommand(travelCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
